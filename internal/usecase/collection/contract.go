package collection

import (
	"context"
	"encoding/json"

	"github.com/kailas-cloud/esmcp/internal/compat"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// IndexReader lists indices and reads their mappings.
type IndexReader interface {
	CatIndices(ctx context.Context, pattern string) ([]engine.IndexSummary, error)
	GetMapping(ctx context.Context, index string) (map[string]any, error)
	IndexExists(ctx context.Context, index string) (bool, error)
}

// VersionedRunner executes version-sensitive requests.
type VersionedRunner interface {
	Run(ctx context.Context, p compat.Params) (json.RawMessage, compat.Generation, error)
}
