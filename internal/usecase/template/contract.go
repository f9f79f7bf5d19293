package template

import (
	"context"
	"encoding/json"

	"github.com/kailas-cloud/esmcp/internal/compat"
)

// VersionedRunner executes version-sensitive requests.
type VersionedRunner interface {
	Run(ctx context.Context, p compat.Params) (json.RawMessage, compat.Generation, error)
}
