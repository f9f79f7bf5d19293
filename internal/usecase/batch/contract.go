package batch

import (
	"context"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// BulkWriter submits NDJSON bulk bodies.
type BulkWriter interface {
	Bulk(ctx context.Context, body []byte) (*engine.BulkResponse, error)
}
