package document

import (
	"context"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Writer performs single-document writes.
type Writer interface {
	IndexDocument(ctx context.Context, index, id string, body []byte) (*engine.DocumentResult, error)
	UpdateDocument(ctx context.Context, index, id string, body []byte) (*engine.DocumentResult, error)
	DeleteDocument(ctx context.Context, index, id string) (*engine.DocumentResult, error)
}
