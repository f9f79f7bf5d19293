package search

import (
	"context"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// MappingReader fetches the mapping of one collection.
type MappingReader interface {
	GetMapping(ctx context.Context, index string) (map[string]any, error)
}

// Searcher executes queries.
type Searcher interface {
	Search(ctx context.Context, index string, body []byte) (*engine.SearchResponse, error)
	Count(ctx context.Context, index string, body []byte) (int64, error)
	MultiSearch(ctx context.Context, body []byte) (*engine.MultiSearchResponse, error)
}
