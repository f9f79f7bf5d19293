// Package engine defines the search engine facade used by the tool operations.
package engine

//go:generate mockgen -destination=mock/store.go -package=mock . Store

import (
	"context"
	"encoding/json"
)

// Store is the main engine facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade by design -- consumers use narrow sub-interfaces (ISP)
type Store interface {
	InfoReader
	IndexManager
	Searcher
	BulkWriter
	DocumentWriter
	ClusterReader
	Doer
	Close()
}

// InfoReader reads the engine self-description.
type InfoReader interface {
	Info(ctx context.Context) (*Info, error)
}

// IndexManager provides index discovery and mapping reads.
type IndexManager interface {
	CatIndices(ctx context.Context, pattern string) ([]IndexSummary, error)
	// GetMapping returns the "mappings" object of one index.
	GetMapping(ctx context.Context, index string) (map[string]any, error)
	IndexExists(ctx context.Context, index string) (bool, error)
}

// Searcher provides query execution.
type Searcher interface {
	Search(ctx context.Context, index string, body []byte) (*SearchResponse, error)
	// Count sends body as is; nil counts every document.
	Count(ctx context.Context, index string, body []byte) (int64, error)
	// MultiSearch takes an NDJSON body of header/query line pairs.
	MultiSearch(ctx context.Context, body []byte) (*MultiSearchResponse, error)
}

// BulkWriter submits NDJSON bulk bodies with refresh=true.
type BulkWriter interface {
	Bulk(ctx context.Context, body []byte) (*BulkResponse, error)
}

// DocumentWriter provides single-document writes, each with refresh=true.
type DocumentWriter interface {
	// IndexDocument lets the engine assign the id when id is empty.
	IndexDocument(ctx context.Context, index, id string, body []byte) (*DocumentResult, error)
	UpdateDocument(ctx context.Context, index, id string, body []byte) (*DocumentResult, error)
	DeleteDocument(ctx context.Context, index, id string) (*DocumentResult, error)
}

// ClusterReader reads cluster level state.
type ClusterReader interface {
	ClusterHealth(ctx context.Context, includeIndices bool) (*ClusterHealth, error)
	ClusterStats(ctx context.Context) (*ClusterStats, error)
	NodesInfo(ctx context.Context) (*NodesInfo, error)
}

// Doer executes a raw request whose shape was chosen by the caller.
type Doer interface {
	Do(ctx context.Context, req Request) (json.RawMessage, error)
}
