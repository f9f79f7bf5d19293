package elastic

import (
	"bytes"
	"context"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Search runs body against index.
func (s *Store) Search(ctx context.Context, index string, body []byte) (*engine.SearchResponse, error) {
	search := s.client.Search
	res, err := search(
		search.WithContext(ctx),
		search.WithIndex(index),
		search.WithBody(bytes.NewReader(body)),
	)
	var out engine.SearchResponse
	if err = decode(engine.OpSearch, res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Count counts documents in index matching body.
func (s *Store) Count(ctx context.Context, index string, body []byte) (int64, error) {
	count := s.client.Count
	opts := []func(*esapi.CountRequest){count.WithContext(ctx), count.WithIndex(index)}
	if len(body) > 0 {
		opts = append(opts, count.WithBody(bytes.NewReader(body)))
	}
	res, err := count(opts...)

	var out struct {
		Count int64 `json:"count"`
	}
	if err = decode(engine.OpCount, res, err, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// MultiSearch submits an NDJSON body. Per-subquery failures are reported in
// the response items, not as an error.
func (s *Store) MultiSearch(ctx context.Context, body []byte) (*engine.MultiSearchResponse, error) {
	msearch := s.client.Msearch
	res, err := msearch(bytes.NewReader(body), msearch.WithContext(ctx))
	var out engine.MultiSearchResponse
	if err = decode(engine.OpMultiSearch, res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
