package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	"github.com/kailas-cloud/esmcp/internal/domain/query"
	"github.com/kailas-cloud/esmcp/internal/usecase/batch"
)

// SubQuery is one entry of a multi-search.
type SubQuery struct {
	Index string
	Query query.Query
}

// Service runs searches, counts and multi-searches.
type Service struct {
	normalizer *Normalizer
	searcher   Searcher
}

// New creates a search service.
func New(mappings MappingReader, searcher Searcher) *Service {
	return &Service{normalizer: NewNormalizer(mappings), searcher: searcher}
}

// Search runs q against index with derived highlighting. A zero query matches all documents.
func (s *Service) Search(ctx context.Context, index string, q query.Query) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	if q.IsZero() {
		q = query.MustParse(`{}`)
	}

	normalized, err := s.normalizer.Normalize(ctx, index, q)
	if err != nil {
		return envelope.Envelope{}, err
	}
	resp, err := s.searcher.Search(ctx, index, normalized.Raw())
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("search %q: %w", index, err)
	}

	fragments := make([]envelope.Fragment, 0, len(resp.Hits.Hits)+1)
	fragments = append(fragments, envelope.Text(TotalSummary(resp.Hits, q.From())))
	for _, hit := range resp.Hits.Hits {
		text, err := RenderHit(hit)
		if err != nil {
			return envelope.Envelope{}, err
		}
		fragments = append(fragments, envelope.Text(text))
	}
	return envelope.Build(fragments...), nil
}

// Count counts documents of index matching an optional query clause. A body
// with a top-level "query" key is sent unchanged.
func (s *Service) Count(ctx context.Context, index string, q query.Query) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	body, err := countBody(q)
	if err != nil {
		return envelope.Envelope{}, err
	}
	n, err := s.searcher.Count(ctx, index, body)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("count %q: %w", index, err)
	}
	return envelope.Build(envelope.Text(fmt.Sprintf("Document count: %d", n))), nil
}

func countBody(q query.Query) ([]byte, error) {
	if q.IsZero() {
		return nil, nil
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(q.Raw(), &top); err != nil {
		return nil, domain.Invalid("query: %v", err)
	}
	if len(top) == 0 {
		return nil, nil
	}
	if _, ok := top["query"]; ok {
		return q.Raw(), nil
	}
	b, err := json.Marshal(map[string]json.RawMessage{"query": q.Raw()})
	if err != nil {
		return nil, fmt.Errorf("encode count body: %w", err)
	}
	return b, nil
}

// MultiSearch runs every subquery in one round trip and reports results in request order.
func (s *Service) MultiSearch(ctx context.Context, subs []SubQuery) (envelope.Envelope, error) {
	if len(subs) == 0 {
		return envelope.Envelope{}, domain.Invalid("no search requests provided")
	}

	var buf bytes.Buffer
	indices := make([]string, len(subs))
	for i, sub := range subs {
		index, err := domain.RequireName(fmt.Sprintf("searches[%d].index", i), sub.Index)
		if err != nil {
			return envelope.Envelope{}, err
		}
		indices[i] = index

		header, err := json.Marshal(map[string]string{"index": index})
		if err != nil {
			return envelope.Envelope{}, fmt.Errorf("encode header %d: %w", i, err)
		}
		q := sub.Query
		if q.IsZero() {
			q = query.MustParse(`{}`)
		}
		line, err := q.Compact()
		if err != nil {
			return envelope.Envelope{}, err
		}
		buf.Write(header)
		buf.WriteByte('\n')
		buf.Write(line)
		buf.WriteByte('\n')
	}

	resp, err := s.searcher.MultiSearch(ctx, buf.Bytes())
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("multi-search: %w", err)
	}
	return batch.AggregateMulti(resp.Responses, indices), nil
}
