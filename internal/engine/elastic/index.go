package elastic

import (
	"context"
	"net/http"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// CatIndices lists indices matching pattern; an empty pattern lists all.
func (s *Store) CatIndices(ctx context.Context, pattern string) ([]engine.IndexSummary, error) {
	if pattern == "" {
		pattern = "*"
	}
	cat := s.client.Cat.Indices
	res, err := cat(
		cat.WithContext(ctx),
		cat.WithIndex(pattern),
		cat.WithFormat("json"),
		cat.WithH("health", "status", "index", "docs.count"),
	)
	var rows []engine.IndexSummary
	if err = decode(engine.OpCatIndices, res, err, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetMapping returns the mappings of index. When index is an alias the
// response is keyed by the concrete index, so a single entry is accepted.
func (s *Store) GetMapping(ctx context.Context, index string) (map[string]any, error) {
	gm := s.client.Indices.GetMapping
	res, err := gm(gm.WithContext(ctx), gm.WithIndex(index))

	var body map[string]struct {
		Mappings map[string]any `json:"mappings"`
	}
	if err = decode(engine.OpGetMapping, res, err, &body); err != nil {
		return nil, err
	}

	if entry, ok := body[index]; ok {
		return nonNil(entry.Mappings), nil
	}
	switch len(body) {
	case 0:
		return nil, &engine.Error{Op: engine.OpGetMapping, Status: http.StatusNotFound, Reason: "no such index [" + index + "]"}
	case 1:
		for _, entry := range body {
			return nonNil(entry.Mappings), nil
		}
	}
	return nil, domain.Invalid("%q matches %d indices, name a single index", index, len(body))
}

// IndexExists reports whether index (or an alias) exists.
func (s *Store) IndexExists(ctx context.Context, index string) (bool, error) {
	ex := s.client.Indices.Exists
	res, err := ex([]string{index}, ex.WithContext(ctx))
	if err == nil && res.StatusCode == http.StatusNotFound {
		_ = res.Body.Close()
		record(engine.OpIndexExists, nil)
		return false, nil
	}
	if err = decode(engine.OpIndexExists, res, err, nil); err != nil {
		return false, err
	}
	return true, nil
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
