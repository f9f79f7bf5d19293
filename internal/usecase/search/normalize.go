package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/esmcp/internal/domain/mapping"
	"github.com/kailas-cloud/esmcp/internal/domain/query"
)

// Emphasis markers wrapped around highlighted terms.
const (
	PreTag  = "<em>"
	PostTag = "</em>"
)

// SnippetSeparator joins multiple highlight snippets of one field.
const SnippetSeparator = " ... "

// Normalizer attaches derived highlighting to caller queries.
type Normalizer struct {
	mappings MappingReader
}

// NewNormalizer creates a query normalizer.
func NewNormalizer(mappings MappingReader) *Normalizer {
	return &Normalizer{mappings: mappings}
}

// Normalize fetches the current mapping of index and, when it declares any
// text or dense_vector field, sets the query's highlight clause to cover all of
// them. Every other top-level key is left untouched; with no eligible field the
// query is returned as is.
func (n *Normalizer) Normalize(ctx context.Context, index string, q query.Query) (query.Query, error) {
	raw, err := n.mappings.GetMapping(ctx, index)
	if err != nil {
		return query.Query{}, fmt.Errorf("get mapping of %q: %w", index, err)
	}
	fields := mapping.New(raw).HighlightFields()
	if len(fields) == 0 {
		return q, nil
	}
	return q.WithClause("highlight", HighlightClause(fields))
}

// HighlightClause requests default highlighting for fields with the fixed markers.
func HighlightClause(fields []string) map[string]any {
	perField := make(map[string]any, len(fields))
	for _, f := range fields {
		perField[f] = map[string]any{}
	}
	return map[string]any{
		"pre_tags":  []string{PreTag},
		"post_tags": []string{PostTag},
		"fields":    perField,
	}
}
