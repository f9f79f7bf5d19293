// Package query holds the caller-supplied query DSL object.
//
// A Query is opaque: only the keys this service inspects (from) or adds (highlight)
// are ever decoded. The caller's bytes are kept verbatim otherwise.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/esmcp/internal/domain"
)

// Query is a validated JSON object.
type Query struct {
	raw json.RawMessage
}

// Parse validates that raw is a JSON object that survives a serialization round trip.
func Parse(raw json.RawMessage) (Query, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Query{}, domain.Invalid("query must be a JSON object")
	}
	var decoded map[string]any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return Query{}, domain.Invalid("query is not valid JSON: %v", err)
	}
	if _, err := json.Marshal(decoded); err != nil {
		return Query{}, domain.Invalid("query is not serializable: %v", err)
	}
	return Query{raw: append(json.RawMessage(nil), trimmed...)}, nil
}

// FromMap builds a Query from a decoded object. Values that cannot be serialized
// (NaN, channels, functions) are rejected.
func FromMap(m map[string]any) (Query, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return Query{}, domain.Invalid("query is not serializable: %v", err)
	}
	return Parse(data)
}

// MustParse is Parse for literals known to be valid. Panics on error.
func MustParse(s string) Query {
	q, err := Parse(json.RawMessage(s))
	if err != nil {
		panic(err)
	}
	return q
}

// Raw returns the query bytes exactly as they will be sent to the engine.
func (q Query) Raw() json.RawMessage { return q.raw }

// IsZero reports whether q was never parsed.
func (q Query) IsZero() bool { return len(q.raw) == 0 }

// Compact returns q on a single line, as required inside NDJSON bodies.
func (q Query) Compact() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, q.raw); err != nil {
		return nil, fmt.Errorf("compact query: %w", err)
	}
	return buf.Bytes(), nil
}

// From returns the paging offset requested by the caller, 0 when absent or not a number.
func (q Query) From() int {
	var top struct {
		From json.RawMessage `json:"from"`
	}
	if err := json.Unmarshal(q.raw, &top); err != nil || len(top.From) == 0 {
		return 0
	}
	n, err := strconv.ParseFloat(string(bytes.Trim(top.From, `"`)), 64)
	if err != nil {
		return 0
	}
	return int(n)
}

// WithClause returns a copy of q with key set to value. Every other top-level
// clause keeps its original bytes.
func (q Query) WithClause(key string, value any) (Query, error) {
	members := make(map[string]json.RawMessage)
	if len(q.raw) > 0 {
		if err := json.Unmarshal(q.raw, &members); err != nil {
			return Query{}, fmt.Errorf("decode query: %w", err)
		}
	}
	encoded, err := encode(value)
	if err != nil {
		return Query{}, fmt.Errorf("encode %s clause: %w", key, err)
	}
	members[key] = encoded
	data, err := encode(members)
	if err != nil {
		return Query{}, fmt.Errorf("encode query: %w", err)
	}
	return Query{raw: data}, nil
}

// encode marshals v without HTML escaping so emphasis markers stay readable on the wire.
func encode(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err //nolint:wrapcheck // wrapped by callers
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
