package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// TotalSummary is the metadata line of a search result.
func TotalSummary(h engine.Hits, from int) string {
	return fmt.Sprintf("Total search results: %d, Displaying %d records starting from position %d",
		h.TotalValue(), len(h.Hits), from)
}

// RenderHit lists highlighted fields first, then the remaining source fields
// as "field: json" in source order.
func RenderHit(h engine.Hit) (string, error) {
	highlights, err := members(h.Highlight)
	if err != nil {
		return "", fmt.Errorf("hit %s highlight: %w", h.ID, err)
	}
	source, err := members(h.Source)
	if err != nil {
		return "", fmt.Errorf("hit %s source: %w", h.ID, err)
	}

	var lines []string
	shown := make(map[string]bool, len(highlights))
	for _, m := range highlights {
		shown[m.key] = true
		var snippets []string
		if err := json.Unmarshal(m.value, &snippets); err != nil {
			return "", fmt.Errorf("hit %s highlight %q: %w", h.ID, m.key, err)
		}
		if len(snippets) > 0 {
			lines = append(lines, m.key+" (Highlight): "+strings.Join(snippets, SnippetSeparator))
		}
	}
	for _, m := range source {
		if shown[m.key] {
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, m.value); err != nil {
			return "", fmt.Errorf("hit %s field %q: %w", h.ID, m.key, err)
		}
		lines = append(lines, m.key+": "+buf.String())
	}
	return strings.Join(lines, "\n"), nil
}

type member struct {
	key   string
	value json.RawMessage
}

var errNotObject = errors.New("not a JSON object")

// members decodes a JSON object keeping key order. Empty input and null yield no members.
func members(raw json.RawMessage) ([]member, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}
	var out []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode %q: %w", key, err)
		}
		out = append(out, member{key: key, value: value})
	}
	return out, nil
}
