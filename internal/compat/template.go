package compat

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Template is the generation-neutral view of a stored template.
// For generation 7 Priority carries the legacy "order".
type Template struct {
	Name          string
	IndexPatterns []string
	Priority      *int64
	Version       *int64
}

// patterns accepts a single string or an array of strings.
type patterns []string

func (p *patterns) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*p = patterns{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("decode index_patterns: %w", err)
	}
	*p = many
	return nil
}

// DecodeTemplates parses a template listing in the shape of generation g,
// sorted by name.
func DecodeTemplates(g Generation, raw json.RawMessage) ([]Template, error) {
	var out []Template
	switch g {
	case Generation7:
		var body map[string]struct {
			IndexPatterns patterns `json:"index_patterns"`
			Order         *int64   `json:"order"`
			Version       *int64   `json:"version"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("decode templates: %w", err)
		}
		for name, t := range body {
			out = append(out, Template{Name: name, IndexPatterns: t.IndexPatterns, Priority: t.Order, Version: t.Version})
		}
	case Generation8:
		var body struct {
			IndexTemplates []struct {
				Name          string `json:"name"`
				IndexTemplate struct {
					IndexPatterns patterns `json:"index_patterns"`
					Priority      *int64   `json:"priority"`
					Version       *int64   `json:"version"`
				} `json:"index_template"`
			} `json:"index_templates"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("decode templates: %w", err)
		}
		for _, t := range body.IndexTemplates {
			it := t.IndexTemplate
			out = append(out, Template{Name: t.Name, IndexPatterns: it.IndexPatterns, Priority: it.Priority, Version: it.Version})
		}
	default:
		return nil, fmt.Errorf("compat: no template listing shape for generation %d", g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
