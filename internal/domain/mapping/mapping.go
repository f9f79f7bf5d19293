// Package mapping models the field-type declarations of a collection.
package mapping

import "sort"

// Field types that receive automatic highlighting.
const (
	TypeText        = "text"
	TypeDenseVector = "dense_vector"
)

// parameters are mapping-level keys; a body carrying any of them is already a full mapping.
var parameters = map[string]bool{
	"properties":           true,
	"dynamic":              true,
	"dynamic_templates":    true,
	"dynamic_date_formats": true,
	"date_detection":       true,
	"numeric_detection":    true,
	"runtime":              true,
	"enabled":              true,
	"subobjects":           true,
	"_source":              true,
	"_meta":                true,
	"_routing":             true,
	"_field_names":         true,
}

// Mapping is a read-only snapshot of one collection's mapping. It is fetched
// for a single operation and never cached.
type Mapping struct {
	raw map[string]any
}

// New wraps the "mappings" object returned by the engine.
func New(raw map[string]any) Mapping {
	if raw == nil {
		raw = map[string]any{}
	}
	return Mapping{raw: raw}
}

// Raw returns the mapping as returned by the engine.
func (m Mapping) Raw() map[string]any { return m.raw }

// Properties returns the top-level field declarations.
func (m Mapping) Properties() map[string]any {
	props, _ := m.raw["properties"].(map[string]any)
	return props
}

// FieldType returns the declared type of a top-level field, "" when absent.
// Object fields without an explicit type report "".
func (m Mapping) FieldType(name string) string {
	decl, _ := m.Properties()[name].(map[string]any)
	t, _ := decl["type"].(string)
	return t
}

// HighlightFields returns, sorted, the top-level fields declared as text or dense_vector.
func (m Mapping) HighlightFields() []string {
	var out []string
	for name := range m.Properties() {
		switch m.FieldType(name) {
		case TypeText, TypeDenseVector:
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// EnsureProperties wraps a bare field map as {"properties": body}. Bodies that already
// carry a mapping-level parameter are returned unchanged.
func EnsureProperties(body map[string]any) map[string]any {
	if len(body) == 0 {
		return body
	}
	for k := range body {
		if parameters[k] {
			return body
		}
	}
	return map[string]any{"properties": body}
}
