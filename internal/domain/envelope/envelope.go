// Package envelope shapes operation outcomes into ordered plain-text fragments.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorPrefix starts the single fragment of every error envelope.
const ErrorPrefix = "Error: "

// Fragment is one labelled piece of an operation outcome.
// Body may be a string, a fmt.Stringer, raw JSON, or any JSON-serializable value.
type Fragment struct {
	Label string
	Body  any
}

// Text creates an unlabelled text fragment.
func Text(s string) Fragment { return Fragment{Body: s} }

// Labeled creates a fragment rendered as label, newline, body.
func Labeled(label string, body any) Fragment { return Fragment{Label: label, Body: body} }

// Envelope is the rendered outcome of one operation.
type Envelope struct {
	texts   []string
	isError bool
}

// Build renders fragments in order. It never fails.
func Build(fragments ...Fragment) Envelope {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, render(f))
	}
	return Envelope{texts: texts}
}

// Error collapses a failure into a single "Error:" fragment.
func Error(err error) Envelope {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Envelope{texts: []string{ErrorPrefix + msg}, isError: true}
}

// Texts returns a copy of the rendered fragments.
func (e Envelope) Texts() []string {
	out := make([]string, len(e.texts))
	copy(out, e.texts)
	return out
}

// IsError reports whether the envelope was built by Error.
func (e Envelope) IsError() bool { return e.isError }

// String joins all fragments with newlines.
func (e Envelope) String() string { return strings.Join(e.texts, "\n") }

func render(f Fragment) string {
	body := renderBody(f.Body)
	switch {
	case f.Label == "":
		return body
	case body == "":
		return f.Label
	default:
		return f.Label + "\n" + body
	}
}

func renderBody(v any) string {
	switch b := v.(type) {
	case nil:
		return ""
	case string:
		return b
	case fmt.Stringer:
		return b.String()
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", "  "); err != nil {
			return string(b)
		}
		return buf.String()
	default:
		return marshal(b, "  ")
	}
}

// JSON serializes v compactly without HTML escaping, so emphasis markers survive verbatim.
func JSON(v any) string { return marshal(v, "") }

func marshal(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
