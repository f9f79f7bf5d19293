package template

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/esmcp/internal/compat"
	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

type mockRunner struct {
	raw   json.RawMessage
	gen   compat.Generation
	err   error
	calls []compat.Params
}

func (m *mockRunner) Run(_ context.Context, p compat.Params) (json.RawMessage, compat.Generation, error) {
	m.calls = append(m.calls, p)
	gen := m.gen
	if gen == 0 {
		gen = compat.Generation8
	}
	return m.raw, gen, m.err
}

func TestCreate(t *testing.T) {
	prio := 3
	r := &mockRunner{raw: json.RawMessage(`{"acknowledged":true}`)}
	env, err := New(r).Create(context.Background(), CreateRequest{
		Name:          "logs",
		IndexPatterns: []string{"logs-*", " ", "app-*"},
		Template:      map[string]any{"settings": map[string]any{"number_of_shards": 1}},
		Priority:      &prio,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		`Index template "logs" created successfully.`,
		"Index patterns: logs-*, app-*",
		"Template was acknowledged by the cluster.",
	}
	if got := env.Texts(); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("texts = %q", got)
	}
	p, ok := r.calls[0].(compat.PutTemplateParams)
	if !ok || len(p.IndexPatterns) != 2 || *p.Priority != 3 {
		t.Errorf("params = %+v", r.calls[0])
	}
}

func TestCreate_Validation(t *testing.T) {
	r := &mockRunner{}
	if _, err := New(r).Create(context.Background(), CreateRequest{Name: "", IndexPatterns: []string{"x"}}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name: %v", err)
	}
	if _, err := New(r).Create(context.Background(), CreateRequest{Name: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("no patterns: %v", err)
	}
	if len(r.calls) != 0 {
		t.Error("engine must not be called")
	}
}

func TestGet_Listing(t *testing.T) {
	r := &mockRunner{raw: json.RawMessage(`{"index_templates":[
		{"name":"b","index_template":{"index_patterns":["b-*"]}},
		{"name":"a","index_template":{"index_patterns":["a-*","aa-*"],"priority":5,"version":2}}]}`)}
	env, err := New(r).Get(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	texts := env.Texts()
	if len(texts) != 2 {
		t.Fatalf("fragments = %d, want 2", len(texts))
	}
	if texts[0] != "Template: a\nIndex patterns: a-*, aa-*\nVersion: 2\nPriority: 5" {
		t.Errorf("first = %q", texts[0])
	}
	if texts[1] != "Template: b\nIndex patterns: b-*\nVersion: Not specified\nPriority: Not specified" {
		t.Errorf("second = %q", texts[1])
	}
}

func TestGet_LegacyShape(t *testing.T) {
	r := &mockRunner{gen: compat.Generation7, raw: json.RawMessage(`{"logs":{"order":1,"index_patterns":["logs-*"]}}`)}
	env, err := New(r).Get(context.Background(), "logs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(env.String(), "Priority: 1") {
		t.Errorf("output = %q", env.String())
	}
}

func TestGet_Empty(t *testing.T) {
	r := &mockRunner{raw: json.RawMessage(`{"index_templates":[]}`)}
	env, err := New(r).Get(context.Background(), "")
	if err != nil || env.String() != "No index templates found" {
		t.Errorf("Get() = %q, %v", env.String(), err)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := &mockRunner{err: &engine.Error{Op: engine.OpGetTemplate, Status: 404}}
	_, err := New(r).Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	r := &mockRunner{raw: json.RawMessage(`{"acknowledged":true}`)}
	env, err := New(r).Delete(context.Background(), "logs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.String() != `Index template "logs" deleted successfully.` {
		t.Errorf("output = %q", env.String())
	}
}

func TestDelete_NotAcknowledged(t *testing.T) {
	r := &mockRunner{raw: json.RawMessage(`{"acknowledged":false}`)}
	env, err := New(r).Delete(context.Background(), "logs")
	if err != nil || !strings.Contains(env.String(), "not acknowledged") {
		t.Errorf("Delete() = %q, %v", env.String(), err)
	}
}
