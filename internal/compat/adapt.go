package compat

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/kailas-cloud/esmcp/internal/domain/mapping"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Kind names a version-sensitive operation.
type Kind string

// Version-sensitive operation kinds.
const (
	KindCreateIndex    Kind = "create_index"
	KindPutMapping     Kind = "put_mapping"
	KindPutTemplate    Kind = "put_template"
	KindGetTemplate    Kind = "get_template"
	KindDeleteTemplate Kind = "delete_template"
	KindReindex        Kind = "reindex"
)

// Params are the logical parameters of one version-sensitive operation.
// The interface is sealed: every kind supplies both shapes, so a new kind
// cannot compile without deciding its legacy form.
type Params interface {
	Kind() Kind
	legacy() engine.Request
	current() engine.Request
}

// Adapt builds the request shape for generation g.
func Adapt(p Params, g Generation) (engine.Request, error) {
	switch g {
	case Generation7:
		return p.legacy(), nil
	case Generation8:
		return p.current(), nil
	}
	return engine.Request{}, fmt.Errorf("compat: %s has no shape for generation %d", p.Kind(), g)
}

func noTypeName() url.Values { return url.Values{"include_type_name": {"false"}} }

// CreateIndexParams creates a collection with optional settings and mappings.
type CreateIndexParams struct {
	Index    string
	Settings map[string]any
	Mappings map[string]any
}

// Kind implements Params.
func (CreateIndexParams) Kind() Kind { return KindCreateIndex }

func (p CreateIndexParams) body() map[string]any {
	body := map[string]any{}
	if len(p.Settings) > 0 {
		body["settings"] = p.Settings
	}
	if len(p.Mappings) > 0 {
		body["mappings"] = mapping.EnsureProperties(p.Mappings)
	}
	return body
}

func (p CreateIndexParams) legacy() engine.Request {
	r := p.current()
	r.Query = noTypeName()
	return r
}

func (p CreateIndexParams) current() engine.Request {
	return engine.Request{
		Op:     engine.OpCreateIndex,
		Method: http.MethodPut,
		Path:   "/" + url.PathEscape(p.Index),
		Body:   p.body(),
	}
}

// PutMappingParams merges a mapping into an existing collection.
type PutMappingParams struct {
	Index   string
	Mapping map[string]any
}

// Kind implements Params.
func (PutMappingParams) Kind() Kind { return KindPutMapping }

func (p PutMappingParams) legacy() engine.Request {
	r := p.current()
	r.Query = noTypeName()
	return r
}

func (p PutMappingParams) current() engine.Request {
	body := mapping.EnsureProperties(p.Mapping)
	if body == nil {
		body = map[string]any{}
	}
	return engine.Request{
		Op:     engine.OpPutMapping,
		Method: http.MethodPut,
		Path:   "/" + url.PathEscape(p.Index) + "/_mapping",
		Body:   body,
	}
}

// PutTemplateParams creates or replaces a template. Template may carry
// "settings", "mappings" and "aliases".
type PutTemplateParams struct {
	Name          string
	IndexPatterns []string
	Template      map[string]any
	Priority      *int
	Version       *int
}

// Kind implements Params.
func (PutTemplateParams) Kind() Kind { return KindPutTemplate }

func (p PutTemplateParams) sections() map[string]any {
	out := map[string]any{}
	for _, key := range []string{"settings", "mappings", "aliases"} {
		v, ok := p.Template[key]
		if !ok || v == nil {
			continue
		}
		if key == "mappings" {
			if m, isMap := v.(map[string]any); isMap {
				v = mapping.EnsureProperties(m)
			}
		}
		out[key] = v
	}
	return out
}

func (p PutTemplateParams) legacy() engine.Request {
	body := map[string]any{"index_patterns": p.IndexPatterns}
	for k, v := range p.sections() {
		body[k] = v
	}
	if p.Priority != nil {
		body["order"] = *p.Priority
	}
	if p.Version != nil {
		body["version"] = *p.Version
	}
	return engine.Request{
		Op:     engine.OpPutTemplate,
		Method: http.MethodPut,
		Path:   "/_template/" + url.PathEscape(p.Name),
		Body:   body,
	}
}

func (p PutTemplateParams) current() engine.Request {
	body := map[string]any{"index_patterns": p.IndexPatterns}
	if sections := p.sections(); len(sections) > 0 {
		body["template"] = sections
	}
	if p.Priority != nil {
		body["priority"] = *p.Priority
	}
	if p.Version != nil {
		body["version"] = *p.Version
	}
	return engine.Request{
		Op:     engine.OpPutTemplate,
		Method: http.MethodPut,
		Path:   "/_index_template/" + url.PathEscape(p.Name),
		Body:   body,
	}
}

// GetTemplateParams reads one template, or all when Name is empty.
type GetTemplateParams struct {
	Name string
}

// Kind implements Params.
func (GetTemplateParams) Kind() Kind { return KindGetTemplate }

func (p GetTemplateParams) legacy() engine.Request { return p.request("/_template") }

func (p GetTemplateParams) current() engine.Request { return p.request("/_index_template") }

func (p GetTemplateParams) request(base string) engine.Request {
	path := base
	if p.Name != "" {
		path += "/" + url.PathEscape(p.Name)
	}
	return engine.Request{Op: engine.OpGetTemplate, Method: http.MethodGet, Path: path}
}

// DeleteTemplateParams removes a template.
type DeleteTemplateParams struct {
	Name string
}

// Kind implements Params.
func (DeleteTemplateParams) Kind() Kind { return KindDeleteTemplate }

func (p DeleteTemplateParams) legacy() engine.Request {
	return engine.Request{Op: engine.OpDeleteTemplate, Method: http.MethodDelete, Path: "/_template/" + url.PathEscape(p.Name)}
}

func (p DeleteTemplateParams) current() engine.Request {
	return engine.Request{Op: engine.OpDeleteTemplate, Method: http.MethodDelete, Path: "/_index_template/" + url.PathEscape(p.Name)}
}

// ReindexParams submits an asynchronous copy from Source to Dest. Query is a
// query clause applied to the source; Script transforms each document.
type ReindexParams struct {
	Source string
	Dest   string
	Query  map[string]any
	Script map[string]any
}

// Kind implements Params.
func (ReindexParams) Kind() Kind { return KindReindex }

// Both generations accept the same reindex body.
func (p ReindexParams) legacy() engine.Request { return p.current() }

func (p ReindexParams) current() engine.Request {
	source := map[string]any{"index": p.Source}
	if len(p.Query) > 0 {
		source["query"] = p.Query
	}
	body := map[string]any{
		"source": source,
		"dest":   map[string]any{"index": p.Dest},
	}
	if len(p.Script) > 0 {
		body["script"] = p.Script
	}
	return engine.Request{
		Op:     engine.OpReindex,
		Method: http.MethodPost,
		Path:   "/_reindex",
		Query:  url.Values{"wait_for_completion": {"false"}},
		Body:   body,
	}
}
