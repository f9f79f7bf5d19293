package engine

import (
	"net/http"
	"net/url"
)

// Request is a version-shaped engine call built outside the driver.
type Request struct {
	Op     string
	Method string
	// Path is absolute and already escaped, e.g. "/_index_template/logs".
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}

// HasBody reports whether the request carries a JSON body.
func (r Request) HasBody() bool {
	return r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodDelete
}

// URL returns the relative request URL including the query string.
func (r Request) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}
