package engine

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/kailas-cloud/esmcp/internal/domain"
)

// Op names identify engine calls in errors and metrics.
const (
	OpInfo           = "info"
	OpCatIndices     = "cat.indices"
	OpGetMapping     = "indices.get_mapping"
	OpIndexExists    = "indices.exists"
	OpCreateIndex    = "indices.create"
	OpPutMapping     = "indices.put_mapping"
	OpSearch         = "search"
	OpCount          = "count"
	OpMultiSearch    = "msearch"
	OpBulk           = "bulk"
	OpIndexDocument  = "index"
	OpUpdateDocument = "update"
	OpDeleteDocument = "delete"
	OpClusterHealth  = "cluster.health"
	OpClusterStats   = "cluster.stats"
	OpNodesInfo      = "nodes.info"
	OpPutTemplate    = "indices.put_template"
	OpGetTemplate    = "indices.get_template"
	OpDeleteTemplate = "indices.delete_template"
	OpReindex        = "reindex"
)

// Error wraps an engine failure with the operation name for diagnostics.
// Status is zero when no HTTP response was received.
type Error struct {
	Op     string
	Status int
	Type   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, " [%d]", e.Status)
	}
	if e.Type != "" {
		b.WriteString(": ")
		b.WriteString(e.Type)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is maps HTTP status classes onto the domain sentinels.
func (e *Error) Is(target error) bool {
	switch target { //nolint:errorlint // sentinel identity
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrConnection:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

// NewTransportError reports a call that never got an HTTP response.
func NewTransportError(op string, err error) *Error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", domain.ErrConnection, err)}
}

// NewResponseError builds an Error from an engine error response.
func NewResponseError(op string, status int, cause *ErrorCause) *Error {
	e := &Error{Op: op, Status: status}
	if cause != nil {
		e.Type = cause.Type
		e.Reason = cause.Reason
	}
	if e.Type == "" && e.Reason == "" {
		e.Reason = http.StatusText(status)
	}
	return e
}
