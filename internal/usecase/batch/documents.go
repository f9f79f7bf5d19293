package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/esmcp/internal/domain"
)

// Document is one caller-supplied document: its raw bytes for submission and
// decoded fields for id lookup.
type Document struct {
	Raw    json.RawMessage
	Fields map[string]any
}

// ParseDocuments decodes every item as a JSON object. Numbers keep their
// textual form so ids like 12345678901234567890 survive.
func ParseDocuments(items []json.RawMessage) ([]Document, error) {
	if len(items) == 0 {
		return nil, domain.Invalid("no documents provided for import")
	}
	docs := make([]Document, len(items))
	for i, raw := range items {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, domain.Invalid("documents[%d] must be a JSON object", i)
		}
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, domain.Invalid("documents[%d]: %v", i, err)
		}
		docs[i] = Document{Raw: trimmed, Fields: fields}
	}
	return docs, nil
}

// ResolveDocumentID returns the value of idField when it is present and
// truthy; otherwise ok is false and the engine assigns the id.
func ResolveDocumentID(fields map[string]any, idField string) (id string, ok bool) {
	if idField == "" {
		return "", false
	}
	v, present := fields[idField]
	if !present {
		return "", false
	}
	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		if !val {
			return "", false
		}
		return "true", true
	case string:
		return val, val != ""
	case json.Number:
		f, err := val.Float64()
		if err == nil && f == 0 {
			return "", false
		}
		return val.String(), true
	case float64:
		if val == 0 {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

type bulkAction struct {
	Index bulkTarget `json:"index"`
}

type bulkTarget struct {
	Index string `json:"_index"`
	ID    string `json:"_id,omitempty"`
}

// BuildBulkBody renders docs as index actions. ids[i] is the caller-resolved
// id of docs[i], empty when the engine assigns it.
func BuildBulkBody(index string, docs []Document, idField string) (body []byte, ids []string, err error) {
	var buf bytes.Buffer
	ids = make([]string, len(docs))
	for i, doc := range docs {
		id, _ := ResolveDocumentID(doc.Fields, idField)
		ids[i] = id

		action, err := json.Marshal(bulkAction{Index: bulkTarget{Index: index, ID: id}})
		if err != nil {
			return nil, nil, fmt.Errorf("encode action %d: %w", i, err)
		}
		buf.Write(action)
		buf.WriteByte('\n')
		if err := json.Compact(&buf, doc.Raw); err != nil {
			return nil, nil, domain.Invalid("documents[%d]: %v", i, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), ids, nil
}
