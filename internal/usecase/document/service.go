// Package document writes, updates and deletes single documents.
// Every write is refreshed before returning.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Service handles single-document writes.
type Service struct {
	writer Writer
}

// New creates a document service.
func New(writer Writer) *Service {
	return &Service{writer: writer}
}

// Index stores doc under id, or under an engine-assigned id when id is empty.
func (s *Service) Index(ctx context.Context, index, id string, doc json.RawMessage) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	body, err := object("document", doc)
	if err != nil {
		return envelope.Envelope{}, err
	}

	res, err := s.writer.IndexDocument(ctx, index, id, body)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("index document: %w", err)
	}
	return envelope.Build(envelope.Labeled("Document indexed successfully:", versioned(res))), nil
}

// Update merges doc into the existing document.
func (s *Service) Update(ctx context.Context, index, id string, doc json.RawMessage) (envelope.Envelope, error) {
	index, id, err := target(index, id)
	if err != nil {
		return envelope.Envelope{}, err
	}
	partial, err := object("doc", doc)
	if err != nil {
		return envelope.Envelope{}, err
	}

	body, err := json.Marshal(map[string]json.RawMessage{"doc": partial})
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("encode update: %w", err)
	}
	res, err := s.writer.UpdateDocument(ctx, index, id, body)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("update document %q: %w", id, err)
	}
	return envelope.Build(envelope.Labeled("Document updated:", versioned(res))), nil
}

// Delete removes the document.
func (s *Service) Delete(ctx context.Context, index, id string) (envelope.Envelope, error) {
	index, id, err := target(index, id)
	if err != nil {
		return envelope.Envelope{}, err
	}
	res, err := s.writer.DeleteDocument(ctx, index, id)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("delete document %q: %w", id, err)
	}
	return envelope.Build(envelope.Labeled("Document deleted:",
		fmt.Sprintf("Index: %s\nID: %s\nResult: %s", res.Index, res.ID, res.Result))), nil
}

func target(index, id string) (string, string, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return "", "", err
	}
	id, err = domain.RequireName("id", id)
	if err != nil {
		return "", "", err
	}
	return index, id, nil
}

// object checks that raw is a JSON object and returns it compacted.
func object(field string, raw json.RawMessage) ([]byte, error) {
	var m map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &m) != nil || m == nil {
		return nil, domain.Invalid("%s must be a JSON object", field)
	}
	return json.Marshal(m)
}

func versioned(res *engine.DocumentResult) string {
	return fmt.Sprintf("Index: %s\nID: %s\nVersion: %d\nResult: %s", res.Index, res.ID, res.Version, res.Result)
}
