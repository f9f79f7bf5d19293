// Package reindex submits asynchronous collection copies.
package reindex

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/esmcp/internal/compat"
	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
)

// VersionedRunner executes version-sensitive requests.
type VersionedRunner interface {
	Run(ctx context.Context, p compat.Params) (json.RawMessage, compat.Generation, error)
}

// Request holds the logical reindex parameters. Query is a query clause
// selecting source documents; Script transforms each document.
type Request struct {
	Source string
	Dest   string
	Query  map[string]any
	Script map[string]any
}

// Service submits reindex tasks. It never waits for completion.
type Service struct {
	runner VersionedRunner
}

// New creates a reindex service.
func New(runner VersionedRunner) *Service {
	return &Service{runner: runner}
}

// Start submits the reindex and returns the engine task handle.
func (s *Service) Start(ctx context.Context, req Request) (envelope.Envelope, error) {
	source, err := domain.RequireName("source", req.Source)
	if err != nil {
		return envelope.Envelope{}, err
	}
	dest, err := domain.RequireName("dest", req.Dest)
	if err != nil {
		return envelope.Envelope{}, err
	}
	if source == dest {
		return envelope.Envelope{}, domain.Invalid("source and dest must differ")
	}

	raw, _, err := s.runner.Run(ctx, compat.ReindexParams{Source: source, Dest: dest, Query: req.Query, Script: req.Script})
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("reindex %q -> %q: %w", source, dest, err)
	}

	var resp struct {
		Task string `json:"task"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return envelope.Envelope{}, fmt.Errorf("decode reindex response: %w", err)
	}
	if resp.Task == "" {
		return envelope.Envelope{}, fmt.Errorf("reindex %q -> %q: engine returned no task id", source, dest)
	}

	return envelope.Build(
		envelope.Text("Reindex operation started. Task ID: "+resp.Task),
		envelope.Text(fmt.Sprintf("Source index: %s -> Destination index: %s", source, dest)),
		envelope.Text("Use Task API to monitor progress: GET _tasks/"+resp.Task),
	), nil
}
