// Package template manages index templates across engine generations.
package template

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/esmcp/internal/compat"
	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
)

// CreateRequest holds the logical parameters of a template.
type CreateRequest struct {
	Name          string
	IndexPatterns []string
	// Template may carry "settings", "mappings" and "aliases".
	Template map[string]any
	Priority *int
	Version  *int
}

// Service creates, reads and deletes templates.
type Service struct {
	runner VersionedRunner
}

// New creates a template service.
func New(runner VersionedRunner) *Service {
	return &Service{runner: runner}
}

// Create stores or replaces a template.
func (s *Service) Create(ctx context.Context, req CreateRequest) (envelope.Envelope, error) {
	name, err := domain.RequireName("name", req.Name)
	if err != nil {
		return envelope.Envelope{}, err
	}
	patterns := make([]string, 0, len(req.IndexPatterns))
	for _, p := range req.IndexPatterns {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return envelope.Envelope{}, domain.Invalid("indexPatterns must contain at least one pattern")
	}

	raw, _, err := s.runner.Run(ctx, compat.PutTemplateParams{
		Name:          name,
		IndexPatterns: patterns,
		Template:      req.Template,
		Priority:      req.Priority,
		Version:       req.Version,
	})
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("create template %q: %w", name, err)
	}
	ack, err := compat.DecodeAck(raw)
	if err != nil {
		return envelope.Envelope{}, err
	}

	status := "Template was acknowledged by the cluster."
	if !ack.Acknowledged {
		status = "Template was not acknowledged. Check cluster status."
	}
	return envelope.Build(
		envelope.Text(fmt.Sprintf("Index template %q created successfully.", name)),
		envelope.Text("Index patterns: "+strings.Join(patterns, ", ")),
		envelope.Text(status),
	), nil
}

// Get lists the template called name, or every template when name is empty.
func (s *Service) Get(ctx context.Context, name string) (envelope.Envelope, error) {
	name = strings.TrimSpace(name)
	raw, g, err := s.runner.Run(ctx, compat.GetTemplateParams{Name: name})
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("get template: %w", err)
	}
	templates, err := compat.DecodeTemplates(g, raw)
	if err != nil {
		return envelope.Envelope{}, err
	}

	if len(templates) == 0 {
		if name != "" {
			return envelope.Build(envelope.Text(fmt.Sprintf("No template found with name %q", name))), nil
		}
		return envelope.Build(envelope.Text("No index templates found")), nil
	}

	fragments := make([]envelope.Fragment, len(templates))
	for i, t := range templates {
		fragments[i] = envelope.Text(fmt.Sprintf("Template: %s\nIndex patterns: %s\nVersion: %s\nPriority: %s",
			t.Name, strings.Join(t.IndexPatterns, ", "), optional(t.Version), optional(t.Priority)))
	}
	return envelope.Build(fragments...), nil
}

// Delete removes the template called name.
func (s *Service) Delete(ctx context.Context, name string) (envelope.Envelope, error) {
	name, err := domain.RequireName("name", name)
	if err != nil {
		return envelope.Envelope{}, err
	}
	raw, _, err := s.runner.Run(ctx, compat.DeleteTemplateParams{Name: name})
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("delete template %q: %w", name, err)
	}
	ack, err := compat.DecodeAck(raw)
	if err != nil {
		return envelope.Envelope{}, err
	}
	if !ack.Acknowledged {
		return envelope.Build(envelope.Text(
			"Index template delete request sent, but not acknowledged. Check cluster status.")), nil
	}
	return envelope.Build(envelope.Text(fmt.Sprintf("Index template %q deleted successfully.", name))), nil
}

func optional(v *int64) string {
	if v == nil {
		return "Not specified"
	}
	return strconv.FormatInt(*v, 10)
}
