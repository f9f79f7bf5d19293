package collection

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/esmcp/internal/compat"
	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
)

// regexMeta marks a list pattern as a regular expression rather than an engine wildcard.
const regexMeta = `^$+?()[]{}|\`

// Summary is one listed collection.
type Summary struct {
	Name     string `json:"name"`
	Health   string `json:"health"`
	Status   string `json:"status"`
	DocCount int64  `json:"docCount"`
}

// Service manages collections and their mappings.
type Service struct {
	indices IndexReader
	runner  VersionedRunner
}

// New creates a collection service.
func New(indices IndexReader, runner VersionedRunner) *Service {
	return &Service{indices: indices, runner: runner}
}

// List returns collections matching pattern, sorted by name. A wildcard
// pattern is resolved by the engine; a regular expression must match the
// whole index name and is applied here to the full listing.
func (s *Service) List(ctx context.Context, pattern string) (envelope.Envelope, error) {
	pattern = strings.TrimSpace(pattern)

	var re *regexp.Regexp
	enginePattern := pattern
	if IsRegex(pattern) {
		var err error
		if re, err = regexp.Compile("^(?:" + pattern + ")$"); err != nil {
			return envelope.Envelope{}, domain.Invalid("pattern is not a valid regular expression: %v", err)
		}
		enginePattern = "*"
	}

	rows, err := s.indices.CatIndices(ctx, enginePattern)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("list indices: %w", err)
	}

	out := make([]Summary, 0, len(rows))
	for _, r := range rows {
		if re != nil && !re.MatchString(r.Index) {
			continue
		}
		docs, _ := strconv.ParseInt(r.DocCount, 10, 64)
		out = append(out, Summary{Name: r.Index, Health: r.Health, Status: r.Status, DocCount: docs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return envelope.Build(
		envelope.Text(fmt.Sprintf("Found %d indices", len(out))),
		envelope.Fragment{Body: out},
	), nil
}

// IsRegex reports whether pattern uses regular-expression syntax beyond the
// engine's "*" wildcard.
func IsRegex(pattern string) bool {
	return strings.ContainsAny(pattern, regexMeta) || strings.Contains(pattern, ".*")
}

// GetMapping renders the current mapping of index.
func (s *Service) GetMapping(ctx context.Context, index string) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	m, err := s.indices.GetMapping(ctx, index)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("get mapping of %q: %w", index, err)
	}
	return envelope.Build(
		envelope.Text("Index mapping: "+index),
		envelope.Fragment{Body: m},
	), nil
}

// Create creates index with optional settings and mappings.
func (s *Service) Create(
	ctx context.Context, index string, settings, mappings map[string]any,
) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	raw, _, err := s.runner.Run(ctx, compat.CreateIndexParams{Index: index, Settings: settings, Mappings: mappings})
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("create index %q: %w", index, err)
	}
	ack, err := compat.DecodeAck(raw)
	if err != nil {
		return envelope.Envelope{}, err
	}
	if !ack.Acknowledged {
		return envelope.Build(envelope.Text(fmt.Sprintf(
			"Index %q creation request sent, but not acknowledged. Check cluster status.", index))), nil
	}
	shards := "pending"
	if ack.ShardsAcknowledged {
		shards = "acknowledged"
	}
	return envelope.Build(envelope.Text(fmt.Sprintf(
		"Index %q created successfully.\nShards: %s", index, shards))), nil
}

// UpsertMapping creates index with mapping when absent, otherwise merges
// mapping into it. The resulting mapping is re-read and echoed.
func (s *Service) UpsertMapping(ctx context.Context, index string, mapping map[string]any) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	if len(mapping) == 0 {
		return envelope.Envelope{}, domain.Invalid("mappings must be a non-empty object")
	}

	exists, err := s.indices.IndexExists(ctx, index)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("check index %q: %w", index, err)
	}

	var summary string
	if !exists {
		if _, _, err := s.runner.Run(ctx, compat.CreateIndexParams{Index: index, Mappings: mapping}); err != nil {
			return envelope.Envelope{}, fmt.Errorf("create index %q: %w", index, err)
		}
		summary = fmt.Sprintf("Index %q does not exist. Created new index and applied mapping.", index)
	} else {
		if _, _, err := s.runner.Run(ctx, compat.PutMappingParams{Index: index, Mapping: mapping}); err != nil {
			return envelope.Envelope{}, fmt.Errorf("update mapping of %q: %w", index, err)
		}
		summary = fmt.Sprintf("Updated mapping for index %q.", index)
	}

	current, err := s.indices.GetMapping(ctx, index)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("read back mapping of %q: %w", index, err)
	}
	return envelope.Build(
		envelope.Text(summary),
		envelope.Labeled("Current mapping structure:", current),
	), nil
}
