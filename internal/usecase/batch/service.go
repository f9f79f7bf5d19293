package batch

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	logpkg "github.com/kailas-cloud/esmcp/internal/logger"
)

// Service handles bulk document writes with per-item outcome reporting.
type Service struct {
	bulk BulkWriter
}

// New creates a batch service.
func New(bulk BulkWriter) *Service {
	return &Service{bulk: bulk}
}

// Write submits every document in one bulk call and refreshes before
// returning. Item failures are reported in the envelope, not as an error.
func (s *Service) Write(
	ctx context.Context, index string, documents []json.RawMessage, idField string,
) (envelope.Envelope, error) {
	index, err := domain.RequireName("index", index)
	if err != nil {
		return envelope.Envelope{}, err
	}
	docs, err := ParseDocuments(documents)
	if err != nil {
		return envelope.Envelope{}, err
	}
	body, ids, err := BuildBulkBody(index, docs, idField)
	if err != nil {
		return envelope.Envelope{}, err
	}

	resp, err := s.bulk.Bulk(ctx, body)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("bulk write to %q: %w", index, err)
	}
	if resp.Errors {
		logpkg.FromContext(ctx).Warn("Bulk write had item failures",
			zap.String("index", index),
			zap.Int("documents", len(docs)),
		)
	}
	return AggregateWrite(resp.Items, ids, len(docs), resp.Took), nil
}
