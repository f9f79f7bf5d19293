package compat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Runner executes version-sensitive operations: one detection, one adapted request.
type Runner struct {
	detector *Detector
	doer     engine.Doer
}

// NewRunner creates a Runner.
func NewRunner(detector *Detector, doer engine.Doer) *Runner {
	return &Runner{detector: detector, doer: doer}
}

// Run detects the engine version, adapts p to it and executes the request.
// It returns the generation used so callers can decode generation-specific bodies.
func (r *Runner) Run(ctx context.Context, p Params) (json.RawMessage, Generation, error) {
	g := r.detector.Detect(ctx).Generation()
	req, err := Adapt(p, g)
	if err != nil {
		return nil, g, err
	}
	raw, err := r.doer.Do(ctx, req)
	if err != nil {
		return nil, g, fmt.Errorf("%s: %w", p.Kind(), err)
	}
	return raw, g, nil
}

// Ack is the acknowledgement body returned by index and template writes.
type Ack struct {
	Acknowledged       bool   `json:"acknowledged"`
	ShardsAcknowledged bool   `json:"shards_acknowledged"`
	Index              string `json:"index,omitempty"`
}

// DecodeAck parses an acknowledgement body.
func DecodeAck(raw json.RawMessage) (Ack, error) {
	var a Ack
	if err := json.Unmarshal(raw, &a); err != nil {
		return Ack{}, fmt.Errorf("decode acknowledgement: %w", err)
	}
	return a, nil
}
