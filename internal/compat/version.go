// Package compat hides the request-shape differences between engine major versions.
package compat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/engine"
	"github.com/kailas-cloud/esmcp/internal/metrics"
)

// Generation groups engine majors that share one request shape.
type Generation int

// Known generations.
const (
	Generation7 Generation = 7
	Generation8 Generation = 8
)

// DefaultMajor is assumed when detection fails.
const DefaultMajor = 8

// GenerationFor returns the generation serving major.
func GenerationFor(major int) Generation {
	if major < int(Generation8) {
		return Generation7
	}
	return Generation8
}

// Source tells how a Detection was obtained.
type Source string

// Detection sources.
const (
	SourceDetected       Source = "detected"
	SourceAssumedDefault Source = "assumed_default"
)

// Detection is the outcome of one version probe.
type Detection struct {
	Major  int
	Source Source
	// Err is the probe failure behind an assumed default; nil when detected.
	Err error
}

// Generation returns the request-shape generation for the detected major.
func (d Detection) Generation() Generation { return GenerationFor(d.Major) }

// Detector probes the engine version. It keeps no state between calls so an
// engine upgraded in place is picked up by the next operation.
type Detector struct {
	info   engine.InfoReader
	logger *zap.Logger
}

// NewDetector creates a version detector.
func NewDetector(info engine.InfoReader, logger *zap.Logger) *Detector {
	return &Detector{info: info, logger: logger}
}

// Detect queries the engine self-description. It never fails: on any error it
// falls back to DefaultMajor and logs a warning.
func (d *Detector) Detect(ctx context.Context) Detection {
	major, err := d.probe(ctx)
	if err != nil {
		metrics.VersionDetectionsTotal.WithLabelValues(string(SourceAssumedDefault)).Inc()
		d.logger.Warn("Engine version detection failed, assuming default",
			zap.Int("major", DefaultMajor),
			zap.String("source", string(SourceAssumedDefault)),
			zap.Error(err),
		)
		return Detection{
			Major:  DefaultMajor,
			Source: SourceAssumedDefault,
			Err:    fmt.Errorf("%w: %w", domain.ErrVersionDetection, err),
		}
	}

	metrics.VersionDetectionsTotal.WithLabelValues(string(SourceDetected)).Inc()
	d.logger.Debug("Engine version detected",
		zap.Int("major", major),
		zap.String("source", string(SourceDetected)),
	)
	return Detection{Major: major, Source: SourceDetected}
}

func (d *Detector) probe(ctx context.Context) (int, error) {
	info, err := d.info.Info(ctx)
	if err != nil {
		return 0, fmt.Errorf("read engine info: %w", err)
	}
	return ParseMajor(info.Version.Number)
}

// ParseMajor returns the leading integer of a version string such as "8.13.4".
func ParseMajor(version string) (int, error) {
	v := strings.TrimSpace(version)
	head, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(head)
	if err != nil || major <= 0 {
		return 0, fmt.Errorf("malformed version %q", version)
	}
	return major, nil
}
