package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the engine is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status        Status                 `json:"status"`
	Checks        map[string]CheckResult `json:"checks"`
	Cluster       string                 `json:"cluster,omitempty"`
	EngineVersion string                 `json:"engine_version,omitempty"`
}

// Service coordinates health checks.
type Service struct {
	info InfoReader
}

// New creates a Service.
func New(info InfoReader) *Service {
	return &Service{info: info}
}

// Check probes the engine.
func (s *Service) Check(ctx context.Context) Report {
	info, err := s.info.Info(ctx)
	if err != nil || info == nil {
		return Report{Status: Unhealthy, Checks: map[string]CheckResult{"engine": CheckError}}
	}
	return Report{
		Status:        Healthy,
		Checks:        map[string]CheckResult{"engine": CheckOK},
		Cluster:       info.ClusterName,
		EngineVersion: info.Version.Number,
	}
}
