package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOutcome(t *testing.T) {
	if got := Outcome(nil); got != "ok" {
		t.Errorf("Outcome(nil) = %q", got)
	}
	if got := Outcome(errors.New("x")); got != "error" {
		t.Errorf("Outcome(err) = %q", got)
	}
}

func TestRegisterToolMetrics_Idempotent(t *testing.T) {
	RegisterToolMetrics()
	RegisterToolMetrics()

	ToolCallsTotal.WithLabelValues("search", "ok").Inc()
	if got := testutil.ToFloat64(ToolCallsTotal.WithLabelValues("search", "ok")); got < 1 {
		t.Errorf("tool_calls_total = %f, want >= 1", got)
	}

	// Registering again on the default registry must report a duplicate.
	err := prometheus.Register(ToolCallsTotal)
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		t.Errorf("expected AlreadyRegisteredError, got %v", err)
	}
}
