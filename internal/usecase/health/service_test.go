package health

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// --- Mocks ---

type mockInfo struct {
	info *engine.Info
	err  error
}

func (m *mockInfo) Info(_ context.Context) (*engine.Info, error) { return m.info, m.err }

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockInfo{info: &engine.Info{ClusterName: "prod", Version: engine.VersionInfo{Number: "8.13.4"}}})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["engine"] != CheckOK {
		t.Errorf("expected engine %q, got %q", CheckOK, r.Checks["engine"])
	}
	if r.EngineVersion != "8.13.4" || r.Cluster != "prod" {
		t.Errorf("unexpected identity: %+v", r)
	}
}

func TestCheck_EngineError(t *testing.T) {
	svc := New(&mockInfo{err: errors.New("conn refused")})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["engine"] != CheckError {
		t.Errorf("expected engine %q, got %q", CheckError, r.Checks["engine"])
	}
	if r.EngineVersion != "" {
		t.Errorf("expected empty version, got %q", r.EngineVersion)
	}
}
