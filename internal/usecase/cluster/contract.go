package cluster

import (
	"context"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Reader reads cluster-level state.
type Reader interface {
	ClusterHealth(ctx context.Context, includeIndices bool) (*engine.ClusterHealth, error)
	ClusterStats(ctx context.Context) (*engine.ClusterStats, error)
	NodesInfo(ctx context.Context) (*engine.NodesInfo, error)
}
