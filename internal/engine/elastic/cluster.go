package elastic

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

// ClusterHealth reads cluster health, with per-index detail when includeIndices is set.
func (s *Store) ClusterHealth(ctx context.Context, includeIndices bool) (*engine.ClusterHealth, error) {
	health := s.client.Cluster.Health
	level := "cluster"
	if includeIndices {
		level = "indices"
	}
	opts := []func(*esapi.ClusterHealthRequest){health.WithContext(ctx), health.WithLevel(level)}
	res, err := health(opts...)

	var out engine.ClusterHealth
	if err = decode(engine.OpClusterHealth, res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClusterStats reads cluster-wide statistics.
func (s *Store) ClusterStats(ctx context.Context) (*engine.ClusterStats, error) {
	stats := s.client.Cluster.Stats
	res, err := stats(stats.WithContext(ctx))
	var out engine.ClusterStats
	if err = decode(engine.OpClusterStats, res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NodesInfo reads per-node information.
func (s *Store) NodesInfo(ctx context.Context) (*engine.NodesInfo, error) {
	info := s.client.Nodes.Info
	res, err := info(info.WithContext(ctx))
	var out engine.NodesInfo
	if err = decode(engine.OpNodesInfo, res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
