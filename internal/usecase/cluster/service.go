// Package cluster reports cluster health, statistics and node details.
package cluster

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// Service renders cluster reports.
type Service struct {
	reader Reader
}

// New creates a cluster service.
func New(reader Reader) *Service {
	return &Service{reader: reader}
}

// Health reports cluster health, optionally with per-index detail.
func (s *Service) Health(ctx context.Context, includeIndices bool) (envelope.Envelope, error) {
	h, err := s.reader.ClusterHealth(ctx, includeIndices)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("cluster health: %w", err)
	}

	fragments := []envelope.Fragment{envelope.Text(fmt.Sprintf(
		"Cluster Name: %s\nStatus: %s\nNodes: %d\nData Nodes: %d\n"+
			"Active Shards: %d\nActive Primary Shards: %d\nRelocating Shards: %d\n"+
			"Initializing Shards: %d\nUnassigned Shards: %d\nPending Tasks: %d",
		h.ClusterName, h.Status, h.NumberOfNodes, h.NumberOfDataNodes,
		h.ActiveShards, h.ActivePrimaryShards, h.RelocatingShards,
		h.InitializingShards, h.UnassignedShards, h.PendingTasks,
	))}

	if includeIndices && len(h.Indices) > 0 {
		names := make([]string, 0, len(h.Indices))
		for name := range h.Indices {
			names = append(names, name)
		}
		sort.Strings(names)

		blocks := make([]string, len(names))
		for i, name := range names {
			ih := h.Indices[name]
			blocks[i] = fmt.Sprintf(
				"Index: %s\n  Status: %s\n  Primary Shards: %d\n  Replicas: %d\n"+
					"  Active Shards: %d\n  Active Primary Shards: %d\n  Unassigned Shards: %d",
				name, ih.Status, ih.NumberOfShards, ih.NumberOfReplicas,
				ih.ActiveShards, ih.ActivePrimaryShards, ih.UnassignedShards,
			)
		}
		fragments = append(fragments, envelope.Labeled("Indices Health Status:", strings.Join(blocks, "\n\n")))
	}
	return envelope.Build(fragments...), nil
}

// Stats reports node, index, shard, document and storage totals.
func (s *Service) Stats(ctx context.Context) (envelope.Envelope, error) {
	st, err := s.reader.ClusterStats(ctx)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("cluster stats: %w", err)
	}

	ts := "unknown"
	if st.Timestamp > 0 {
		ts = time.UnixMilli(st.Timestamp).UTC().Format(time.RFC3339)
	}
	return envelope.Build(
		envelope.Text(fmt.Sprintf("Cluster: %s\nStatus: %s\nTimestamp: %s\nUUID: %s",
			st.ClusterName, st.Status, ts, st.ClusterUUID)),
		envelope.Labeled("Nodes:", fmt.Sprintf("Total: %d", st.Nodes.Count.Total)),
		envelope.Labeled("Indices:", fmt.Sprintf("Count: %d\nShards: %d\nDocuments: %d\nSize: %s",
			st.Indices.Count, st.Indices.Shards.Total, st.Indices.Docs.Count,
			humanize.Bytes(st.Indices.Store.SizeInBytes))),
	), nil
}

// Nodes reports per-node identity, roles and runtime.
func (s *Service) Nodes(ctx context.Context) (envelope.Envelope, error) {
	info, err := s.reader.NodesInfo(ctx)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("nodes info: %w", err)
	}

	fragments := []envelope.Fragment{envelope.Text(fmt.Sprintf("Cluster Name: %s\nTotal Nodes: %d",
		info.ClusterName, len(info.Nodes)))}
	if len(info.Nodes) == 0 {
		return envelope.Build(fragments...), nil
	}

	ids := make([]string, 0, len(info.Nodes))
	for id := range info.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := info.Nodes[ids[i]], info.Nodes[ids[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return ids[i] < ids[j]
	})

	blocks := make([]string, len(ids))
	for i, id := range ids {
		blocks[i] = renderNode(id, info.Nodes[id])
	}
	fragments = append(fragments, envelope.Labeled("Nodes Information:", strings.Join(blocks, "\n\n")))
	return envelope.Build(fragments...), nil
}

func renderNode(id string, n engine.NodeInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Node ID: %s\n  Name: %s\n  Transport Address: %s\n  Version: %s",
		id, n.Name, n.TransportAddress, n.Version)
	if len(n.Roles) > 0 {
		fmt.Fprintf(&b, "\n  Roles: %s", strings.Join(n.Roles, ", "))
	}
	if n.OS != nil {
		fmt.Fprintf(&b, "\n  OS: %s %s", n.OS.Name, n.OS.Version)
	}
	if n.JVM != nil {
		fmt.Fprintf(&b, "\n  JVM: %s %s", n.JVM.VMName, n.JVM.Version)
	}
	return b.String()
}
