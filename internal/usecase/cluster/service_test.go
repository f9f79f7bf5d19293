package cluster

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// --- Mocks ---

type mockReader struct {
	health         *engine.ClusterHealth
	stats          *engine.ClusterStats
	nodes          *engine.NodesInfo
	err            error
	includeIndices bool
}

func (m *mockReader) ClusterHealth(_ context.Context, includeIndices bool) (*engine.ClusterHealth, error) {
	m.includeIndices = includeIndices
	return m.health, m.err
}

func (m *mockReader) ClusterStats(_ context.Context) (*engine.ClusterStats, error) {
	return m.stats, m.err
}

func (m *mockReader) NodesInfo(_ context.Context) (*engine.NodesInfo, error) {
	return m.nodes, m.err
}

func decode[T any](t *testing.T, s string) *T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &v
}

// --- Tests ---

func TestHealth(t *testing.T) {
	r := &mockReader{health: decode[engine.ClusterHealth](t, `{
		"cluster_name":"prod","status":"yellow","number_of_nodes":3,"number_of_data_nodes":2,
		"active_shards":10,"active_primary_shards":5,"unassigned_shards":1,"number_of_pending_tasks":4}`)}
	env, err := New(r).Health(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	texts := env.Texts()
	if len(texts) != 1 {
		t.Fatalf("fragments = %d, want 1", len(texts))
	}
	for _, want := range []string{"Cluster Name: prod", "Status: yellow", "Data Nodes: 2", "Unassigned Shards: 1", "Pending Tasks: 4"} {
		if !strings.Contains(texts[0], want) {
			t.Errorf("missing %q in %q", want, texts[0])
		}
	}
	if r.includeIndices {
		t.Error("expected cluster-level request")
	}
}

func TestHealth_WithIndices(t *testing.T) {
	r := &mockReader{health: decode[engine.ClusterHealth](t, `{"cluster_name":"c","status":"green",
		"indices":{
			"zeta":{"status":"green","number_of_shards":1,"number_of_replicas":0},
			"alpha":{"status":"yellow","number_of_shards":2,"number_of_replicas":1,"unassigned_shards":2}}}`)}
	env, err := New(r).Health(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	texts := env.Texts()
	if len(texts) != 2 {
		t.Fatalf("fragments = %d, want 2", len(texts))
	}
	got := texts[1]
	if !strings.HasPrefix(got, "Indices Health Status:\nIndex: alpha\n  Status: yellow") {
		t.Errorf("indices fragment = %q", got)
	}
	if strings.Index(got, "Index: alpha") > strings.Index(got, "Index: zeta") {
		t.Error("indices must be sorted")
	}
	if !strings.Contains(got, "\n\nIndex: zeta") {
		t.Error("index blocks must be separated by a blank line")
	}
}

func TestHealth_Error(t *testing.T) {
	r := &mockReader{err: &engine.Error{Op: engine.OpClusterHealth, Status: 401}}
	_, err := New(r).Health(context.Background(), false)
	if !errors.Is(err, domain.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestStats(t *testing.T) {
	r := &mockReader{stats: decode[engine.ClusterStats](t, `{
		"cluster_name":"prod","cluster_uuid":"u1","status":"green","timestamp":0,
		"nodes":{"count":{"total":3}},
		"indices":{"count":7,"shards":{"total":14},"docs":{"count":1200},"store":{"size_in_bytes":1500000}}}`)}
	env, err := New(r).Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	texts := env.Texts()
	if len(texts) != 3 {
		t.Fatalf("fragments = %d, want 3", len(texts))
	}
	if texts[0] != "Cluster: prod\nStatus: green\nTimestamp: unknown\nUUID: u1" {
		t.Errorf("header = %q", texts[0])
	}
	if texts[1] != "Nodes:\nTotal: 3" {
		t.Errorf("nodes = %q", texts[1])
	}
	if texts[2] != "Indices:\nCount: 7\nShards: 14\nDocuments: 1200\nSize: 1.5 MB" {
		t.Errorf("indices = %q", texts[2])
	}
}

func TestStats_Timestamp(t *testing.T) {
	r := &mockReader{stats: decode[engine.ClusterStats](t, `{"timestamp":1700000000000}`)}
	env, err := New(r).Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(env.Texts()[0], "Timestamp: 2023-11-14T22:13:20Z") {
		t.Errorf("header = %q", env.Texts()[0])
	}
}

func TestNodes(t *testing.T) {
	r := &mockReader{nodes: decode[engine.NodesInfo](t, `{"cluster_name":"prod","nodes":{
		"n2":{"name":"node-b","transport_address":"10.0.0.2:9300","version":"8.13.4"},
		"n1":{"name":"node-a","transport_address":"10.0.0.1:9300","version":"8.13.4",
			"roles":["master","data"],
			"os":{"name":"Linux","version":"6.1"},
			"jvm":{"vm_name":"OpenJDK 64-Bit Server VM","version":"21.0.2"}}}}`)}
	env, err := New(r).Nodes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	texts := env.Texts()
	if texts[0] != "Cluster Name: prod\nTotal Nodes: 2" {
		t.Errorf("header = %q", texts[0])
	}
	want := "Nodes Information:\n" +
		"Node ID: n1\n  Name: node-a\n  Transport Address: 10.0.0.1:9300\n  Version: 8.13.4\n" +
		"  Roles: master, data\n  OS: Linux 6.1\n  JVM: OpenJDK 64-Bit Server VM 21.0.2\n\n" +
		"Node ID: n2\n  Name: node-b\n  Transport Address: 10.0.0.2:9300\n  Version: 8.13.4"
	if texts[1] != want {
		t.Errorf("nodes =\n%s\nwant\n%s", texts[1], want)
	}
}

func TestNodes_Empty(t *testing.T) {
	r := &mockReader{nodes: &engine.NodesInfo{ClusterName: "c"}}
	env, err := New(r).Nodes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.Texts()) != 1 {
		t.Errorf("fragments = %q", env.Texts())
	}
}
