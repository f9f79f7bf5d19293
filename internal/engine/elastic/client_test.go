package elastic

import (
	"context"
	"encoding/json"
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/engine"
)

// recorded is one request seen by the fake cluster.
type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// fakeCluster serves canned responses keyed by "METHOD /path".
type fakeCluster struct {
	mu        sync.Mutex
	requests  []recorded
	responses map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   string
}

func newFakeCluster(t *testing.T, responses map[string]cannedResponse) (*fakeCluster, *Store) {
	t.Helper()
	fc := &fakeCluster{responses: responses}
	srv := httptest.NewServer(fc)
	t.Cleanup(srv.Close)

	s, err := NewStore(Config{Addresses: []string{srv.URL}, APIKey: "secret-key"})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(s.Close)
	return fc, s
}

func (fc *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	fc.mu.Lock()
	fc.requests = append(fc.requests, recorded{
		Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body), Header: r.Header.Clone(),
	})
	fc.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	resp, ok := fc.responses[r.Method+" "+r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"type":"index_not_found_exception","reason":"no such index"},"status":404}`)
		return
	}
	if resp.status == 0 {
		resp.status = http.StatusOK
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (fc *fakeCluster) last(t *testing.T) recorded {
	t.Helper()
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if len(fc.requests) == 0 {
		t.Fatal("no requests recorded")
	}
	return fc.requests[len(fc.requests)-1]
}

// --- client.go tests ---

func TestNewStore_RequiresAddresses(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for empty addresses")
	}
}

func TestNewStore_InvalidCACert(t *testing.T) {
	_, err := NewStore(Config{Addresses: []string{"https://localhost:9200"}, CACert: []byte("not a pem")})
	if err == nil {
		t.Fatal("expected error for invalid CA cert")
	}
}

func TestNewTransport_CACertOnlyPool(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	bundle := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	tr, err := newTransport(bundle)
	if err != nil {
		t.Fatalf("newTransport: %v", err)
	}
	if tr.TLSClientConfig == nil || tr.TLSClientConfig.RootCAs == nil {
		t.Fatal("expected a custom root pool")
	}

	res, err := (&http.Client{Transport: tr}).Get(srv.URL)
	if err != nil {
		t.Fatalf("request with bundle: %v", err)
	}
	_ = res.Body.Close()

	plain, err := newTransport(nil)
	if err != nil {
		t.Fatalf("newTransport: %v", err)
	}
	if _, err := (&http.Client{Transport: plain}).Get(srv.URL); err == nil {
		t.Fatal("expected the self-signed server to be rejected without the bundle")
	}
}

func TestInfo(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /": {body: `{"name":"n1","cluster_name":"c1","version":{"number":"8.13.4"}}`},
	})

	info, err := s.Info(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version.Number != "8.13.4" || info.ClusterName != "c1" {
		t.Errorf("info = %+v", info)
	}
	if got := fc.last(t).Header.Get("Authorization"); got != "APIKey secret-key" {
		t.Errorf("Authorization = %q, want APIKey secret-key", got)
	}
}

func TestTransportError_IsConnection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	s, err := NewStore(Config{Addresses: []string{addr}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	_, err = s.Info(context.Background())
	if !errors.Is(err, domain.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestDo_PutWithBody(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"PUT /_index_template/logs": {body: `{"acknowledged":true}`},
	})

	raw, err := s.Do(context.Background(), engine.Request{
		Op:     engine.OpPutTemplate,
		Method: http.MethodPut,
		Path:   "/_index_template/logs",
		Body:   map[string]any{"index_patterns": []string{"logs-*"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), "acknowledged") {
		t.Errorf("raw = %s", raw)
	}

	req := fc.last(t)
	var body map[string]any
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if _, ok := body["index_patterns"]; !ok {
		t.Errorf("body = %s", req.Body)
	}
}

func TestDo_QueryString(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"PUT /logs": {body: `{"acknowledged":true,"index":"logs"}`},
	})

	_, err := s.Do(context.Background(), engine.Request{
		Op:     engine.OpCreateIndex,
		Method: http.MethodPut,
		Path:   "/logs",
		Query:  map[string][]string{"include_type_name": {"false"}},
		Body:   map[string]any{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q := fc.last(t).Query; q != "include_type_name=false" {
		t.Errorf("query = %q", q)
	}
}

func TestDo_ErrorResponse(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"PUT /logs": {status: 400, body: `{"error":{"type":"resource_already_exists_exception","reason":"index [logs] already exists"},"status":400}`},
	})

	_, err := s.Do(context.Background(), engine.Request{Op: engine.OpCreateIndex, Method: http.MethodPut, Path: "/logs"})
	var ee *engine.Error
	if !errors.As(err, &ee) {
		t.Fatalf("expected *engine.Error, got %v", err)
	}
	if ee.Status != 400 || ee.Type != "resource_already_exists_exception" {
		t.Errorf("error = %+v", ee)
	}
}

// --- index.go tests ---

func TestCatIndices(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /_cat/indices/logs-*": {body: `[{"health":"green","status":"open","index":"logs-1","docs.count":"12"}]`},
	})

	rows, err := s.CatIndices(context.Background(), "logs-*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Index != "logs-1" || rows[0].DocCount != "12" {
		t.Errorf("rows = %+v", rows)
	}
	if q := fc.last(t).Query; !strings.Contains(q, "format=json") {
		t.Errorf("query = %q, want format=json", q)
	}
}

func TestGetMapping_Exact(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /logs/_mapping": {body: `{"logs":{"mappings":{"properties":{"msg":{"type":"text"}}}}}`},
	})

	m, err := s.GetMapping(context.Background(), "logs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m["properties"]; !ok {
		t.Errorf("mapping = %v", m)
	}
}

func TestGetMapping_Alias(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /current/_mapping": {body: `{"logs-2024":{"mappings":{"properties":{"msg":{"type":"text"}}}}}`},
	})

	m, err := s.GetMapping(context.Background(), "current")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m["properties"]; !ok {
		t.Errorf("mapping = %v", m)
	}
}

func TestGetMapping_AmbiguousPattern(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /logs-*/_mapping": {body: `{"logs-1":{"mappings":{}},"logs-2":{"mappings":{}}}`},
	})

	_, err := s.GetMapping(context.Background(), "logs-*")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGetMapping_NotFound(t *testing.T) {
	_, s := newFakeCluster(t, nil)

	_, err := s.GetMapping(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIndexExists(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"HEAD /logs": {},
	})

	ok, err := s.IndexExists(context.Background(), "logs")
	if err != nil || !ok {
		t.Errorf("IndexExists(logs) = %v, %v", ok, err)
	}
	ok, err = s.IndexExists(context.Background(), "missing")
	if err != nil || ok {
		t.Errorf("IndexExists(missing) = %v, %v", ok, err)
	}
}

// --- search.go tests ---

const searchBody = `{"took":2,"hits":{"total":{"value":1,"relation":"eq"},
	"hits":[{"_index":"logs","_id":"1","_score":1.2,"_source":{"msg":"timeout"},
	"highlight":{"msg":["<em>timeout</em>"]}}]}}`

func TestSearch(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"POST /logs/_search": {body: searchBody},
		"GET /logs/_search":  {body: searchBody},
	})

	resp, err := s.Search(context.Background(), "logs", []byte(`{"query":{"match_all":{}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Hits.TotalValue() != 1 || len(resp.Hits.Hits) != 1 {
		t.Fatalf("hits = %+v", resp.Hits)
	}
	if !strings.Contains(string(resp.Hits.Hits[0].Highlight), "<em>timeout</em>") {
		t.Errorf("highlight = %s", resp.Hits.Hits[0].Highlight)
	}
	if body := fc.last(t).Body; body != `{"query":{"match_all":{}}}` {
		t.Errorf("body = %q", body)
	}
}

func TestCount(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"POST /orders/_count": {body: `{"count":2}`},
		"GET /orders/_count":  {body: `{"count":2}`},
	})

	n, err := s.Count(context.Background(), "orders", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestMultiSearch(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"POST /_msearch": {body: `{"responses":[
			{"hits":{"total":{"value":3},"hits":[]},"status":200},
			{"error":{"type":"index_not_found_exception","reason":"no such index [nope]"},"status":404}]}`},
	})

	body := "{\"index\":\"logs\"}\n{\"query\":{\"match_all\":{}}}\n{\"index\":\"nope\"}\n{}\n"
	resp, err := s.MultiSearch(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Responses) != 2 {
		t.Fatalf("responses = %d, want 2", len(resp.Responses))
	}
	if resp.Responses[1].Error == nil {
		t.Error("expected error on second response")
	}
	if got := fc.last(t).Body; got != body {
		t.Errorf("body = %q", got)
	}
}

// --- document.go tests ---

func TestBulk_Refresh(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"POST /_bulk": {body: `{"took":5,"errors":false,"items":[{"index":{"_index":"orders","_id":"a","status":201}}]}`},
	})

	resp, err := s.Bulk(context.Background(), []byte("{\"index\":{\"_index\":\"orders\",\"_id\":\"a\"}}\n{\"v\":1}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Took != 5 || len(resp.Items) != 1 {
		t.Errorf("resp = %+v", resp)
	}
	if q := fc.last(t).Query; !strings.Contains(q, "refresh=true") {
		t.Errorf("query = %q, want refresh=true", q)
	}
}

func TestIndexDocument_WithID(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"PUT /orders/_doc/a": {status: 201, body: `{"_index":"orders","_id":"a","_version":1,"result":"created"}`},
	})

	res, err := s.IndexDocument(context.Background(), "orders", "a", []byte(`{"v":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result != "created" || res.Version != 1 {
		t.Errorf("res = %+v", res)
	}
	if q := fc.last(t).Query; !strings.Contains(q, "refresh=true") {
		t.Errorf("query = %q, want refresh=true", q)
	}
}

func TestIndexDocument_EngineID(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"POST /orders/_doc": {status: 201, body: `{"_index":"orders","_id":"generated","_version":1,"result":"created"}`},
	})

	res, err := s.IndexDocument(context.Background(), "orders", "", []byte(`{"v":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "generated" {
		t.Errorf("ID = %q", res.ID)
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"DELETE /orders/_doc/x": {status: 404, body: `{"_index":"orders","_id":"x","result":"not_found"}`},
	})

	_, err := s.DeleteDocument(context.Background(), "orders", "x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --- cluster.go tests ---

func TestClusterHealth_Level(t *testing.T) {
	fc, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /_cluster/health": {body: `{"cluster_name":"c1","status":"green","number_of_nodes":3,
			"indices":{"logs":{"status":"yellow","number_of_shards":1,"number_of_replicas":1}}}`},
	})

	h, err := s.ClusterHealth(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.NumberOfNodes != 3 || h.Indices["logs"].Status != "yellow" {
		t.Errorf("health = %+v", h)
	}
	if q := fc.last(t).Query; !strings.Contains(q, "level=indices") {
		t.Errorf("query = %q, want level=indices", q)
	}
}

func TestClusterStats(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /_cluster/stats": {body: `{"cluster_name":"c1","status":"green",
			"nodes":{"count":{"total":2}},
			"indices":{"count":4,"shards":{"total":8},"docs":{"count":100},"store":{"size_in_bytes":2048}}}`},
	})

	st, err := s.ClusterStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Nodes.Count.Total != 2 || st.Indices.Store.SizeInBytes != 2048 {
		t.Errorf("stats = %+v", st)
	}
}

func TestNodesInfo(t *testing.T) {
	_, s := newFakeCluster(t, map[string]cannedResponse{
		"GET /_nodes": {body: `{"cluster_name":"c1","nodes":{"abc":{"name":"n1","version":"8.13.4","roles":["master","data"]}}}`},
	})

	info, err := s.NodesInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Nodes["abc"].Name != "n1" || len(info.Nodes["abc"].Roles) != 2 {
		t.Errorf("nodes = %+v", info.Nodes)
	}
}
