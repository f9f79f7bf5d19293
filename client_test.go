package esmcp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func fakeEngine(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/":
			_, _ = w.Write([]byte(`{"cluster_name":"test","version":{"number":"8.13.4"}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/_cat/indices/*":
			_, _ = w.Write([]byte(`[{"health":"green","status":"open","index":"orders","docs.count":"2"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception","reason":"no such index"},"status":404}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_NoAddress(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestNew_InvalidCACert(t *testing.T) {
	_, err := New(WithAddresses("https://localhost:9200"), WithCACert([]byte("not a pem")))
	if err == nil {
		t.Fatal("expected error for unusable CA certificate")
	}
}

func TestPing(t *testing.T) {
	engine := fakeEngine(t)
	c, err := New(WithAddresses(engine.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestPing_Unreachable(t *testing.T) {
	c, err := New(WithAddresses("http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if err := c.Ping(context.Background()); !errors.Is(err, ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestServe_InMemory(t *testing.T) {
	engine := fakeEngine(t)
	c, err := New(WithAddresses(engine.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = c.Serve(ctx, serverT) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "embed-test", Version: "0.1.0"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "list_collections"})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	first := res.Content[0].(*mcp.TextContent).Text
	if first != "Found 1 indices" {
		t.Errorf("first fragment = %q", first)
	}
	if !strings.Contains(res.Content[1].(*mcp.TextContent).Text, `"name": "orders"`) {
		t.Errorf("listing = %q", res.Content[1].(*mcp.TextContent).Text)
	}
}
