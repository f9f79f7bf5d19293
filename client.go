// Package esmcp embeds the Elasticsearch MCP tool set in another program.
//
//	c, err := esmcp.New(esmcp.WithAddresses("https://localhost:9200"), esmcp.WithAPIKey(key))
//	if err != nil { ... }
//	defer c.Close()
//	err = c.Serve(ctx, &mcp.StdioTransport{})
package esmcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/engine"
	"github.com/kailas-cloud/esmcp/internal/engine/elastic"
	mcpTransport "github.com/kailas-cloud/esmcp/internal/transport/mcp"
	healthuc "github.com/kailas-cloud/esmcp/internal/usecase/health"
)

// Client owns one engine connection and the tool server built on it.
type Client struct {
	store  engine.Store
	server *mcpTransport.Server
	health *healthuc.Service
}

// New connects to Elasticsearch and registers every tool. It does not contact
// the engine; use Ping to check reachability.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o.apply(cfg)
	}
	if len(cfg.addresses) == 0 {
		return nil, errors.New("esmcp: at least one address is required (use WithAddresses)")
	}

	store, err := elastic.NewStore(elastic.Config{
		Addresses: cfg.addresses,
		APIKey:    cfg.apiKey,
		Username:  cfg.username,
		Password:  cfg.password,
		CACert:    cfg.caCert,
	})
	if err != nil {
		return nil, fmt.Errorf("esmcp: %w", err)
	}
	return wireClient(store, cfg.logger), nil
}

func wireClient(store engine.Store, logger *zap.Logger) *Client {
	return &Client{
		store:  store,
		server: mcpTransport.NewServer(mcpTransport.NewServices(store, logger), logger),
		health: healthuc.New(store),
	}
}

// Close releases the engine connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks engine connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.store.Info(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Server returns the MCP server holding the tools.
func (c *Client) Server() *mcp.Server { return c.server.MCP() }

// Serve runs one session over t until the peer disconnects or ctx is done.
func (c *Client) Serve(ctx context.Context, t mcp.Transport) error {
	if err := c.server.MCP().Run(ctx, t); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Handler returns a streamable HTTP handler for the tools.
func (c *Client) Handler() http.Handler { return c.server.Handler() }
