// Package mcp exposes the use cases as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/domain"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	logpkg "github.com/kailas-cloud/esmcp/internal/logger"
	"github.com/kailas-cloud/esmcp/internal/metrics"
	"github.com/kailas-cloud/esmcp/internal/version"
	batchuc "github.com/kailas-cloud/esmcp/internal/usecase/batch"
	clusteruc "github.com/kailas-cloud/esmcp/internal/usecase/cluster"
	collectionuc "github.com/kailas-cloud/esmcp/internal/usecase/collection"
	documentuc "github.com/kailas-cloud/esmcp/internal/usecase/document"
	reindexuc "github.com/kailas-cloud/esmcp/internal/usecase/reindex"
	searchuc "github.com/kailas-cloud/esmcp/internal/usecase/search"
	templateuc "github.com/kailas-cloud/esmcp/internal/usecase/template"
)

// ServerName is the implementation name announced during initialization.
const ServerName = "esmcp"

// Services bundles the use cases backing the tools.
type Services struct {
	Collections *collectionuc.Service
	Search      *searchuc.Service
	Batch       *batchuc.Service
	Templates   *templateuc.Service
	Reindex     *reindexuc.Service
	Cluster     *clusteruc.Service
	Documents   *documentuc.Service
}

// Server owns the MCP server and its tool registrations.
type Server struct {
	server   *mcpsdk.Server
	services Services
	logger   *zap.Logger
}

// NewServer creates the MCP server and registers every tool.
func NewServer(services Services, logger *zap.Logger) *Server {
	s := &Server{
		server: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    ServerName,
			Version: version.Version,
		}, nil),
		services: services,
		logger:   logger,
	}
	s.registerTools()
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcpsdk.Server { return s.server }

// RunStdio serves a single session over stdin/stdout until ctx is done or the peer disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	if err := s.server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

// Handler returns the streamable HTTP handler. All sessions share one server.
func (s *Server) Handler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server { return s.server }, nil)
}

// handler is the typed body of a tool.
type handler[T any] func(ctx context.Context, args T) (envelope.Envelope, error)

// addTool registers a tool whose arguments decode into T.
func addTool[T any](s *Server, name, description string, schema map[string]any, h handler[T]) {
	s.server.AddTool(&mcpsdk.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var raw json.RawMessage
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}
		return invoke(ctx, s, name, raw, h), nil
	})
}

// invoke runs one tool call. Every error and panic becomes an error envelope.
func invoke[T any](
	ctx context.Context, s *Server, name string, raw json.RawMessage, h handler[T],
) (result *mcpsdk.CallToolResult) {
	start := time.Now()
	log := s.logger.With(zap.String("call_id", uuid.NewString()), zap.String("tool", name))
	ctx = logpkg.ContextWithLogger(ctx, log)

	var (
		env envelope.Envelope
		err error
	)
	defer func() {
		if rvr := recover(); rvr != nil {
			log.Error("panic recovered", zap.Any("panic", rvr), zap.Stack("stacktrace"))
			err = fmt.Errorf("internal error: %v", rvr)
		}
		if err != nil {
			env = envelope.Error(err)
		}

		outcome := metrics.Outcome(err)
		latency := time.Since(start)
		metrics.ToolCallsTotal.WithLabelValues(name, outcome).Inc()
		metrics.ToolCallDuration.WithLabelValues(name).Observe(latency.Seconds())

		fields := []zap.Field{zap.String("outcome", outcome), zap.Duration("latency", latency)}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		log.Info("tool_call", fields...)

		result = toResult(env)
	}()

	var args T
	if err = decodeArgs(raw, &args); err != nil {
		return nil
	}
	env, err = h(ctx, args)
	return nil
}

func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.Invalid("invalid arguments: %v", err)
	}
	return nil
}

func toResult(env envelope.Envelope) *mcpsdk.CallToolResult {
	texts := env.Texts()
	content := make([]mcpsdk.Content, len(texts))
	for i, t := range texts {
		content[i] = &mcpsdk.TextContent{Text: t}
	}
	return &mcpsdk.CallToolResult{Content: content, IsError: env.IsError()}
}
