// Package chi hosts the streamable MCP endpoint with health and metrics routes.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/metrics"
	healthuc "github.com/kailas-cloud/esmcp/internal/usecase/health"
)

// Error codes returned by the HTTP layer itself. Tool failures travel inside MCP results.
const (
	CodeUnauthorized = "unauthorized"
	CodeInternal     = "internal_error"
)

// ErrorResponse is the JSON body of an HTTP-level error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MCPPath is the route of the streamable MCP endpoint.
const MCPPath = "/mcp"

// NewRouter mounts mcp on /mcp next to /health and /metrics.
func NewRouter(mcp http.Handler, health *healthuc.Service, apiKeys []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.Handle(MCPPath, mcp)
	r.Get("/health", healthHandler(health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// healthHandler handles GET /health.
func healthHandler(health *healthuc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := health.Check(r.Context())

		status := http.StatusOK
		if report.Status != healthuc.Healthy {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, report)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
