package metrics

import "github.com/prometheus/client_golang/prometheus"

// Tool and engine Prometheus metrics.
var (
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esmcp",
			Name:      "tool_calls_total",
			Help:      "Total number of tool calls",
		},
		[]string{"tool", "outcome"}, // "ok" / "error"
	)

	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "esmcp",
			Name:      "tool_call_duration_seconds",
			Help:      "Tool call duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"tool"},
	)

	EngineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esmcp",
			Name:      "engine_requests_total",
			Help:      "Total number of search engine requests",
		},
		[]string{"op", "status"}, // "ok" / "error"
	)

	VersionDetectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esmcp",
			Name:      "version_detections_total",
			Help:      "Engine version detections by source",
		},
		[]string{"source"}, // "detected" / "assumed_default"
	)

	BulkItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esmcp",
			Name:      "bulk_items_total",
			Help:      "Bulk write items by outcome",
		},
		[]string{"outcome"}, // "ok" / "error"
	)
)

var toolMetricsRegistered bool

// RegisterToolMetrics registers tool and engine metrics. Must be called once from main.
func RegisterToolMetrics() {
	if toolMetricsRegistered {
		return
	}
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolCallDuration)
	prometheus.MustRegister(EngineRequestsTotal)
	prometheus.MustRegister(VersionDetectionsTotal)
	prometheus.MustRegister(BulkItemsTotal)
	toolMetricsRegistered = true
}

// Outcome maps an error to the outcome label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
