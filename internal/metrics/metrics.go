// ABOUTME: Prometheus metrics collection for memkeeper tool calls
// ABOUTME: Owns a private registry and an optional /metrics HTTP listener
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollector records tool-call counters, durations, and errors
type PrometheusCollector struct {
	toolCallsTotal   *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec
	errorsTotal      *prometheus.CounterVec
	memoryCount      prometheus.Gauge
	registry         *prometheus.Registry
}

// NewPrometheusCollector creates a collector with its own registry
func NewPrometheusCollector() *PrometheusCollector {
	registry := prometheus.NewRegistry()

	toolCallsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memkeeper_tool_calls_total",
			Help: "Total number of tool calls by tool and status",
		},
		[]string{"tool", "status"},
	)

	toolCallDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memkeeper_tool_call_duration_seconds",
			Help:    "Duration of tool calls by tool",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"tool"},
	)

	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memkeeper_errors_total",
			Help: "Total number of tool errors by tool and error type",
		},
		[]string{"tool", "error_type"},
	)

	memoryCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "memkeeper_memories_stored",
			Help: "Current count of stored memory rows",
		},
	)

	registry.MustRegister(toolCallsTotal)
	registry.MustRegister(toolCallDuration)
	registry.MustRegister(errorsTotal)
	registry.MustRegister(memoryCount)

	return &PrometheusCollector{
		toolCallsTotal:   toolCallsTotal,
		toolCallDuration: toolCallDuration,
		errorsTotal:      errorsTotal,
		memoryCount:      memoryCount,
		registry:         registry,
	}
}

// RecordToolCall records the completion of a tool call
func (m *PrometheusCollector) RecordToolCall(tool string, status string, durationMs int64) {
	m.toolCallsTotal.WithLabelValues(tool, status).Inc()
	m.toolCallDuration.WithLabelValues(tool).Observe(float64(durationMs) / 1000.0)
}

// RecordError records an error occurrence
func (m *PrometheusCollector) RecordError(tool string, errorType string) {
	m.errorsTotal.WithLabelValues(tool, errorType).Inc()
}

// SetMemoryCount sets the stored-memory gauge
func (m *PrometheusCollector) SetMemoryCount(count int64) {
	m.memoryCount.Set(float64(count))
}

// Registry returns the Prometheus registry for HTTP exposure
func (m *PrometheusCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler serving the registry in the Prometheus
// text format
func (m *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
