// ABOUTME: Metrics collector interface shared by the Prometheus and no-op impls
// ABOUTME: Handlers record against this so metrics stay optional
package metrics

// Collector is the interface for metrics collection. Implementations are the
// Prometheus-backed collector (when a metrics address is configured) and the
// no-op collector (default).
type Collector interface {
	RecordToolCall(tool string, status string, durationMs int64)
	RecordError(tool string, errorType string)
	SetMemoryCount(count int64)
}
