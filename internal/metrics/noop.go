// ABOUTME: No-op metrics collector used when no metrics address is configured
// ABOUTME: Keeps handler code unconditional about recording
package metrics

// NoopCollector discards all recordings
type NoopCollector struct{}

// NewNoopCollector creates a no-op collector
func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

// RecordToolCall does nothing
func (n *NoopCollector) RecordToolCall(tool string, status string, durationMs int64) {}

// RecordError does nothing
func (n *NoopCollector) RecordError(tool string, errorType string) {}

// SetMemoryCount does nothing
func (n *NoopCollector) SetMemoryCount(count int64) {}
