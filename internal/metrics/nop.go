// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/finvolt/txreplay/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// EngineMetrics implementation

// RecordRunDuration discards the run duration metric.
func (n *NopMetrics) RecordRunDuration(_ /* duration */ float64, _ /* success */ bool) {
	// No-op
}

// RecordAccountCount discards the account count metric.
func (n *NopMetrics) RecordAccountCount(_ /* count */ int) {
	// No-op
}

// RecordLockedAccounts discards the locked account count metric.
func (n *NopMetrics) RecordLockedAccounts(_ /* count */ int) {
	// No-op
}

// WorkerMetrics implementation

// RecordTransaction discards the processed transaction metric.
func (n *NopMetrics) RecordTransaction(_ /* worker */ int, _ /* kind */ types.Kind) {
	// No-op
}

// RecordWorkerBacklog discards the worker backlog metric.
func (n *NopMetrics) RecordWorkerBacklog(_ /* worker */ int, _ /* depth */ int) {
	// No-op
}

// DiagnosticMetrics implementation

// RecordDiagnostic discards the diagnostic metric.
func (n *NopMetrics) RecordDiagnostic(_ /* code */ types.DiagnosticCode) {
	// No-op
}
