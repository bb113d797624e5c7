package txreplay

import "github.com/finvolt/txreplay/partition"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	partitioner partition.Partitioner
	diagnostics DiagnosticHandler
	metrics     MetricsCollector
	logger      Logger
}

// WithPartitioner sets a custom client partitioner.
//
// The default is partition.NewXXH3(). Any stable routing function works; the
// choice affects shard layout only, never the outputs.
//
// Parameters:
//   - p: Partitioner implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	eng, err := txreplay.New(&cfg, txreplay.WithPartitioner(partition.NewModulo()))
func WithPartitioner(p partition.Partitioner) Option {
	return func(o *engineOptions) {
		o.partitioner = p
	}
}

// WithDiagnosticHandler sets a handler for business-rule diagnostics.
//
// The handler is called synchronously from worker goroutines and must be safe
// for concurrent use. Diagnostics are advisory: handlers cannot alter the
// outcome of a run.
//
// Parameters:
//   - h: DiagnosticHandler implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	counts := txreplay.NewDiagnosticCounts()
//	eng, err := txreplay.New(&cfg, txreplay.WithDiagnosticHandler(counts))
func WithDiagnosticHandler(h DiagnosticHandler) Option {
	return func(o *engineOptions) {
		o.diagnostics = h
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := txreplay.NewPrometheusMetrics(nil, "")
//	eng, err := txreplay.New(&cfg, txreplay.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := txreplay.NewZapLogger(zap.NewExample().Sugar())
//	eng, err := txreplay.New(&cfg, txreplay.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}
