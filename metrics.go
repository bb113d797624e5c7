package txreplay

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/finvolt/txreplay/internal/metrics"
)

// NewPrometheusMetrics creates a Prometheus-backed metrics collector.
//
// Collectors are registered lazily on first use, so constructing one is
// cheap and never panics on duplicate registration at build time.
//
// Parameters:
//   - reg: Prometheus registerer (nil uses prometheus.DefaultRegisterer)
//   - namespace: Metric namespace prefix ("" uses "txreplay")
//
// Returns:
//   - MetricsCollector: Collector to pass to WithMetrics
//
// Example:
//
//	collector := txreplay.NewPrometheusMetrics(nil, "")
//	eng, err := txreplay.New(&cfg, txreplay.WithMetrics(collector))
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
