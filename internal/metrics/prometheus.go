package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/finvolt/txreplay/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric registration is deferred until first use so that constructing a
// collector never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runDuration   *prometheus.HistogramVec
	accountsGauge prometheus.Gauge
	lockedGauge   prometheus.Gauge
	transactions  *prometheus.CounterVec
	workerBacklog *prometheus.GaugeVec
	diagnostics   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "txreplay" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "txreplay"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of replay runs in seconds by result.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms .. ~20s
		}, []string{"result"})

		p.accountsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "accounts_current",
			Help:      "Number of client accounts produced by the last completed run.",
		})

		p.lockedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "locked_accounts_current",
			Help:      "Number of locked accounts produced by the last completed run.",
		})

		p.transactions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "transactions_total",
			Help:      "Total transactions applied by worker and kind.",
		}, []string{"worker", "kind"})

		p.workerBacklog = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "backlog_current",
			Help:      "Transactions currently buffered in each worker's channel.",
		}, []string{"worker"})

		p.diagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "account",
			Name:      "diagnostics_total",
			Help:      "Total business-rule diagnostics emitted by code.",
		}, []string{"code"})

		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.accountsGauge)
		p.reg.MustRegister(p.lockedGauge)
		p.reg.MustRegister(p.transactions)
		p.reg.MustRegister(p.workerBacklog)
		p.reg.MustRegister(p.diagnostics)
	})
}

// EngineMetrics implementation

// RecordRunDuration observes a run's duration labeled with its result.
func (p *PrometheusCollector) RecordRunDuration(duration float64, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.runDuration.WithLabelValues(result).Observe(duration)
}

// RecordAccountCount sets the account count gauge.
func (p *PrometheusCollector) RecordAccountCount(count int) {
	p.ensureRegistered()
	p.accountsGauge.Set(float64(count))
}

// RecordLockedAccounts sets the locked account count gauge.
func (p *PrometheusCollector) RecordLockedAccounts(count int) {
	p.ensureRegistered()
	p.lockedGauge.Set(float64(count))
}

// WorkerMetrics implementation

// RecordTransaction increments the per-worker transaction counter for the kind.
func (p *PrometheusCollector) RecordTransaction(worker int, kind types.Kind) {
	p.ensureRegistered()
	p.transactions.WithLabelValues(strconv.Itoa(worker), kind.String()).Inc()
}

// RecordWorkerBacklog sets the backlog gauge for a worker.
func (p *PrometheusCollector) RecordWorkerBacklog(worker int, depth int) {
	p.ensureRegistered()
	p.workerBacklog.WithLabelValues(strconv.Itoa(worker)).Set(float64(depth))
}

// DiagnosticMetrics implementation

// RecordDiagnostic increments the diagnostic counter for the code.
func (p *PrometheusCollector) RecordDiagnostic(code types.DiagnosticCode) {
	p.ensureRegistered()
	p.diagnostics.WithLabelValues(code.String()).Inc()
}
