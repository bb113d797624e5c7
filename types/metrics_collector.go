package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called from engine goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	EngineMetrics
	WorkerMetrics
	DiagnosticMetrics
}

// EngineMetrics defines metrics for run-level operations.
type EngineMetrics interface {
	// RecordRunDuration records the wall-clock time of a completed run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - success: true if the run completed, false if it aborted
	RecordRunDuration(duration float64, success bool)

	// RecordAccountCount sets the number of accounts produced by a run (gauge metric).
	RecordAccountCount(count int)

	// RecordLockedAccounts sets the number of locked accounts produced by a run (gauge metric).
	RecordLockedAccounts(count int)
}

// WorkerMetrics defines metrics recorded by individual partition workers.
type WorkerMetrics interface {
	// RecordTransaction records one processed transaction.
	//
	// Parameters:
	//   - worker: Index of the worker that applied the transaction
	//   - kind: Transaction kind
	RecordTransaction(worker int, kind Kind)

	// RecordWorkerBacklog sets the number of transactions buffered for a worker (gauge metric).
	//
	// Sampled by the producer after each send; useful for spotting skewed
	// partitions and backpressure.
	RecordWorkerBacklog(worker int, depth int)
}

// DiagnosticMetrics defines metrics for business-rule rejections.
type DiagnosticMetrics interface {
	// RecordDiagnostic records one emitted diagnostic by code.
	RecordDiagnostic(code DiagnosticCode)
}
