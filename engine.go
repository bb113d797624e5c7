package txreplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/finvolt/txreplay/account"
	"github.com/finvolt/txreplay/internal/logging"
	"github.com/finvolt/txreplay/internal/metrics"
	"github.com/finvolt/txreplay/partition"
	"github.com/finvolt/txreplay/types"
)

// Engine replays a transaction stream against partitioned account state.
//
// Engine is the main entry point of the txreplay library. It handles:
//   - Routing transactions to a fixed set of partition workers by client id
//   - Preserving per-client transaction order end-to-end
//   - Backpressure through bounded per-worker channels
//   - Merging per-worker account tables into one output sequence
//   - Surfacing business-rule diagnostics to a side channel
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Only one run may be active at a time; concurrent Run calls beyond the
//     first return ErrRunInProgress
//
// Lifecycle:
//   - Create with New()
//   - Call Run() once per input stream; the engine holds no state between runs
type Engine struct {
	cfg         Config
	partitioner partition.Partitioner
	diagnostics DiagnosticHandler
	metrics     MetricsCollector
	logger      Logger

	running atomic.Bool
}

// New creates a new Engine instance with the provided configuration.
//
// Returns a concrete *Engine struct following the "accept interfaces, return
// structs" principle. Consumers can define their own interfaces for testing
// if needed.
//
// Parameters:
//   - cfg: Runtime configuration (defaults applied in place)
//   - opts: Optional configuration (partitioner, diagnostics, metrics, logger)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := txreplay.DefaultConfig()
//	eng, err := txreplay.New(&cfg, txreplay.WithDiagnosticHandler(counts))
func New(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	partitionerInstance := options.partitioner
	if partitionerInstance == nil {
		partitionerInstance = partition.NewXXH3()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	diagnosticsInstance := options.diagnostics
	if diagnosticsInstance == nil {
		diagnosticsInstance = nopDiagnostics{}
	}

	return &Engine{
		cfg:         *cfg,
		partitioner: partitionerInstance,
		diagnostics: diagnosticsInstance,
		metrics:     metricsCollector,
		logger:      loggerInstance,
	}, nil
}

// Run replays the source to exhaustion and returns the final balance summary
// of every referenced client.
//
// The producer (this goroutine) reads the source in input order and routes
// each transaction to the worker owning its client; per-client order is
// preserved because routing is stable and the channels are FIFO. Order of
// outputs across different clients is unspecified.
//
// A source read failure or context cancellation is fatal to the whole run:
// Run returns an error and no outputs. Business-rule rejections are not
// errors; they surface as diagnostics and processing continues.
//
// Parameters:
//   - ctx: Context for cancellation (no timeout is imposed by the engine)
//   - src: Finite, single-pass transaction sequence
//
// Returns:
//   - []types.Output: One balance summary per client, nil on error
//   - error: ErrSourceFailed, ErrRunAborted or ErrRunInProgress
func (e *Engine) Run(ctx context.Context, src TransactionSource) ([]types.Output, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}
	if !e.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer e.running.Store(false)

	runID := uuid.NewString()
	start := time.Now()
	e.logger.Debug("starting run",
		"runId", runID,
		"workers", e.cfg.Workers,
		"channelCapacity", e.cfg.ChannelCapacity,
	)

	workers := e.cfg.Workers
	chans := make([]chan types.Transaction, workers)
	shards := make([][]types.Output, workers)

	var wg sync.WaitGroup
	for i := range workers {
		chans[i] = make(chan types.Transaction, e.cfg.ChannelCapacity)

		wg.Add(1)
		go func(idx int, in <-chan types.Transaction) {
			defer wg.Done()
			shards[idx] = e.runWorker(idx, runID, in)
		}(i, chans[i])
	}

	// closeAll signals end-of-input; workers drain their buffers and emit
	// their shard's outputs.
	closeAll := func() {
		for _, ch := range chans {
			close(ch)
		}
	}

	count, err := e.produce(ctx, src, chans)
	closeAll()
	wg.Wait()

	if err != nil {
		e.metrics.RecordRunDuration(time.Since(start).Seconds(), false)
		e.logger.Error("run failed",
			"runId", runID,
			"transactions", count,
			"error", err,
		)

		return nil, err
	}

	outputs := make([]types.Output, 0)
	locked := 0
	for _, shard := range shards {
		for _, out := range shard {
			if out.Locked {
				locked++
			}
		}
		outputs = append(outputs, shard...)
	}

	e.metrics.RecordRunDuration(time.Since(start).Seconds(), true)
	e.metrics.RecordAccountCount(len(outputs))
	e.metrics.RecordLockedAccounts(locked)
	e.logger.Info("run complete",
		"runId", runID,
		"transactions", count,
		"accounts", len(outputs),
		"lockedAccounts", locked,
		"duration", time.Since(start),
	)

	return outputs, nil
}

// produce reads the source to exhaustion, routing every transaction to the
// channel of the worker that owns its client.
//
// Returns the number of routed transactions and the fatal error, if any.
func (e *Engine) produce(ctx context.Context, src TransactionSource, chans []chan types.Transaction) (int64, error) {
	var count int64

	for {
		tx, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			if ctx.Err() != nil {
				return count, fmt.Errorf("%w: %w", ErrRunAborted, ctx.Err())
			}

			return count, fmt.Errorf("%w: %w", ErrSourceFailed, err)
		}

		idx := e.partitioner.Partition(tx.Client, len(chans))

		// Bounded send: suspends when the worker's channel is full, which is
		// the producer-side backpressure point.
		select {
		case chans[idx] <- tx:
		case <-ctx.Done():
			return count, fmt.Errorf("%w: %w", ErrRunAborted, ctx.Err())
		}

		count++
		e.metrics.RecordWorkerBacklog(idx, len(chans[idx]))
	}
}

// runWorker applies the worker's sub-stream to its private account table and
// returns the shard's outputs after the channel closes.
//
// The table is exclusively owned by this goroutine; no synchronization is
// needed because partitions are disjoint in client-id space.
func (e *Engine) runWorker(idx int, runID string, in <-chan types.Transaction) []types.Output {
	table := account.NewTable()

	for tx := range in {
		d := table.Apply(tx)
		e.metrics.RecordTransaction(idx, tx.Kind)
		if d != nil {
			e.emitDiagnostic(runID, idx, *d)
		}
	}

	return table.Outputs()
}

// emitDiagnostic performs the side effects of an account diagnostic: handler
// dispatch, metrics and logging. The account state machine itself stays pure.
func (e *Engine) emitDiagnostic(runID string, worker int, d types.Diagnostic) {
	e.diagnostics.HandleDiagnostic(d)
	e.metrics.RecordDiagnostic(d.Code)

	if d.Code == types.DiagAccountLocked {
		e.logger.Info("account locked by chargeback",
			"runId", runID,
			"worker", worker,
			"client", d.Client,
			"tx", d.Tx,
		)

		return
	}

	e.logger.Debug("transaction rejected",
		"runId", runID,
		"worker", worker,
		"code", d.Code.String(),
		"client", d.Client,
		"tx", d.Tx,
		"amount", d.Amount,
		"available", d.Available,
	)
}

// nopDiagnostics discards all diagnostics.
type nopDiagnostics struct{}

func (nopDiagnostics) HandleDiagnostic(types.Diagnostic) {}
