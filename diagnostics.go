package txreplay

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/finvolt/txreplay/types"
)

// DiagnosticCounts is a concurrency-safe DiagnosticHandler that tallies
// diagnostics per code.
//
// Workers emit diagnostics concurrently, so the tallies use striped counters
// behind a concurrent map rather than a single mutex. Useful for audit
// summaries after a run and for asserting rejection counts in tests.
//
// Example:
//
//	counts := txreplay.NewDiagnosticCounts()
//	eng, _ := txreplay.New(&cfg, txreplay.WithDiagnosticHandler(counts))
//	_, _ = eng.Run(ctx, src)
//	rejected := counts.Count(txreplay.DiagInsufficientFunds)
type DiagnosticCounts struct {
	counts *xsync.Map[types.DiagnosticCode, *xsync.Counter]
}

// Compile-time assertion that DiagnosticCounts implements DiagnosticHandler.
var _ DiagnosticHandler = (*DiagnosticCounts)(nil)

// NewDiagnosticCounts creates an empty diagnostic tally.
//
// Returns:
//   - *DiagnosticCounts: Handler ready to be passed to WithDiagnosticHandler
func NewDiagnosticCounts() *DiagnosticCounts {
	return &DiagnosticCounts{counts: xsync.NewMap[types.DiagnosticCode, *xsync.Counter]()}
}

// HandleDiagnostic increments the tally for the diagnostic's code.
//
// Safe for concurrent use from any number of workers.
func (c *DiagnosticCounts) HandleDiagnostic(d types.Diagnostic) {
	counter, _ := c.counts.LoadOrCompute(d.Code, func() (*xsync.Counter, bool) {
		return xsync.NewCounter(), false
	})
	counter.Inc()
}

// Count returns the number of diagnostics observed for a code.
//
// Parameters:
//   - code: Diagnostic code to query
//
// Returns:
//   - int64: Observed count (0 for codes never seen)
func (c *DiagnosticCounts) Count(code types.DiagnosticCode) int64 {
	counter, ok := c.counts.Load(code)
	if !ok {
		return 0
	}

	return counter.Value()
}

// Total returns the number of diagnostics observed across all codes.
func (c *DiagnosticCounts) Total() int64 {
	var total int64
	c.counts.Range(func(_ types.DiagnosticCode, counter *xsync.Counter) bool {
		total += counter.Value()

		return true
	})

	return total
}
