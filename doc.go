// Package txreplay provides a Go library for replaying financial transaction
// streams against per-client account state with partitioned parallel workers.
//
// The engine consumes a finite, single-pass sequence of typed transactions,
// fans them out to a fixed set of workers keyed by client id, and collects a
// final balance summary per client once the source is exhausted. Transactions
// belonging to the same client are always applied by the same worker in their
// original relative order, so account state never needs locking.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import (
//	    "github.com/finvolt/txreplay"
//	    "github.com/finvolt/txreplay/source"
//	)
//
//	cfg := txreplay.DefaultConfig()
//	eng, err := txreplay.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := source.NewSlice(transactions)
//	outputs, err := eng.Run(ctx, src)
//
// # Key Guarantees
//
//   - Per-client ordering: same-client transactions are processed in arrival order
//   - Partition disjointness: each worker owns a private shard of the account table
//   - Backpressure: bounded per-worker channels suspend the producer when workers lag
//   - Partition-count invariance: one worker and many workers yield the same outputs
//
// # Architecture
//
// A single producer reads the source and routes each transaction:
//
//	source -> producer -> [bounded chan per worker] -> N workers -> merged outputs
//
// Workers treat channel closure as end-of-input: they drain their buffer and
// then emit their shard's balance summaries. A source read failure or context
// cancellation aborts the whole run; no partial output is produced.
//
// # Advanced Usage
//
// Custom partitioner and diagnostics with options:
//
//	import "github.com/finvolt/txreplay/partition"
//
//	counts := txreplay.NewDiagnosticCounts()
//	eng, err := txreplay.New(&cfg,
//	    txreplay.WithPartitioner(partition.NewModulo()),
//	    txreplay.WithDiagnosticHandler(counts),
//	)
//
// See the source, gen and cmd/txreplay packages for input decoding, synthetic
// dataset generation and the command-line front end.
package txreplay
