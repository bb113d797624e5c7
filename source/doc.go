// Package source provides built-in transaction source implementations.
//
// Transaction sources supply the finite, single-pass sequence the engine
// replays. The package includes:
//
//   - Slice: fixed in-memory sequence
//   - CSV: streaming decoder over an io.Reader
//   - JetStream: drain the backlog of a NATS JetStream stream
//
// plus CSV encoding helpers for transactions and balance summaries.
//
// Custom sources can be implemented by satisfying the types.TransactionSource
// interface.
package source
