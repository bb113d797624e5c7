package types

import "context"

// TransactionSource supplies the finite, single-pass sequence of transactions
// to replay.
//
// Implementations can decode various inputs:
//   - Slice: fixed in-memory sequence for tests
//   - CSV: streaming decoder over a file or reader
//   - JetStream: drain the backlog of a NATS stream
//
// The engine reads the source from a single producer goroutine, so
// implementations do not need to be safe for concurrent use.
type TransactionSource interface {
	// Next returns the next transaction in the sequence.
	//
	// Implementations should:
	//   - Return io.EOF once the sequence is exhausted
	//   - Return any other error for a failed read; the engine treats it as
	//     fatal to the whole run
	//   - Handle context cancellation gracefully
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Transaction: Next transaction (zero value when err != nil)
	//   - error: io.EOF at end of input, any other error on failure
	Next(ctx context.Context) (Transaction, error)
}
