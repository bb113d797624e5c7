package source

import (
	"context"
	"io"

	"github.com/finvolt/txreplay/types"
)

// Slice implements a transaction source over a fixed in-memory sequence.
type Slice struct {
	transactions []types.Transaction
	next         int
}

var _ types.TransactionSource = (*Slice)(nil)

// NewSlice creates a new slice-backed transaction source.
//
// The source yields the transactions in order and then reports end-of-input.
// Useful for testing and for replaying sequences that are already in memory.
//
// Parameters:
//   - transactions: Sequence to replay (not copied; do not mutate during a run)
//
// Returns:
//   - *Slice: Initialized slice source
//
// Example:
//
//	src := source.NewSlice([]types.Transaction{
//	    types.Deposit(1, 1, 3),
//	    types.Withdrawal(1, 2, 2),
//	})
//	outputs, err := eng.Run(ctx, src)
func NewSlice(transactions []types.Transaction) *Slice {
	return &Slice{transactions: transactions}
}

// Next returns the next transaction in the sequence.
//
// Returns:
//   - types.Transaction: Next transaction (zero value at end of input)
//   - error: io.EOF once the sequence is exhausted, ctx.Err() on cancellation
func (s *Slice) Next(ctx context.Context) (types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return types.Transaction{}, err
	}
	if s.next >= len(s.transactions) {
		return types.Transaction{}, io.EOF
	}

	tx := s.transactions[s.next]
	s.next++

	return tx, nil
}

// Reset rewinds the source to the beginning of the sequence, allowing the
// same fixture to be replayed under different engine configurations.
func (s *Slice) Reset() {
	s.next = 0
}
