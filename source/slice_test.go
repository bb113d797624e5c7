package source

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finvolt/txreplay/types"
)

func TestSlice_DrainsInOrder(t *testing.T) {
	transactions := []types.Transaction{
		types.Deposit(1, 1, 10),
		types.Withdrawal(1, 2, 4),
		types.Dispute(1, 1),
	}

	src := NewSlice(transactions)
	for i, want := range transactions {
		got, err := src.Next(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, got, "record %d should arrive in order", i)
	}

	_, err := src.Next(context.Background())
	require.ErrorIs(t, err, io.EOF)
	_, err = src.Next(context.Background())
	require.ErrorIs(t, err, io.EOF, "exhausted source should stay exhausted")
}

func TestSlice_Empty(t *testing.T) {
	src := NewSlice(nil)
	_, err := src.Next(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestSlice_ResetReplays(t *testing.T) {
	src := NewSlice([]types.Transaction{types.Deposit(1, 1, 10)})

	first, err := src.Next(context.Background())
	require.NoError(t, err)
	_, err = src.Next(context.Background())
	require.ErrorIs(t, err, io.EOF)

	src.Reset()
	again, err := src.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, again, "reset should replay the same sequence")
}

func TestSlice_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewSlice([]types.Transaction{types.Deposit(1, 1, 10)})
	_, err := src.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
