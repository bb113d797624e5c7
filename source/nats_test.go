package source_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finvolt/txreplay/source"
	replaytest "github.com/finvolt/txreplay/testing"
	"github.com/finvolt/txreplay/types"
)

func TestJetStream_DrainsBacklog(t *testing.T) {
	_, nc := replaytest.StartEmbeddedNATS(t)
	js, cons := replaytest.CreateTransactionStream(t, nc, "TX-DRAIN", "tx.drain")

	published := []types.Transaction{
		types.Deposit(1, 1, 10),
		types.Withdrawal(1, 2, 4),
		types.Dispute(1, 1),
		types.Resolve(1, 1),
		types.Chargeback(1, 1),
	}
	ctx := t.Context()
	require.NoError(t, source.PublishTransactions(ctx, js, "tx.drain", published))

	src := source.NewJetStream(cons, 2)
	var got []types.Transaction
	for {
		tx, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tx)
	}

	require.Equal(t, published, got, "backlog should replay in publish order")
}

func TestJetStream_EmptyStreamEndsImmediately(t *testing.T) {
	_, nc := replaytest.StartEmbeddedNATS(t)
	_, cons := replaytest.CreateTransactionStream(t, nc, "TX-EMPTY", "tx.empty")

	src := source.NewJetStream(cons, 0)
	_, err := src.Next(t.Context())
	require.ErrorIs(t, err, io.EOF, "empty backlog should end the run")
}

func TestJetStream_MalformedPayload(t *testing.T) {
	_, nc := replaytest.StartEmbeddedNATS(t)
	js, cons := replaytest.CreateTransactionStream(t, nc, "TX-BAD", "tx.bad")

	ctx := t.Context()
	_, err := js.Publish(ctx, "tx.bad", []byte("not json"))
	require.NoError(t, err)

	src := source.NewJetStream(cons, 0)
	_, err = src.Next(ctx)
	require.ErrorIs(t, err, types.ErrMalformedRecord)
}

func TestJetStream_ContextCancellation(t *testing.T) {
	_, nc := replaytest.StartEmbeddedNATS(t)
	_, cons := replaytest.CreateTransactionStream(t, nc, "TX-CANCEL", "tx.cancel")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := source.NewJetStream(cons, 0)
	_, err := src.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
