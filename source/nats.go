package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/finvolt/txreplay/types"
)

// defaultFetchBatch is how many messages a JetStream source requests per fetch.
const defaultFetchBatch = 256

// JetStream implements a transaction source over a JetStream consumer.
//
// Transactions are JSON-encoded messages, one transaction per message.
// The source drains the consumer's current backlog: it fetches batches
// without waiting, and the first empty fetch is treated as end of input.
// Use it to replay a captured stream, not to tail a live one.
//
// Messages are acknowledged after decoding, so a failed run can be retried
// from the first undecoded message with a durable consumer.
type JetStream struct {
	consumer jetstream.Consumer
	batch    int
	pending  []jetstream.Msg
}

var _ types.TransactionSource = (*JetStream)(nil)

// NewJetStream creates a transaction source draining a JetStream consumer.
//
// Parameters:
//   - consumer: Consumer positioned at the first transaction to replay
//   - batch: Messages requested per fetch; <= 0 uses a default of 256
//
// Returns:
//   - *JetStream: Initialized streaming source
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	cons, _ := js.CreateOrUpdateConsumer(ctx, "TRANSACTIONS", jetstream.ConsumerConfig{
//	    Durable:   "replayer",
//	    AckPolicy: jetstream.AckExplicitPolicy,
//	})
//	outputs, err := eng.Run(ctx, source.NewJetStream(cons, 0))
func NewJetStream(consumer jetstream.Consumer, batch int) *JetStream {
	if batch <= 0 {
		batch = defaultFetchBatch
	}

	return &JetStream{consumer: consumer, batch: batch}
}

// Next decodes the next transaction from the stream backlog.
//
// Returns:
//   - types.Transaction: Decoded transaction
//   - error: io.EOF once the backlog is drained, a types.ErrMalformedRecord
//     wrap for undecodable payloads, or the underlying fetch error
func (s *JetStream) Next(ctx context.Context) (types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return types.Transaction{}, err
	}

	if len(s.pending) == 0 {
		if err := s.fetch(); err != nil {
			return types.Transaction{}, err
		}
	}

	msg := s.pending[0]
	s.pending = s.pending[1:]

	var tx types.Transaction
	if err := json.Unmarshal(msg.Data(), &tx); err != nil {
		return types.Transaction{}, fmt.Errorf("%w: %w", types.ErrMalformedRecord, err)
	}
	if err := msg.Ack(); err != nil {
		return types.Transaction{}, fmt.Errorf("acking message: %w", err)
	}

	return tx, nil
}

// fetch pulls the next batch. An empty batch means the backlog is drained.
func (s *JetStream) fetch() error {
	batch, err := s.consumer.FetchNoWait(s.batch)
	if err != nil {
		return fmt.Errorf("fetching batch: %w", err)
	}

	for msg := range batch.Messages() {
		s.pending = append(s.pending, msg)
	}
	if err := batch.Error(); err != nil {
		return fmt.Errorf("fetching batch: %w", err)
	}

	if len(s.pending) == 0 {
		return io.EOF
	}

	return nil
}

// PublishTransactions JSON-encodes transactions onto a JetStream subject.
//
// Each transaction becomes one message, published synchronously in order.
//
// Parameters:
//   - ctx: Context for cancellation
//   - js: JetStream context
//   - subject: Destination subject (must match a stream's subject filter)
//   - transactions: Transactions to publish
//
// Returns:
//   - error: First publish or marshal failure, nil on success
func PublishTransactions(ctx context.Context, js jetstream.JetStream, subject string, transactions []types.Transaction) error {
	for _, tx := range transactions {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("marshaling transaction %d: %w", tx.Tx, err)
		}
		if _, err := js.Publish(ctx, subject, data); err != nil {
			return fmt.Errorf("publishing transaction %d: %w", tx.Tx, err)
		}
	}

	return nil
}
