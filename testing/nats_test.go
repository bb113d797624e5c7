package testing

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)

	require.NotNil(t, ns)
	require.NotNil(t, nc)
	require.True(t, nc.IsConnected())

	// Verify server is running
	require.True(t, ns.ReadyForConnections(1*time.Second))

	// Verify JetStream is enabled
	js, err := jetstream.New(nc)
	require.NoError(t, err)
	require.NotNil(t, js)
}

func TestCreateTransactionStream(t *testing.T) {
	_, nc := StartEmbeddedNATS(t)
	js, cons := CreateTransactionStream(t, nc, "TX-HELPER", "tx.helper")

	require.NotNil(t, js)
	require.NotNil(t, cons)

	ctx := t.Context()
	_, err := js.Publish(ctx, "tx.helper", []byte(`{"type":"deposit","client":1,"tx":1,"amount":1}`))
	require.NoError(t, err)

	info, err := cons.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.NumPending, "published message should be pending on the consumer")
}
