package gen

import (
	"context"
	"io"
	"math/rand/v2"

	"github.com/finvolt/txreplay/types"
)

// Generator produces an unbounded stream of synthetic transactions.
type Generator interface {
	// Next returns the next transaction in the stream.
	Next() types.Transaction
}

// depositRef remembers a generated deposit so later transactions can
// reference it.
type depositRef struct {
	tx     types.TransactionID
	client types.ClientID
}

// Realistic generates a weighted transaction mix over a growing client
// population.
//
// Kind weights per roll: 26% deposit, 25% withdrawal, 20% dispute, 28%
// resolve and 1% chargeback. Chargebacks are rare on purpose; with a higher
// weight most accounts end up locked over a long stream. A deposit targets a
// brand new client 20% of the time and an existing one otherwise. Disputes,
// resolves and chargebacks always reference a previously generated deposit,
// so a realistic share of them succeeds.
type Realistic struct {
	rng        *rand.Rand
	nextTx     types.TransactionID
	nextClient types.ClientID
	clients    []types.ClientID
	deposits   []depositRef
}

var _ Generator = (*Realistic)(nil)

// NewRealistic creates a weighted generator.
//
// Parameters:
//   - seed: PRNG seed; the same seed reproduces the same stream
//
// Returns:
//   - *Realistic: Initialized generator
func NewRealistic(seed uint64) *Realistic {
	return &Realistic{
		rng:        rand.New(rand.NewPCG(seed, 0)),
		nextClient: 1,
		clients:    []types.ClientID{0},
	}
}

// Next returns the next transaction.
//
// Rolls that would reference a deposit before any exist are re-rolled, so
// Next always produces a record.
func (g *Realistic) Next() types.Transaction {
	for {
		switch roll := g.rng.IntN(100); {
		case roll <= 25:
			return g.deposit()
		case roll <= 50:
			return g.withdrawal()
		case roll <= 70:
			if tx, ok := g.reference(types.KindDispute); ok {
				return tx
			}
		case roll <= 98:
			if tx, ok := g.reference(types.KindResolve); ok {
				return tx
			}
		default:
			if tx, ok := g.reference(types.KindChargeback); ok {
				return tx
			}
		}
	}
}

func (g *Realistic) deposit() types.Transaction {
	var client types.ClientID
	if g.rng.Float64() < 0.2 {
		client = g.nextClient
		g.clients = append(g.clients, client)
		g.nextClient++
	} else {
		client = g.clients[g.rng.IntN(len(g.clients))]
	}

	tx := g.nextTx
	g.nextTx++
	g.deposits = append(g.deposits, depositRef{tx: tx, client: client})

	return types.Deposit(client, tx, g.rng.Float64()*1000)
}

func (g *Realistic) withdrawal() types.Transaction {
	tx := g.nextTx
	g.nextTx++
	client := g.clients[g.rng.IntN(len(g.clients))]

	return types.Withdrawal(client, tx, g.rng.Float64()*1000)
}

// reference draws a previously generated deposit to dispute, resolve or
// charge back. Returns false before the first deposit.
func (g *Realistic) reference(kind types.Kind) (types.Transaction, bool) {
	if len(g.deposits) == 0 {
		return types.Transaction{}, false
	}
	ref := g.deposits[g.rng.IntN(len(g.deposits))]

	return types.Transaction{Kind: kind, Client: ref.client, Tx: ref.tx}, true
}

// Uniform generates fully random transactions.
//
// Every field is drawn uniformly: kind from the five variants, client from
// the full 16-bit range, tx from the full 32-bit range and amount from
// [0, 1). The resulting stream is adversarial rather than realistic and
// mostly exercises rejection paths.
type Uniform struct {
	rng *rand.Rand
}

var _ Generator = (*Uniform)(nil)

// NewUniform creates a uniform generator.
//
// Parameters:
//   - seed: PRNG seed; the same seed reproduces the same stream
//
// Returns:
//   - *Uniform: Initialized generator
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Next returns the next transaction.
func (g *Uniform) Next() types.Transaction {
	record := types.Transaction{
		Kind:   types.Kind(g.rng.IntN(5)),
		Client: types.ClientID(g.rng.Uint32()),
		Tx:     types.TransactionID(g.rng.Uint32()),
	}
	if record.Kind == types.KindDeposit || record.Kind == types.KindWithdrawal {
		record.Amount = g.rng.Float64()
	}

	return record
}

// Stream adapts a generator into a bounded transaction source producing n
// records.
//
// Parameters:
//   - g: Generator to draw from
//   - n: Number of records before end of input
//
// Returns:
//   - types.TransactionSource: Source yielding n generated transactions
//
// Example:
//
//	outputs, err := eng.Run(ctx, gen.Stream(gen.NewRealistic(42), 1_000_000))
func Stream(g Generator, n int) types.TransactionSource {
	return &stream{g: g, remaining: n}
}

type stream struct {
	g         Generator
	remaining int
}

func (s *stream) Next(ctx context.Context) (types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return types.Transaction{}, err
	}
	if s.remaining <= 0 {
		return types.Transaction{}, io.EOF
	}
	s.remaining--

	return s.g.Next(), nil
}
