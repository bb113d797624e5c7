package partition

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/finvolt/txreplay/types"
)

// Partitioner assigns a client to one of a fixed number of workers.
//
// Implementations must be pure and stable: the same (client, workers) pair
// must map to the same worker for the entire run, and the result must lie in
// [0, workers). The engine calls Partition from a single producer goroutine.
type Partitioner interface {
	// Partition returns the index of the worker that owns the client.
	//
	// Parameters:
	//   - client: Client id to route
	//   - workers: Worker count fixed for the run (>= 1)
	//
	// Returns:
	//   - int: Worker index in [0, workers)
	Partition(client types.ClientID, workers int) int
}

// XXH3 routes clients by hashing the client id with xxh3 and reducing modulo
// the worker count.
//
// Hashing decorrelates worker load from the shape of the client id space, so
// dense or strided id allocations still spread evenly across workers.
type XXH3 struct {
	// seed for the hash function (0 means unseeded)
	seed uint64
}

// Compile-time assertion that XXH3 implements Partitioner.
var _ Partitioner = (*XXH3)(nil)

// NewXXH3 creates an unseeded xxh3 partitioner.
//
// Returns:
//   - *XXH3: Partitioner hashing client ids with xxh3
func NewXXH3() *XXH3 {
	return &XXH3{}
}

// NewXXH3Seeded creates an xxh3 partitioner with a fixed seed.
//
// Different seeds produce different (but equally valid) shard layouts, which
// is useful for exercising layout-independence in tests.
//
// Parameters:
//   - seed: Hash seed (0 behaves like NewXXH3)
//
// Returns:
//   - *XXH3: Seeded partitioner
func NewXXH3Seeded(seed uint64) *XXH3 {
	return &XXH3{seed: seed}
}

// Partition hashes the client id and reduces it modulo workers.
func (p *XXH3) Partition(client types.ClientID, workers int) int {
	if workers <= 1 {
		return 0
	}

	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(client))

	var h uint64
	if p.seed != 0 {
		h = xxh3.HashSeed(b[:], p.seed)
	} else {
		h = xxh3.Hash(b[:])
	}

	return int(h % uint64(workers)) //nolint:gosec // workers > 1 checked above
}

// Modulo routes clients by reducing the raw client id modulo the worker
// count.
//
// With uniformly distributed client ids this is as balanced as hashing and
// has the advantage of a predictable shard layout, which deterministic tests
// rely on.
type Modulo struct{}

// Compile-time assertion that Modulo implements Partitioner.
var _ Partitioner = (*Modulo)(nil)

// NewModulo creates a modulo partitioner.
//
// Returns:
//   - *Modulo: Partitioner reducing client ids modulo the worker count
func NewModulo() *Modulo {
	return &Modulo{}
}

// Partition returns client % workers.
func (p *Modulo) Partition(client types.ClientID, workers int) int {
	if workers <= 1 {
		return 0
	}

	return int(uint64(client) % uint64(workers))
}
