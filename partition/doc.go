// Package partition provides built-in client partitioning strategies.
//
// A partitioner routes every transaction of a client to the same worker for
// the whole run. Because the routing function is pure and fixed, the client
// shards owned by different workers are provably disjoint, which is what
// makes lock-free parallel processing safe.
//
// The package includes:
//
//   - XXH3: xxh3 hash of the client id modulo the worker count (default)
//   - Modulo: client id modulo the worker count (deterministic layout for tests)
//
// Custom strategies can be implemented by satisfying the Partitioner interface.
package partition
