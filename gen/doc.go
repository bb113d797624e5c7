// Package gen produces synthetic transaction streams for load and replay
// testing.
//
// Two generators are provided:
//   - Realistic: weighted mix of kinds where disputes, resolves and
//     chargebacks reference deposits actually generated earlier, so the
//     stream exercises the full account lifecycle
//   - Uniform: every field drawn uniformly at random, so almost every
//     dispute, resolve and chargeback misses and the stream exercises the
//     rejection paths
//
// Both generators are deterministic for a given seed. Use Stream to adapt a
// generator into a bounded transaction source.
package gen
