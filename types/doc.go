// Package types provides core type definitions and interfaces for the txreplay library.
//
// This package contains shared types that are used across multiple packages in the
// txreplay library. By keeping these types in a separate package, we avoid import
// cycles between the main txreplay package and its internal implementations.
//
// Key types:
//   - Transaction: Tagged transaction record (deposit, withdrawal, dispute, resolve, chargeback)
//   - Output: Final per-client balance projection
//   - Diagnostic: Advisory business-rule rejection event
//   - TransactionSource: Single-pass transaction sequence interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
