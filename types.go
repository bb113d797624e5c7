package txreplay

import "github.com/finvolt/txreplay/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `txreplay` package, while
// still providing a convenient `txreplay.Transaction`, `txreplay.Logger`, etc.
// for users.
type (
	ClientID       = types.ClientID
	TransactionID  = types.TransactionID
	Kind           = types.Kind
	Transaction    = types.Transaction
	Output         = types.Output
	Diagnostic     = types.Diagnostic
	DiagnosticCode = types.DiagnosticCode
)

// Re-export interfaces from the internal types package for convenience.
type (
	TransactionSource     = types.TransactionSource
	DiagnosticHandler     = types.DiagnosticHandler
	DiagnosticHandlerFunc = types.DiagnosticHandlerFunc
	MetricsCollector      = types.MetricsCollector
	Logger                = types.Logger
)

// Re-export Kind constants from the internal types package.
const (
	KindDeposit    = types.KindDeposit
	KindWithdrawal = types.KindWithdrawal
	KindDispute    = types.KindDispute
	KindResolve    = types.KindResolve
	KindChargeback = types.KindChargeback
)

// Re-export DiagnosticCode constants from the internal types package.
const (
	DiagInsufficientFunds = types.DiagInsufficientFunds
	DiagNoSuchDeposit     = types.DiagNoSuchDeposit
	DiagAlreadyDisputed   = types.DiagAlreadyDisputed
	DiagNotDisputed       = types.DiagNotDisputed
	DiagAccountLocked     = types.DiagAccountLocked
)
