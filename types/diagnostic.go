package types

// DiagnosticCode classifies a business-rule rejection.
type DiagnosticCode uint8

const (
	// DiagInsufficientFunds marks a withdrawal exceeding the available balance.
	DiagInsufficientFunds DiagnosticCode = iota

	// DiagNoSuchDeposit marks a dispute/resolve/chargeback referencing an
	// unknown deposit. Withdrawals never create deposit records, so disputing
	// a withdrawal also reports this code.
	DiagNoSuchDeposit

	// DiagAlreadyDisputed marks a dispute of a deposit that is not in the
	// normal state (already disputed or charged back).
	DiagAlreadyDisputed

	// DiagNotDisputed marks a resolve/chargeback of a deposit that is not
	// currently disputed.
	DiagNotDisputed

	// DiagAccountLocked reports that a successful chargeback has locked the
	// account. Unlike the other codes it accompanies a state change rather
	// than a rejection.
	DiagAccountLocked
)

// String returns a stable label for the code, suitable for log fields and
// metric labels.
func (c DiagnosticCode) String() string {
	switch c {
	case DiagInsufficientFunds:
		return "insufficient_funds"
	case DiagNoSuchDeposit:
		return "no_such_deposit"
	case DiagAlreadyDisputed:
		return "already_disputed"
	case DiagNotDisputed:
		return "not_disputed"
	case DiagAccountLocked:
		return "account_locked"
	default:
		return "unknown"
	}
}

// Diagnostic is an advisory event emitted by the account state machine.
//
// Diagnostics never alter control flow: the triggering transaction is simply
// not applied (or, for DiagAccountLocked, has just been applied) and
// processing continues. They are intended for logging and audit collaborators.
type Diagnostic struct {
	// Code classifies the event.
	Code DiagnosticCode `json:"code"`

	// Client is the account the transaction targeted.
	Client ClientID `json:"client"`

	// Tx is the transaction (or referenced deposit) id.
	Tx TransactionID `json:"tx"`

	// Amount is the requested amount for insufficient-funds events, zero otherwise.
	Amount float64 `json:"amount,omitempty"`

	// Available is the available balance at rejection time for
	// insufficient-funds events, zero otherwise.
	Available float64 `json:"available,omitempty"`
}

// DiagnosticHandler receives diagnostics emitted during a run.
//
// Handlers are invoked synchronously from worker goroutines and MUST be safe
// for concurrent use. They should return quickly; slow handlers stall the
// worker that emitted the diagnostic.
type DiagnosticHandler interface {
	// HandleDiagnostic consumes one diagnostic event.
	HandleDiagnostic(d Diagnostic)
}

// DiagnosticHandlerFunc adapts a function to the DiagnosticHandler interface.
type DiagnosticHandlerFunc func(d Diagnostic)

// HandleDiagnostic calls f(d).
func (f DiagnosticHandlerFunc) HandleDiagnostic(d Diagnostic) { f(d) }
