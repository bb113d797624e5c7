// Package account implements the per-client account state machine.
//
// An Account tracks available and held balances, a lock flag, and the set of
// deposit records eligible for the dispute workflow. Apply is a pure
// transition function: it mutates only the account and returns an optional
// diagnostic, leaving all side effects (logging, metrics, audit) to the
// caller. This keeps the transition logic independently testable.
//
// Per-deposit state machine:
//
//	Normal -> Disputed (dispute) -> Normal (resolve)
//	                             -> ChargedBack (chargeback, terminal)
//
// Account-wide, the first successful chargeback sets the lock flag; a locked
// account ignores every subsequent transaction.
//
// The package performs no I/O and is not safe for concurrent use; the engine
// guarantees each account is owned by exactly one worker.
package account
