package types

import "errors"

// Sentinel errors for the txreplay library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Engine errors - Public API errors returned by the Engine component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceRequired is returned when a transaction source is nil.
	ErrSourceRequired = errors.New("transaction source is required")

	// ErrRunInProgress is returned when Run is called while another run is active.
	ErrRunInProgress = errors.New("run already in progress")

	// ErrSourceFailed is returned when reading the transaction source fails
	// mid-run. The whole run aborts; no partial outputs are produced.
	ErrSourceFailed = errors.New("transaction source failed")

	// ErrRunAborted is returned when a run is terminated by context cancellation.
	ErrRunAborted = errors.New("run aborted")
)

// Codec errors - Wire-format decoding errors.
var (
	// ErrMalformedRecord is returned when a textual record cannot be decoded
	// into a transaction.
	ErrMalformedRecord = errors.New("malformed transaction record")
)
