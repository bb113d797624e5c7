package txreplay

import "github.com/finvolt/txreplay/types"

// Sentinel errors returned by the Engine.
//
// They alias the definitions in the types subpackage so that internal
// packages can reference them without importing the root package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrSourceRequired is returned when the transaction source is nil.
	ErrSourceRequired = types.ErrSourceRequired

	// ErrRunInProgress is returned when Run is called while another run is active.
	ErrRunInProgress = types.ErrRunInProgress

	// ErrSourceFailed is returned when reading the transaction source fails mid-run.
	ErrSourceFailed = types.ErrSourceFailed

	// ErrRunAborted is returned when a run is terminated by context cancellation.
	ErrRunAborted = types.ErrRunAborted
)
