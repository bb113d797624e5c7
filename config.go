package txreplay

import (
	"fmt"
	"runtime"
)

// Config is the configuration for the Engine.
//
// Both fields are pure tuning parameters: they change throughput and memory
// footprint but have no effect on output correctness. Replaying the same
// input with any worker count yields the same multiset of outputs.
type Config struct {
	// Workers is the number of partition workers for the run (>= 1).
	//
	// Each worker owns a disjoint shard of the account table. One worker
	// makes the run fully deterministic, which tests rely on; more workers
	// parallelize processing at the cost of channel overhead.
	Workers int `yaml:"workers"`

	// ChannelCapacity is the bounded in-flight capacity of each per-worker
	// channel.
	//
	// The producer suspends when a worker's channel is full, providing
	// backpressure and preventing unbounded memory growth when workers lag.
	// Larger capacities smooth out bursty partitions at the cost of memory.
	ChannelCapacity int `yaml:"channelCapacity"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Workers:         runtime.NumCPU(),
		ChannelCapacity: 100000,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.ChannelCapacity == 0 {
		cfg.ChannelCapacity = defaults.ChannelCapacity
	}
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Hard Validation Rules:
//   - Workers >= 1 (at least one partition worker)
//   - ChannelCapacity >= 1 (channels must be able to buffer)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("Workers must be >= 1, got %d", cfg.Workers)
	}

	if cfg.ChannelCapacity < 1 {
		return fmt.Errorf("ChannelCapacity must be >= 1, got %d", cfg.ChannelCapacity)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in New() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.ChannelCapacity < 64 {
		logger.Warn(
			"ChannelCapacity is very small, producer will stall frequently",
			"channelCapacity", cfg.ChannelCapacity,
			"recommended", "1024 or higher",
		)
	}

	if cfg.Workers > 4*runtime.NumCPU() {
		logger.Warn(
			"Workers greatly exceeds available CPUs, channel overhead will dominate",
			"workers", cfg.Workers,
			"cpus", runtime.NumCPU(),
		)
	}
}

// TestConfig returns a configuration optimized for deterministic tests.
//
// A single worker removes all cross-client interleaving, and the tiny channel
// capacity exercises producer backpressure. Use DefaultConfig() for
// production runs.
//
// Returns:
//   - Config: Configuration with a single worker and a small channel
func TestConfig() Config {
	return Config{
		Workers:         1,
		ChannelCapacity: 64,
	}
}
