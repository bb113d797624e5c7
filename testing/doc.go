// Package testing provides test utilities for the txreplay library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for exercising JetStream-backed transaction sources.
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateTransactionStream: Stream plus consumer for replay tests
//   - NewTestLogger: Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    replaytest "github.com/finvolt/txreplay/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := replaytest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
