// Package testing provides test utilities for the create-student-groups library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single in-process NATS server with JetStream, used
//     by the snapshot store tests
//   - NewTestLogger: types.Logger writing to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    grouptest "github.com/henriasv/create-student-groups/testing"
//	)
//
//	func TestSnapshotStore(t *testing.T) {
//	    _, nc := grouptest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
