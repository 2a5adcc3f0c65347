package testutil

import (
	"testing"

	"github.com/JerelRocktaschel/jumpshot/internal/metrics"
)

// AssertUpstream checks the call and error counts recorded for one operation.
func AssertUpstream(t *testing.T, rec *metrics.Recorder, operation string, calls, errs int) {
	t.Helper()
	snap := rec.Snapshot(operation)
	if snap.Calls != calls || snap.Errors != errs {
		t.Fatalf("%s: expected %d calls and %d errors, got %+v", operation, calls, errs, snap)
	}
}
