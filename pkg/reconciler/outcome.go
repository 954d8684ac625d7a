package reconciler

import (
	"fmt"

	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Op is the kind of outcome a definition produced during reconciliation.
type Op string

// Possible per-definition outcomes.
const (
	// OpCreated means the definition had no stored counterpart and a new
	// record was created.
	OpCreated Op = "created"

	// OpUpdated means an existing record was updated in place, keeping
	// its identity.
	OpUpdated Op = "updated"

	// OpSkipped means the definition was intentionally excluded by the
	// experimental filter. Not an error.
	OpSkipped Op = "skipped"

	// OpFailed means lookup, validation, or persistence failed for this
	// definition. The failure never aborts the pass.
	OpFailed Op = "failed"
)

// String returns the string representation of the op.
func (o Op) String() string {
	return string(o)
}

// Outcome is the per-definition result of a reconciliation attempt.
type Outcome struct {
	// Name of the runner type definition this outcome belongs to.
	Name string

	// Op describes what happened.
	Op Op

	// Record is the stored record after a successful create or update,
	// nil otherwise.
	Record *runnertypes.Record

	// Err carries the failure reason when Op is OpFailed.
	Err error
}

// Failed reports whether this outcome represents a failure.
func (o Outcome) Failed() bool {
	return o.Op == OpFailed
}

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	if o.Failed() {
		return fmt.Sprintf("%s: failed: %v", o.Name, o.Err)
	}
	return fmt.Sprintf("%s: %s", o.Name, o.Op)
}
