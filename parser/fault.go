package parser

import (
	"fmt"

	"github.com/google/uuid"
)

// Fault is a parse call that failed for reasons other than bad input: a nil
// settings provider or stage, invalid settings, a malformed shape, or a
// converter that panicked. Faults are returned as errors, never as an
// Unmatched outcome.
type Fault struct {
	// ID correlates the returned error with the log entry.
	ID uuid.UUID

	Input  string
	Target string
	Err    error
}

func newFault(input, target string, err error) *Fault {
	return &Fault{ID: uuid.New(), Input: input, Target: target, Err: err}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("parser fault %s: parsing %q as %s: %v", f.ID, f.Input, f.Target, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Verify Fault implements the error interface.
var _ error = (*Fault)(nil)
