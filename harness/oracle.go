package harness

import (
	"errors"
	"fmt"

	"github.com/weiihann/mutbench/workload"
)

var (
	// ErrMismatch reports a variant whose final record differs from the
	// baseline. It means the harness itself is broken.
	ErrMismatch = errors.New("final value does not match baseline")

	// ErrNoBaseline is returned by Check before Capture has been called.
	ErrNoBaseline = errors.New("no baseline captured")

	// ErrBaselineCaptured is returned by a second Capture.
	ErrBaselineCaptured = errors.New("baseline already captured")
)

// Oracle holds the baseline result every later variant must reproduce.
// The baseline is set once and never changes.
type Oracle struct {
	label    string
	baseline workload.Record
	captured bool
}

// Capture records r as the baseline.
func (o *Oracle) Capture(r Result) error {
	if o.captured {
		return fmt.Errorf("capture %q: %w (from %q)",
			r.Variant, ErrBaselineCaptured, o.label)
	}

	o.label = r.Variant
	o.baseline = r.Final
	o.captured = true

	return nil
}

// Baseline returns the captured record and whether one has been captured.
func (o *Oracle) Baseline() (workload.Record, bool) {
	return o.baseline, o.captured
}

// Check compares r against the baseline.
func (o *Oracle) Check(r Result) error {
	if !o.captured {
		return fmt.Errorf("check %q: %w", r.Variant, ErrNoBaseline)
	}

	if r.Final != o.baseline {
		return fmt.Errorf("%w: %q produced %s, %q produced %s",
			ErrMismatch, r.Variant, r.Final, o.label, o.baseline)
	}

	return nil
}
