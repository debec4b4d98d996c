// Package harness times mutation variants and cross-checks their results.
package harness

import (
	"time"

	"github.com/weiihann/mutbench/workload"
)

// Iterations is the fixed loop count of every benchmark run.
const Iterations = 10_000_000

// Result holds the outcome of one variant run.
type Result struct {
	Variant        string          `json:"variant" yaml:"variant"`
	Iterations     int             `json:"iterations" yaml:"iterations"`
	Elapsed        time.Duration   `json:"-" yaml:"-"`
	ElapsedSeconds float64         `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Final          workload.Record `json:"final" yaml:"final"`
	Digest         string          `json:"digest" yaml:"digest"`
}

func newResult(label string, n int, elapsed time.Duration, final workload.Record) Result {
	return Result{
		Variant:        label,
		Iterations:     n,
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
		Final:          final,
		Digest:         final.Digest(),
	}
}
