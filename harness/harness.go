package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/weiihann/mutbench/workload"
)

// Runner executes variants one at a time against a fresh State.
type Runner struct {
	Iterations int
	Logger     *slog.Logger

	now func() time.Time
}

// NewRunner creates a Runner that performs n iterations per variant.
func NewRunner(n int, logger *slog.Logger) *Runner {
	return &Runner{
		Iterations: n,
		Logger:     logger,
		now:        time.Now,
	}
}

// Run resets a new State, drives v for the configured iteration count and
// returns the elapsed wall-clock time with the final record.
func (r *Runner) Run(ctx context.Context, v workload.Variant) Result {
	var s workload.State

	s.Reset(r.now())
	v.Run(&s, r.Iterations)
	elapsed := r.now().Sub(s.Start)

	r.Logger.DebugContext(ctx, "variant finished",
		slog.String("variant", v.Label),
		slog.Int("iterations", s.Counter),
		slog.Duration("elapsed", elapsed),
		slog.String("final", s.Current.String()),
	)

	return newResult(v.Label, r.Iterations, elapsed, s.Current)
}

// RunAll runs variants in order. The first result becomes the baseline and
// every later one is checked against it. onResult, if set, sees each result
// as soon as its loop completes and before the check. The first mismatch
// or onResult error stops the run; results gathered so far are returned.
func (r *Runner) RunAll(
	ctx context.Context,
	variants []workload.Variant,
	onResult func(Result) error,
) ([]Result, error) {
	var oracle Oracle

	results := make([]Result, 0, len(variants))

	for i, v := range variants {
		res := r.Run(ctx, v)
		results = append(results, res)

		if onResult != nil {
			if err := onResult(res); err != nil {
				return results, fmt.Errorf("report %q: %w", v.Label, err)
			}
		}

		if i == 0 {
			if err := oracle.Capture(res); err != nil {
				return results, err
			}

			continue
		}

		if err := oracle.Check(res); err != nil {
			r.Logger.ErrorContext(ctx, "oracle check failed",
				slog.String("variant", v.Label),
				slog.String("error", err.Error()),
			)

			return results, err
		}
	}

	return results, nil
}
