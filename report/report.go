// Package report formats benchmark results for the console.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/weiihann/mutbench/harness"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Output formats accepted by Write.
const (
	FormatLine  = "line"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every supported output format.
func Formats() []string {
	return []string{FormatLine, FormatTable, FormatJSON, FormatYAML}
}

// Streams reports whether format is written one result at a time as
// variants finish, rather than once at the end.
func Streams(format string) bool {
	return format == FormatLine
}

// Line writes the single-run observation "<seconds>s : <label>".
func Line(w io.Writer, r harness.Result) error {
	_, err := fmt.Fprintf(w, "%.4fs : %s\n", r.Elapsed.Seconds(), r.Variant)

	return err
}

// Write renders results in the named format.
func Write(w io.Writer, format string, results []harness.Result) error {
	switch format {
	case FormatLine:
		for _, r := range results {
			if err := Line(w, r); err != nil {
				return err
			}
		}

		return nil
	case FormatTable:
		return Generate(w, results)
	case FormatJSON:
		return GenerateJSON(w, results)
	case FormatYAML:
		return GenerateYAML(w, results)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Generate writes a markdown comparison table for the given results.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := findFastest(results)

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	if checkDigests(results) {
		fmt.Fprintln(w, "Final values: **all match**")
	} else {
		fmt.Fprintln(w, "Final values: **MISMATCH**")

		for _, r := range results {
			fmt.Fprintf(w, "  - %s: %s\n", r.Variant, r.Digest)
		}
	}

	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Variant | Iterations | Elapsed | ns/iter | Slowdown |")
	fmt.Fprintln(w, "|---------|------------|---------|---------|----------|")

	for _, r := range results {
		slowdown := 1.0
		if fastest > 0 && r.Elapsed > 0 {
			slowdown = float64(r.Elapsed) / float64(fastest)
		}

		fmt.Fprintf(w, "| %s | %d | %s | %s | %.2fx |\n",
			r.Variant,
			r.Iterations,
			formatDuration(r.Elapsed),
			formatPerIter(r.Elapsed, r.Iterations),
			slowdown,
		)
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// GenerateYAML writes results as a YAML sequence to w.
func GenerateYAML(w io.Writer, results []harness.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func checkDigests(results []harness.Result) bool {
	if len(results) < 2 {
		return true
	}

	first := results[0].Digest
	for _, r := range results[1:] {
		if r.Digest != first {
			return false
		}
	}

	return true
}

func findFastest(results []harness.Result) time.Duration {
	var fastest time.Duration

	for _, r := range results {
		if r.Elapsed > 0 && (fastest == 0 || r.Elapsed < fastest) {
			fastest = r.Elapsed
		}
	}

	return fastest
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return fmt.Sprintf("%.2fs", d.Seconds())
}

func formatPerIter(d time.Duration, n int) string {
	if n <= 0 {
		return "-"
	}

	return fmt.Sprintf("%.2f", float64(d.Nanoseconds())/float64(n))
}
