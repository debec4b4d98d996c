// Package main provides the CLI entry point for mutbench, a micro-benchmark
// comparing ways of mutating a small value type in a tight loop.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/weiihann/mutbench/harness"
	"github.com/weiihann/mutbench/report"
	"github.com/weiihann/mutbench/workload"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level, os.Stdout)
	if err := root.Execute(); err != nil {
		logger.Error("benchmark failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type runConfig struct {
	format  string
	only    []string
	verbose bool
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *cobra.Command {
	var cfg runConfig

	run := func(cmd *cobra.Command, _ []string) error {
		if cfg.verbose {
			level.Set(slog.LevelDebug)
		}

		return runBenchmark(cmd.Context(), logger, out, cfg)
	}

	root := &cobra.Command{
		Use:   "mutbench",
		Short: "Compare the cost of value mutation strategies",
		Long: `Mutbench times seven equivalent ways of repeatedly mutating a
four-field record: direct copy/assign, callbacks taking a pointer, and
callbacks taking a raw address. Every variant must reach the same final
value as the first one or the run aborts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.format, "format", report.FormatLine,
		fmt.Sprintf("Output format: %v", report.Formats()))
	flags.StringArrayVar(&cfg.only, "only", nil,
		"Run only the variant with this label; repeatable, first is the baseline")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false,
		"Enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run every mutation variant and report elapsed time",
		Args:  cobra.NoArgs,
		RunE:  run,
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List variant labels in execution order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, label := range workload.Labels() {
				if _, err := fmt.Fprintln(out, label); err != nil {
					return err
				}
			}

			return nil
		},
	})

	return root
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg runConfig,
) error {
	if !slices.Contains(report.Formats(), cfg.format) {
		return fmt.Errorf("%w %q", report.ErrUnknownFormat, cfg.format)
	}

	variants, err := selectVariants(cfg.only)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int("iterations", harness.Iterations),
		slog.Int("variants", len(variants)),
		slog.String("format", cfg.format),
	)

	var onResult func(harness.Result) error
	if report.Streams(cfg.format) {
		onResult = func(r harness.Result) error {
			return report.Line(out, r)
		}
	}

	runner := harness.NewRunner(harness.Iterations, logger)

	results, err := runner.RunAll(ctx, variants, onResult)
	if err != nil {
		return fmt.Errorf("run variants: %w", err)
	}

	if !report.Streams(cfg.format) {
		if err := report.Write(out, cfg.format, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}

func selectVariants(labels []string) ([]workload.Variant, error) {
	if len(labels) == 0 {
		return workload.Variants(), nil
	}

	variants := make([]workload.Variant, 0, len(labels))

	for _, label := range labels {
		v, err := workload.Lookup(label)
		if err != nil {
			return nil, err
		}

		variants = append(variants, v)
	}

	return variants, nil
}
