// run-suite compares every collected test output against its reference
// and prints a per-test PASS/FAIL report.
//
// Usage:
//
//	run-suite [--strict] [--parallel N] [--outputs DIR] [--refs DIR]
//
// Exit code 0 = all tests pass. 1 = at least one failure. 2 = a
// directory could not be read.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/cbasic-project/harness-go/internal/compare"
	"github.com/cbasic-project/harness-go/internal/config"
	"github.com/cbasic-project/harness-go/internal/observability"
	"github.com/cbasic-project/harness-go/internal/suite"
)

func main() {
	strict := flag.Bool("strict", false, "disable the lenient content-based fallback")
	parallel := flag.Int("parallel", 0, "max concurrent comparisons (0 = one per CPU)")
	outputs := flag.String("outputs", "", "output directory (overrides config)")
	refs := flag.String("refs", "", "reference directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger := observability.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := suite.Options{
		OutputDir:    cfg.OutputDir,
		ReferenceDir: cfg.ReferenceDir,
		Parallelism:  *parallel,
		Compare: compare.Options{
			Mode:       cfg.CompareMode(),
			Tolerances: cfg.CompareTolerances(),
			Filters:    []compare.LineFilter{compare.BannerFilter},
		},
	}
	if *strict {
		opts.Compare.Mode = compare.ModeStrict
	}
	if *outputs != "" {
		opts.OutputDir = *outputs
	}
	if *refs != "" {
		opts.ReferenceDir = *refs
	}

	logger.Info("running suite", "outputs", opts.OutputDir, "refs", opts.ReferenceDir)
	summary, err := suite.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	for _, r := range summary.Results {
		switch {
		case r.Passed():
			fmt.Printf("%s %s\n", paint("PASS", "32", color), r.Name)
		case r.Err != nil:
			fmt.Printf("%s %s: %v\n", paint("FAIL", "31", color), r.Name, r.Err)
		default:
			fmt.Printf("%s %s: %s\n", paint("FAIL", "31", color), r.Name, r.Result.Summary)
			for _, d := range r.Result.Differences {
				fmt.Printf("  Line %d: %s\n", d.Line, d.Reason)
			}
		}
	}
	fmt.Printf("%d passed, %d failed\n", summary.Passed, summary.Failed)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func paint(s, code string, enabled bool) string {
	if !enabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
