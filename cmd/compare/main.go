// compare checks BASIC interpreter output against a reference transcript
// under float- and formatting-tolerant rules.
//
// Usage:
//
//	compare [flags] <cbasic_output_file> <reference_output_file>
//
// Exit code 0 = outputs match. Exit code 1 = outputs differ. Exit code 2
// is reserved for "cannot read input", so pipeline failures are never
// mistaken for comparison failures.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/cbasic-project/harness-go/internal/compare"
	"github.com/cbasic-project/harness-go/internal/config"
	"github.com/cbasic-project/harness-go/internal/observability"
)

func main() {
	strict := flag.Bool("strict", false, "disable the lenient content-based fallback")
	noSkipHeader := flag.Bool("no-skip-header", false, "do not drop a leading interpreter banner line")
	verbose := flag.Bool("verbose", false, "also print a unified diff of the normalized streams")
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: compare [flags] <cbasic_output_file> <reference_output_file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger := observability.InitLogger(level)

	outPath, refPath := flag.Arg(0), flag.Arg(1)
	outData, err := os.ReadFile(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	refData, err := os.ReadFile(refPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	opts := compare.Options{
		Mode:       cfg.CompareMode(),
		Tolerances: cfg.CompareTolerances(),
	}
	if *strict {
		opts.Mode = compare.ModeStrict
	}
	if !*noSkipHeader {
		opts.Filters = []compare.LineFilter{compare.BannerFilter}
	}

	outLines := compare.SplitLines(outData)
	refLines := compare.SplitLines(refData)
	logger.Debug("comparing outputs", "cbasic", outPath, "reference", refPath, "strict", *strict)

	result := compare.CompareStreams(outLines, refLines, opts)

	color := isatty.IsTerminal(os.Stdout.Fd())
	if result.Match {
		fmt.Println(paint("PASS: Outputs match", "32", color))
		return
	}

	fmt.Println(paint("FAIL: Outputs differ", "31", color))
	for _, d := range result.Differences {
		fmt.Println("  " + strings.ReplaceAll(d.Format(), "\n", "\n  "))
	}
	if *verbose {
		printUnifiedDiff(outPath, refPath, outLines, refLines)
	}
	os.Exit(1)
}

func paint(s, code string, enabled bool) string {
	if !enabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// printUnifiedDiff shows the normalized streams side by side, which is
// easier to scan than per-line reasons when many lines moved.
func printUnifiedDiff(outPath, refPath string, outLines, refLines []string) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        normalizedForDiff(outLines),
		B:        normalizedForDiff(refLines),
		FromFile: outPath,
		ToFile:   refPath,
		Context:  3,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: diff: %v\n", err)
		return
	}
	fmt.Print(diff)
}

func normalizedForDiff(lines []string) []string {
	lines = compare.TrimTrailingBlank(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = compare.NormalizeStrict(line) + "\n"
	}
	return out
}
