// Package suite runs the comparator across a whole directory of test
// outputs: every <name>.out in the output directory is checked against
// <name>.ref in the reference directory.
package suite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cbasic-project/harness-go/internal/compare"
)

// Options configure a suite run.
type Options struct {
	OutputDir    string
	ReferenceDir string
	Compare      compare.Options

	// Parallelism bounds concurrent file comparisons; <= 0 means one
	// per CPU. Each individual comparison is still fully synchronous.
	Parallelism int
}

// TestResult is the outcome for one test.
type TestResult struct {
	Name   string
	Result compare.Result
	// Err is set when the test could not be compared at all, e.g. a
	// missing or unreadable reference. It counts as a failure.
	Err error
}

// Passed reports whether the test compared cleanly.
func (r TestResult) Passed() bool {
	return r.Err == nil && r.Result.Match
}

// Summary aggregates a whole run, results ordered by test name.
type Summary struct {
	Results []TestResult
	Passed  int
	Failed  int
}

// Run compares every test output against its reference. Per-test
// failures are data in the summary; the returned error is reserved for
// an unreadable output directory.
func Run(ctx context.Context, opts Options) (Summary, error) {
	entries, err := os.ReadDir(opts.OutputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("suite: read output dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".out") {
			names = append(names, strings.TrimSuffix(e.Name(), ".out"))
		}
	}
	sort.Strings(names)

	results := make([]TestResult, len(names))
	g, _ := errgroup.WithContext(ctx)
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g.SetLimit(limit)

	for i, name := range names {
		i := i
		name := name
		g.Go(func() error {
			results[i] = runOne(name, opts)
			return nil
		})
	}
	// The group never returns an error; per-test problems live in the
	// results.
	_ = g.Wait()

	summary := Summary{Results: results}
	for _, r := range results {
		if r.Passed() {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary, nil
}

func runOne(name string, opts Options) TestResult {
	out, err := os.ReadFile(filepath.Join(opts.OutputDir, name+".out"))
	if err != nil {
		return TestResult{Name: name, Err: fmt.Errorf("read output: %w", err)}
	}
	ref, err := os.ReadFile(filepath.Join(opts.ReferenceDir, name+".ref"))
	if err != nil {
		return TestResult{Name: name, Err: fmt.Errorf("missing reference: %w", err)}
	}

	result := compare.CompareStreams(compare.SplitLines(out), compare.SplitLines(ref), opts.Compare)
	return TestResult{Name: name, Result: result}
}
