package compare

import (
	"fmt"
	"strings"
)

// CompareStreams aligns two full output streams line by line and reports
// every difference in one pass: the comparison never stops at the first
// mismatch, so an unattended pipeline run gets the complete picture.
// Given the same streams and options, the result is always identical.
func CompareStreams(actual, reference []string, opts Options) Result {
	actual = FilterLines(actual, opts.Filters)
	actual = TrimTrailingBlank(actual)
	reference = TrimTrailingBlank(reference)

	var diffs []Difference
	n := max(len(actual), len(reference))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(actual):
			diffs = append(diffs, Difference{
				Line:      i + 1,
				Reason:    "missing line on cbasic side",
				Reference: reference[i],
				Missing:   SideActual,
			})
		case i >= len(reference):
			diffs = append(diffs, Difference{
				Line:    i + 1,
				Reason:  "missing line on reference side",
				Actual:  actual[i],
				Missing: SideReference,
			})
		default:
			if v := CompareLines(actual[i], reference[i], opts.Mode, opts.Tolerances); !v.Equal {
				diffs = append(diffs, Difference{
					Line:      i + 1,
					Reason:    v.Reason,
					Actual:    actual[i],
					Reference: reference[i],
				})
			}
		}
	}

	result := Result{
		Differences: diffs,
		Match:       len(diffs) == 0,
		Summary:     "outputs match",
	}
	if !result.Match {
		result.Summary = fmt.Sprintf("%d differences", len(diffs))
	}
	return result
}

// TrimTrailingBlank drops empty or whitespace-only lines from the end of
// the stream. Leading and interior blank lines are significant and kept.
func TrimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// SplitLines splits raw file content into lines, tolerating LF and CRLF
// endings. A final newline does not produce a trailing empty line.
func SplitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
