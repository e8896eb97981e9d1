package compare

import "strings"

// LineFilter reports whether a raw line should be dropped before
// comparison. Filters are how a reference source's echo noise (banners,
// prompts, command echo) is stripped without hard-coding the source into
// the comparator.
type LineFilter func(line string) bool

// BannerFilter drops the interpreter's startup banner line.
func BannerFilter(line string) bool {
	return strings.HasPrefix(line, "CBASIC")
}

// FilterLines returns the lines that match no filter, in order.
func FilterLines(lines []string, filters []LineFilter) []string {
	if len(filters) == 0 {
		return lines
	}
	kept := make([]string, 0, len(lines))
outer:
	for _, line := range lines {
		for _, f := range filters {
			if f(line) {
				continue outer
			}
		}
		kept = append(kept, line)
	}
	return kept
}
