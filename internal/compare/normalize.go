package compare

import (
	"strings"
	"unicode"
)

// NormalizeStrict strips leading/trailing whitespace and collapses runs
// of space characters to a single space. Internal non-space whitespace
// is preserved. Idempotent.
func NormalizeStrict(line string) string {
	line = strings.TrimSpace(line)
	var b strings.Builder
	b.Grow(len(line))
	inRun := false
	for _, r := range line {
		if r == ' ' {
			if !inRun {
				b.WriteRune(r)
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeContent removes all whitespace from the line. Used to decide
// whether two lines are the same apart from spacing. Idempotent.
func NormalizeContent(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}
