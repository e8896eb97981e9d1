package compare

import (
	"fmt"
	"math"
)

// CompareTokens decides equality of a single token pair. Exact string
// equality wins; otherwise a pair that both parse as numbers goes
// through the numeric tolerance; anything else is a string mismatch.
// There are no other coercions: text must match byte for byte.
func CompareTokens(t1, t2 string, tol Tolerances) Verdict {
	if t1 == t2 {
		return Verdict{Equal: true}
	}

	n1, ok1 := ParseNumber(t1)
	n2, ok2 := ParseNumber(t2)
	if ok1 && ok2 {
		if tol.Equal(n1, n2) {
			return Verdict{Equal: true}
		}
		return Verdict{
			Reason: fmt.Sprintf("numeric mismatch: %s vs %s (diff: %g)", t1, t2, math.Abs(n1-n2)),
		}
	}

	// A token that looks numeric on one side only is never forced into
	// numeric comparison.
	return Verdict{
		Reason: fmt.Sprintf("string mismatch: %q vs %q", t1, t2),
	}
}
