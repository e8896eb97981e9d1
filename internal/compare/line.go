package compare

import "fmt"

// CompareLines compares one line pair under the given mode. The strict
// path always runs first; in ModeLenient a strict failure falls back to
// content-based comparison, so a formatting-only difference still
// counts as equal.
func CompareLines(line1, line2 string, mode Mode, tol Tolerances) Verdict {
	v := compareStrict(line1, line2, tol)
	if v.Equal || mode == ModeStrict {
		return v
	}
	return compareContent(line1, line2, tol)
}

// compareStrict normalizes both lines and compares whitespace-delimited
// tokens by position. The first mismatch short-circuits.
func compareStrict(line1, line2 string, tol Tolerances) Verdict {
	n1 := NormalizeStrict(line1)
	n2 := NormalizeStrict(line2)
	if n1 == n2 {
		return Verdict{Equal: true}
	}

	tokens1 := TokenizeFields(n1)
	tokens2 := TokenizeFields(n2)
	if len(tokens1) != len(tokens2) {
		return Verdict{
			Reason: fmt.Sprintf("different token count: %d vs %d", len(tokens1), len(tokens2)),
		}
	}

	for i := range tokens1 {
		if v := CompareTokens(tokens1[i], tokens2[i], tol); !v.Equal {
			return Verdict{Reason: fmt.Sprintf("token %d: %s", i, v.Reason)}
		}
	}
	return Verdict{Equal: true}
}

// compareContent compares the raw lines by lexical content tokens,
// ignoring spacing entirely.
func compareContent(line1, line2 string, tol Tolerances) Verdict {
	tokens1 := TokenizeLexical(line1)
	tokens2 := TokenizeLexical(line2)
	if len(tokens1) != len(tokens2) {
		return Verdict{
			Reason: fmt.Sprintf("different content element count: %d vs %d", len(tokens1), len(tokens2)),
		}
	}

	for i := range tokens1 {
		if v := CompareTokens(tokens1[i], tokens2[i], tol); !v.Equal {
			return Verdict{Reason: fmt.Sprintf("content element %d: %s", i, v.Reason)}
		}
	}
	return Verdict{Equal: true}
}
