package compare

import (
	"math"
	"strconv"
	"unicode"
)

// Tolerances configure numeric equality. BASIC implementations print
// floats to about six significant digits, so outputs commonly diverge in
// the low-order decimals without being wrong.
type Tolerances struct {
	// Relative is the scaled threshold used for values of ordinary
	// magnitude: equal iff |a-b| / max(|a|,|b|) < Relative.
	Relative float64
	// Absolute is the fixed threshold used in the near-zero regime,
	// where relative scaling is unstable.
	Absolute float64
	// NearZero bounds the near-zero regime: the absolute threshold
	// applies only when both magnitudes are below it.
	NearZero float64
}

// DefaultTolerances matches six-significant-digit BASIC float output.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Relative: 1e-6,
		Absolute: 1e-6,
		NearZero: 1e-6,
	}
}

// Equal reports whether a and b are equal under the tolerances.
// Symmetric in its arguments and reflexive for all finite values.
func (t Tolerances) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.Abs(a) < t.NearZero && math.Abs(b) < t.NearZero {
		return math.Abs(a-b) < t.Absolute
	}
	return math.Abs(a-b)/math.Max(math.Abs(a), math.Abs(b)) < t.Relative
}

// ParseNumber reports whether s is a decimal floating-point literal
// (optional sign, optional fraction, optional exponent) and its value.
// Parse failure is a capability check, never an error: non-numeric
// tokens simply fall back to exact string comparison.
func ParseNumber(s string) (float64, bool) {
	if !numericLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numericLiteral checks the whole string is one decimal literal. This
// deliberately rejects forms strconv accepts but no BASIC prints: hex
// floats, "Inf", "NaN", digit underscores.
func numericLiteral(s string) bool {
	rs := []rune(s)
	if len(rs) == 0 {
		return false
	}
	hasDigit := false
	for _, r := range rs {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	return hasDigit && scanNumber(rs, 0) == len(rs)
}
