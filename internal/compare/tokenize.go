package compare

import (
	"strings"
	"unicode"
)

// TokenizeFields splits a normalized line on runs of whitespace. Used by
// the strict comparison path.
func TokenizeFields(line string) []string {
	return strings.Fields(line)
}

// TokenizeLexical extracts content tokens from a raw line, left to
// right: maximal alphabetic runs, numeric literals (optional sign,
// digits, fraction, exponent), and any other non-whitespace character as
// its own token. Whitespace separates tokens and is discarded. This is
// the lenient fallback: it ignores spacing around punctuation entirely.
func TokenizeLexical(line string) []string {
	var tokens []string
	rs := []rune(line)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			j := i + 1
			for j < len(rs) && unicode.IsLetter(rs[j]) {
				j++
			}
			tokens = append(tokens, string(rs[i:j]))
			i = j
		case startsNumber(rs, i):
			j := scanNumber(rs, i)
			tokens = append(tokens, string(rs[i:j]))
			i = j
		default:
			tokens = append(tokens, string(r))
			i++
		}
	}
	return tokens
}

// startsNumber reports whether a numeric literal begins at rs[i]: a
// digit, a dot followed by a digit, or a sign followed by either.
func startsNumber(rs []rune, i int) bool {
	r := rs[i]
	if unicode.IsDigit(r) {
		return true
	}
	if r == '.' {
		return i+1 < len(rs) && unicode.IsDigit(rs[i+1])
	}
	if r == '+' || r == '-' {
		if i+1 >= len(rs) {
			return false
		}
		return unicode.IsDigit(rs[i+1]) ||
			(rs[i+1] == '.' && i+2 < len(rs) && unicode.IsDigit(rs[i+2]))
	}
	return false
}

// scanNumber consumes a maximal numeric literal starting at rs[i] and
// returns the index one past its end. The exponent marker is only taken
// when digits follow it, so "1E" scans as just "1".
func scanNumber(rs []rune, i int) int {
	j := i
	if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
		j++
	}
	for j < len(rs) && unicode.IsDigit(rs[j]) {
		j++
	}
	if j < len(rs) && rs[j] == '.' {
		j++
		for j < len(rs) && unicode.IsDigit(rs[j]) {
			j++
		}
	}
	if j < len(rs) && (rs[j] == 'e' || rs[j] == 'E') {
		k := j + 1
		if k < len(rs) && (rs[k] == '+' || rs[k] == '-') {
			k++
		}
		if k < len(rs) && unicode.IsDigit(rs[k]) {
			for k < len(rs) && unicode.IsDigit(rs[k]) {
				k++
			}
			j = k
		}
	}
	return j
}
