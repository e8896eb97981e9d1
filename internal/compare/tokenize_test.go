package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeFields(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"10", "20", "30"}, TokenizeFields("10 20 30"))
	assert.Equal(t, []string{"X", "=", "5"}, TokenizeFields("X = 5"))
	assert.Empty(t, TokenizeFields("   "))
}

func TestTokenizeLexical(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"assignment no spaces", "X=5", []string{"X", "=", "5"}},
		{"assignment with spaces", "X = 5", []string{"X", "=", "5"}},
		{"label and float", "RESULT: 3.14159", []string{"RESULT", ":", "3.14159"}},
		{"exponent literal", "-1.5E+10", []string{"-1.5E+10"}},
		{"comma separated", "-1.5e+10,2", []string{"-1.5e+10", ",", "2"}},
		{"letters then digits split", "A1", []string{"A", "1"}},
		{"bare exponent marker is its own token", "1E", []string{"1", "E"}},
		{"leading dot fraction", ".5", []string{".5"}},
		{"whitespace only", " \t ", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TokenizeLexical(tt.in))
		})
	}
}

func TestTokenizeLexical_MorePermissiveThanFields(t *testing.T) {
	t.Parallel()
	// The two spellings disagree under whitespace splitting but agree
	// lexically. This is the whole point of the lenient fallback.
	assert.NotEqual(t, TokenizeFields("X=5"), TokenizeFields("X = 5"))
	assert.Equal(t, TokenizeLexical("X=5"), TokenizeLexical("X = 5"))
}
