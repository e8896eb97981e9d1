package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStrict(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "HELLO", "HELLO"},
		{"leading and trailing", "  HELLO  ", "HELLO"},
		{"collapse runs", "X   =    5", "X = 5"},
		{"tab preserved internally", "A\tB", "A\tB"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeStrict(tt.in))
		})
	}
}

func TestNormalizeContent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "X=5", NormalizeContent("X = 5"))
	assert.Equal(t, "AB", NormalizeContent("A\tB"))
	assert.Equal(t, "", NormalizeContent(" \t "))
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"  X  =  5 ", "A\t B", "", "   ", "RESULT: 3.14159"}
	for _, in := range inputs {
		once := NormalizeStrict(in)
		assert.Equal(t, once, NormalizeStrict(once), "strict normalization of %q not idempotent", in)

		once = NormalizeContent(in)
		assert.Equal(t, once, NormalizeContent(once), "content normalization of %q not idempotent", in)
	}
}
