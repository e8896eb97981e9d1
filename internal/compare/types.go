// Package compare implements tolerance-based comparison of BASIC
// interpreter output against a reference transcript. Comparison is a
// pure transform over two line streams: mismatches are collected as
// data, never raised as errors.
package compare

import "fmt"

// Mode selects how far line comparison is willing to bend.
type Mode int

const (
	// ModeStrict compares whitespace-normalized lines token by token.
	ModeStrict Mode = iota
	// ModeLenient tries the strict path first and falls back to a
	// content-based comparison that ignores spacing around tokens.
	ModeLenient
)

// Verdict is the outcome of comparing one token or line pair.
type Verdict struct {
	Equal  bool
	Reason string
}

// Difference records one mismatch between the two streams. Line numbers
// are 1-based. Actual holds the interpreter-under-test line, Reference
// the trusted transcript line; a missing side is left empty and named
// in the reason.
type Difference struct {
	Line      int    `json:"line"`
	Reason    string `json:"reason"`
	Actual    string `json:"cbasic,omitempty"`
	Reference string `json:"reference,omitempty"`

	// Missing names the side with no line at this index, "cbasic" or
	// "reference". Empty for content mismatches.
	Missing string `json:"missing,omitempty"`
}

// Format renders the difference for the report, original lines verbatim.
func (d Difference) Format() string {
	actual := d.Actual
	if d.Missing == SideActual {
		actual = "<missing>"
	}
	ref := d.Reference
	if d.Missing == SideReference {
		ref = "<missing>"
	}
	return fmt.Sprintf("Line %d: %s\n  cbasic: %s\n  ref:    %s", d.Line, d.Reason, actual, ref)
}

// Sides a line can be missing from.
const (
	SideActual    = "cbasic"
	SideReference = "reference"
)

// Result is the top-level output of a stream comparison.
type Result struct {
	Differences []Difference `json:"differences,omitempty"`
	Match       bool         `json:"match"`
	Summary     string       `json:"summary"`
}

// Options control a stream comparison.
type Options struct {
	Mode       Mode
	Tolerances Tolerances

	// Filters drop interpreter-side lines (banner, prompt echo) before
	// trimming. The reference side is consumed as-is: the import step
	// already normalized it.
	Filters []LineFilter
}

// DefaultOptions returns the standard comparison configuration: lenient
// mode, default tolerances, interpreter banner skipping.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeLenient,
		Tolerances: DefaultTolerances(),
		Filters:    []LineFilter{BannerFilter},
	}
}
