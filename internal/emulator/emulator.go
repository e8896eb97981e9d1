// Package emulator contains best-effort helpers for producing reference
// output from an Apple II emulator. Automated capture needs a disk image
// round-trip that is not implemented; what exists is input preparation
// and an emulator probe, so the workflow can at least tell the operator
// which references still need manual capture.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ErrManualCapture signals that automated capture is unavailable and the
// reference must be produced by hand.
var ErrManualCapture = errors.New("emulator: automated capture not implemented, generate reference manually")

// ToAppleSoft converts a BASIC program to Apple II form: uppercase, CR
// line endings, non-ASCII bytes replaced with '?'.
func ToAppleSoft(program string) []byte {
	s := strings.ToUpper(program)
	s = strings.ReplaceAll(s, "\n", "\r")
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 127 {
			out = append(out, '?')
			continue
		}
		out = append(out, byte(r))
	}
	return out
}

// AutomationScript returns the keystroke script that types the program
// into the emulator and runs it.
func AutomationScript(program string) []byte {
	return append(ToAppleSoft(program), []byte("\rRUN\r")...)
}

// Linapple drives (or rather, would drive) the linapple emulator.
type Linapple struct {
	// Path is the binary name or path; empty means "linapple" on PATH.
	Path string
}

func (l *Linapple) binary() string {
	if l.Path != "" {
		return l.Path
	}
	return "linapple"
}

// Available reports whether the emulator binary can be found.
func (l *Linapple) Available() bool {
	_, err := exec.LookPath(l.binary())
	return err == nil
}

// GenerateRef would run basFile in the emulator and capture its output
// into refFile. The capture side is a stub: the call prepares nothing
// beyond the availability check and returns ErrManualCapture.
func (l *Linapple) GenerateRef(basFile, refFile string) error {
	if !l.Available() {
		return fmt.Errorf("emulator: %s not found in PATH", l.binary())
	}
	return ErrManualCapture
}

// Launch starts the emulator on the given disk image and waits for it to
// exit. Fire and forget: no output capture, no retry.
func (l *Linapple) Launch(ctx context.Context, diskImage string) error {
	cmd := exec.CommandContext(ctx, l.binary(), "-d1", diskImage)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("emulator: run %s: %w", l.binary(), err)
	}
	return nil
}

// MissingRefs lists the test programs in testsDir (*.bas) that have no
// corresponding <name>.ref in refDir, sorted by name.
func MissingRefs(testsDir, refDir string) ([]string, error) {
	entries, err := os.ReadDir(testsDir)
	if err != nil {
		return nil, fmt.Errorf("emulator: read tests dir: %w", err)
	}

	var missing []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".bas") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ".bas")
		if _, err := os.Stat(filepath.Join(refDir, stem+".ref")); err != nil {
			missing = append(missing, e.Name())
		}
	}
	sort.Strings(missing)
	return missing, nil
}
