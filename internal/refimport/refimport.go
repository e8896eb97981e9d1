// Package refimport turns captured BASIC transcripts into normalized
// reference files the comparator consumes directly. A capture from a
// real Apple II or an emulator carries CR line endings, prompt echoes
// and the RUN command echo; none of that is program output.
package refimport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbasic-project/harness-go/internal/compare"
)

// AppleSoftFilters drops the capture noise AppleSoft produces: prompt
// echo lines and the echoed RUN command. Alternate reference sources
// supply their own filters.
func AppleSoftFilters() []compare.LineFilter {
	return []compare.LineFilter{
		func(line string) bool { return line == "]" || line == "]_" },
		func(line string) bool { return line == "RUN" || line == "]RUN" },
	}
}

// Normalize converts a raw captured transcript into reference form:
// control-character removal, trailing-space stripping, filter
// application, and trailing blank-line trimming. The result has LF line
// endings and no trailing newline.
func Normalize(content string, filters []compare.LineFilter) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.ReplaceAll(line, "\r", "")
		line = strings.TrimRight(line, " \t")
		lines = append(lines, line)
	}
	lines = compare.FilterLines(lines, filters)
	lines = compare.TrimTrailingBlank(lines)
	return strings.Join(lines, "\n")
}

// Importer writes normalized reference transcripts into ReferenceDir,
// keyed by test name.
type Importer struct {
	ReferenceDir string
	Filters      []compare.LineFilter
	// Force allows overwriting an existing reference.
	Force bool
}

// Import normalizes the captured transcript at inputPath and stores it
// as <ReferenceDir>/<testName>.ref, returning the written path.
func (im *Importer) Import(testName, inputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("refimport: read capture: %w", err)
	}

	outPath := filepath.Join(im.ReferenceDir, testName+".ref")
	if !im.Force {
		if _, err := os.Stat(outPath); err == nil {
			return "", fmt.Errorf("refimport: reference already exists: %s (use --force to overwrite)", outPath)
		}
	}

	if err := os.MkdirAll(im.ReferenceDir, 0o755); err != nil {
		return "", fmt.Errorf("refimport: create reference dir: %w", err)
	}

	normalized := Normalize(string(data), im.Filters)
	if err := os.WriteFile(outPath, []byte(normalized), 0o644); err != nil {
		return "", fmt.Errorf("refimport: write reference: %w", err)
	}
	return outPath, nil
}
