// Package testutil provides shared fixtures for harness tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTranscript writes lines to a file under dir with LF endings and
// returns its path.
func WriteTranscript(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// SuiteDirs creates an outputs dir and a reference dir under a fresh
// temp root, ready to be populated with <name>.out / <name>.ref pairs.
func SuiteDirs(t *testing.T) (outputDir, refDir string) {
	t.Helper()
	root := t.TempDir()
	outputDir = filepath.Join(root, "outputs")
	refDir = filepath.Join(root, "refs")
	require.NoError(t, os.MkdirAll(outputDir, 0o755))
	require.NoError(t, os.MkdirAll(refDir, 0o755))
	return outputDir, refDir
}
