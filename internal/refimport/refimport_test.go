package refimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("strips CR and trailing spaces", func(t *testing.T) {
		t.Parallel()
		got := Normalize("HELLO\r\nWORLD  \r\n", nil)
		assert.Equal(t, "HELLO\nWORLD", got)
	})

	t.Run("drops prompt and RUN echo", func(t *testing.T) {
		t.Parallel()
		in := "]RUN\nHELLO\n]\n]_\nDONE\n"
		got := Normalize(in, AppleSoftFilters())
		assert.Equal(t, "HELLO\nDONE", got)
	})

	t.Run("trims trailing blank lines only", func(t *testing.T) {
		t.Parallel()
		got := Normalize("A\n\nB\n\n\n", nil)
		assert.Equal(t, "A\n\nB", got)
	})

	t.Run("bare CR endings", func(t *testing.T) {
		t.Parallel()
		got := Normalize("A\rB\rC\r", nil)
		// Apple II captures may use bare CR with no LF at all; the
		// whole capture collapses to one line once CRs are removed.
		assert.Equal(t, "ABC", got)
	})
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	capture := filepath.Join(dir, "capture.txt")
	require.NoError(t, os.WriteFile(capture, []byte("]RUN\r\nRESULT: 5\r\n\r\n"), 0o644))

	refDir := filepath.Join(dir, "refs")
	im := &Importer{ReferenceDir: refDir, Filters: AppleSoftFilters()}

	path, err := im.Import("t001_arithmetic", capture)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(refDir, "t001_arithmetic.ref"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RESULT: 5", string(data))
}

func TestImporter_RefusesOverwrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	capture := filepath.Join(dir, "capture.txt")
	require.NoError(t, os.WriteFile(capture, []byte("NEW\n"), 0o644))

	im := &Importer{ReferenceDir: dir}
	existing := filepath.Join(dir, "t002.ref")
	require.NoError(t, os.WriteFile(existing, []byte("OLD"), 0o644))

	_, err := im.Import("t002", capture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	im.Force = true
	_, err = im.Import("t002", capture)
	require.NoError(t, err)
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "NEW", string(data))
}

func TestImporter_MissingCapture(t *testing.T) {
	t.Parallel()
	im := &Importer{ReferenceDir: t.TempDir()}
	_, err := im.Import("t003", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read capture")
}
