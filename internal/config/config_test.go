package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbasic-project/harness-go/internal/compare"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultReferenceDir, cfg.ReferenceDir)
	assert.Equal(t, "lenient", cfg.DefaultMode)
	assert.Equal(t, compare.ModeLenient, cfg.CompareMode())
	assert.Equal(t, compare.DefaultTolerances(), cfg.CompareTolerances())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HARNESS_REFERENCE_DIR", "/tmp/refs")
	t.Setenv("HARNESS_MODE", "strict")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/refs", cfg.ReferenceDir)
	assert.Equal(t, compare.ModeStrict, cfg.CompareMode())
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "harness.yaml")
	data := []byte("reference_dir: /refs\ndefault_mode: strict\ntolerances:\n  relative: 0.001\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("HARNESS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/refs", cfg.ReferenceDir)
	assert.Equal(t, "strict", cfg.DefaultMode)

	tol := cfg.CompareTolerances()
	assert.Equal(t, 0.001, tol.Relative)
	// Unset fields keep their defaults.
	assert.Equal(t, compare.DefaultTolerances().Absolute, tol.Absolute)
}

func TestLoad_EnvBeatsYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "harness.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reference_dir: /refs\n"), 0o644))
	t.Setenv("HARNESS_CONFIG", path)
	t.Setenv("HARNESS_REFERENCE_DIR", "/env-refs")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/env-refs", cfg.ReferenceDir)
}

func TestLoad_InvalidMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("HARNESS_MODE", "fuzzy")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HARNESS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HARNESS_CONFIG", "HARNESS_REFERENCE_DIR", "HARNESS_OUTPUT_DIR",
		"HARNESS_TESTS_DIR", "HARNESS_LOG_LEVEL", "HARNESS_MODE",
	} {
		// t.Setenv restores the original value on cleanup; unsetting
		// afterwards leaves the key absent for the test body.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
