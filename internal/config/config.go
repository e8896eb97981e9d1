// Package config provides harness configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cbasic-project/harness-go/internal/compare"
)

// Default directory layout, relative to the harness checkout.
const (
	DefaultReferenceDir = "test_harness/reference/outputs"
	DefaultOutputDir    = "test_harness/outputs"
	DefaultTestsDir     = "test_harness/tests"
)

// Config holds all harness configuration.
type Config struct {
	// ReferenceDir is where imported reference transcripts live, one
	// <test-name>.ref per test.
	ReferenceDir string `yaml:"reference_dir"`
	// OutputDir is where interpreter-under-test output is collected,
	// one <test-name>.out per test.
	OutputDir string `yaml:"output_dir"`
	// TestsDir holds the BASIC test programs (*.bas).
	TestsDir string `yaml:"tests_dir"`

	LogLevel string `yaml:"log_level"`

	// DefaultMode is "lenient" or "strict".
	DefaultMode string `yaml:"default_mode"`

	// Tolerances override the built-in numeric tolerances when set.
	Tolerances ToleranceConfig `yaml:"tolerances"`
}

// ToleranceConfig mirrors compare.Tolerances in the config file. Zero
// values mean "use the default".
type ToleranceConfig struct {
	Relative float64 `yaml:"relative"`
	Absolute float64 `yaml:"absolute"`
	NearZero float64 `yaml:"near_zero"`
}

// Load reads the YAML file named by HARNESS_CONFIG (if set), then
// applies environment-variable overrides, then validates.
func Load() (Config, error) {
	cfg := Config{
		ReferenceDir: DefaultReferenceDir,
		OutputDir:    DefaultOutputDir,
		TestsDir:     DefaultTestsDir,
		LogLevel:     "info",
		DefaultMode:  "lenient",
	}

	if path := os.Getenv("HARNESS_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.ReferenceDir = envOr("HARNESS_REFERENCE_DIR", cfg.ReferenceDir)
	cfg.OutputDir = envOr("HARNESS_OUTPUT_DIR", cfg.OutputDir)
	cfg.TestsDir = envOr("HARNESS_TESTS_DIR", cfg.TestsDir)
	cfg.LogLevel = envOr("HARNESS_LOG_LEVEL", cfg.LogLevel)
	cfg.DefaultMode = envOr("HARNESS_MODE", cfg.DefaultMode)

	if cfg.DefaultMode != "lenient" && cfg.DefaultMode != "strict" {
		return Config{}, fmt.Errorf("config: invalid mode %q (must be lenient or strict)", cfg.DefaultMode)
	}
	if cfg.Tolerances.Relative < 0 || cfg.Tolerances.Absolute < 0 || cfg.Tolerances.NearZero < 0 {
		return Config{}, fmt.Errorf("config: tolerances must not be negative")
	}

	return cfg, nil
}

// CompareMode translates the configured default mode.
func (c Config) CompareMode() compare.Mode {
	if c.DefaultMode == "strict" {
		return compare.ModeStrict
	}
	return compare.ModeLenient
}

// CompareTolerances returns the configured tolerances, filling unset
// fields from the defaults.
func (c Config) CompareTolerances() compare.Tolerances {
	tol := compare.DefaultTolerances()
	if c.Tolerances.Relative > 0 {
		tol.Relative = c.Tolerances.Relative
	}
	if c.Tolerances.Absolute > 0 {
		tol.Absolute = c.Tolerances.Absolute
	}
	if c.Tolerances.NearZero > 0 {
		tol.NearZero = c.Tolerances.NearZero
	}
	return tol
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
