// Package config loads numwords command configuration from YAML with
// environment variable overrides.
//
// The loading sequence is:
//  1. Load YAML from file (an empty path means defaults only)
//  2. Apply default values
//  3. Apply NUMWORDS_SECTION_FIELD environment overrides
//  4. Validate the result
package config

import "time"

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// ScanConfig configures the corpus scanner.
type ScanConfig struct {
	// Workers is the number of files extracted concurrently.
	Workers int `yaml:"workers"`

	// Extensions lists the file suffixes to scan, e.g. ".txt".
	Extensions []string `yaml:"extensions"`

	// MaxFileBytes skips files larger than this many bytes.
	MaxFileBytes int64 `yaml:"max_file_bytes"`

	// MetricsFile, when set, receives scan metrics in the Prometheus
	// textfile format after every run.
	MetricsFile string `yaml:"metrics_file"`

	// Debounce is the quiet period after the last file event before a
	// watched directory is rescanned.
	Debounce time.Duration `yaml:"debounce"`

	// Schedule is an optional standard cron expression for periodic rescans.
	Schedule string `yaml:"schedule"`

	// Index is an optional SQLite database path where scan results are stored.
	Index string `yaml:"index"`
}

// OutputConfig configures command output.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
}
