package config

import "time"

// Default values for configuration fields.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultScanWorkers  = 4
	DefaultMaxFileBytes = int64(64 << 20) // 64 MB
	DefaultDebounce     = 250 * time.Millisecond
	DefaultOutputFormat = "text"
)

// DefaultExtensions are the file suffixes scanned when none are configured.
var DefaultExtensions = []string{".txt", ".md"}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields of cfg with defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = DefaultScanWorkers
	}
	if len(cfg.Scan.Extensions) == 0 {
		cfg.Scan.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.Scan.MaxFileBytes == 0 {
		cfg.Scan.MaxFileBytes = DefaultMaxFileBytes
	}
	if cfg.Scan.Debounce == 0 {
		cfg.Scan.Debounce = DefaultDebounce
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
}
