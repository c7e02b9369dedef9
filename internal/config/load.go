package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies defaults and environment
// overrides, and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides applies NUMWORDS_SECTION_FIELD variables to cfg.
// Unparseable numeric values are ignored and validation sees the file value.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("NUMWORDS_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("NUMWORDS_LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}
	if val := os.Getenv("NUMWORDS_SCAN_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Scan.Workers = i
		}
	}
	if val := os.Getenv("NUMWORDS_SCAN_EXTENSIONS"); val != "" {
		cfg.Scan.Extensions = splitList(val)
	}
	if val := os.Getenv("NUMWORDS_SCAN_MAX_FILE_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Scan.MaxFileBytes = i
		}
	}
	if val := os.Getenv("NUMWORDS_SCAN_METRICS_FILE"); val != "" {
		cfg.Scan.MetricsFile = val
	}
	if val := os.Getenv("NUMWORDS_SCAN_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Scan.Debounce = d
		}
	}
	if val := os.Getenv("NUMWORDS_SCAN_SCHEDULE"); val != "" {
		cfg.Scan.Schedule = val
	}
	if val := os.Getenv("NUMWORDS_SCAN_INDEX"); val != "" {
		cfg.Scan.Index = val
	}
	if val := os.Getenv("NUMWORDS_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
