package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/az-ai-labs/numwords/internal/logging"
)

// FieldError is a validation error for a single configuration field.
type FieldError struct {
	// Field is the dotted path, e.g. "scan.workers".
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found by Validate.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "configuration validation failed: " + e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:", len(e.Errors))
	for _, fe := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(fe.Error())
	}
	return sb.String()
}

// Validate checks cfg and returns a ValidationError listing every problem,
// or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, FieldError{"log.level", err.Error()})
	}
	if _, err := logging.ParseFormat(cfg.Log.Format); err != nil {
		errs = append(errs, FieldError{"log.format", err.Error()})
	}
	if cfg.Scan.Workers < 1 {
		errs = append(errs, FieldError{"scan.workers", "must be at least 1"})
	}
	for _, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{"scan.extensions", fmt.Sprintf("%q must start with a dot", ext)})
		}
	}
	if cfg.Scan.MaxFileBytes < 1 {
		errs = append(errs, FieldError{"scan.max_file_bytes", "must be positive"})
	}
	if cfg.Scan.Debounce < 0 {
		errs = append(errs, FieldError{"scan.debounce", "must not be negative"})
	}
	if cfg.Scan.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Scan.Schedule); err != nil {
			errs = append(errs, FieldError{"scan.schedule", err.Error()})
		}
	}
	switch cfg.Output.Format {
	case "text", "json":
	default:
		errs = append(errs, FieldError{"output.format", fmt.Sprintf("unknown format %q", cfg.Output.Format)})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
