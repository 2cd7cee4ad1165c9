package config

import (
	"fmt"
	"strings"
)

// FieldError is a validation error for one configuration field.
type FieldError struct {
	Field   string // dotted path to the field, e.g. "log.level"
	Message string // human-readable error message
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates all field errors found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:", len(e.Errors))
	for _, fe := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(fe.Error())
	}
	return sb.String()
}

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks a configuration for invalid values. It accumulates all
// field errors rather than stopping at the first.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.CodecDir == "" {
		errs = append(errs, FieldError{Field: "codec_dir", Message: "must not be empty"})
	}
	if cfg.TemplateDir == "" {
		errs = append(errs, FieldError{Field: "template_dir", Message: "must not be empty"})
	}
	if cfg.OutputDir == "" {
		errs = append(errs, FieldError{Field: "output_dir", Message: "must not be empty"})
	}
	if cfg.Jobs < 1 || cfg.Jobs > 256 {
		errs = append(errs, FieldError{
			Field:   "jobs",
			Message: fmt.Sprintf("must be between 1 and 256, got %d", cfg.Jobs),
		})
	}
	if !validLogLevels[cfg.Log.Level] {
		errs = append(errs, FieldError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.Log.Level),
		})
	}
	if !validLogFormats[cfg.Log.Format] {
		errs = append(errs, FieldError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be text or json; got %q", cfg.Log.Format),
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
