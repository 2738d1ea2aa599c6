package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/textengine/pkg/config"
	"github.com/yaklabco/textengine/pkg/layout"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "info_box.padding").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// minUsefulWidth is the narrowest width that still leaves room for text
// inside a default info box.
const minUsefulWidth = 2*config.DefaultInfoBoxPadding + 1

// Validate checks a configuration for errors and warnings.
// Zero values are treated as unset and not reported.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	addError := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if cfg.Width < 0 {
		addError("width", cfg.Width, "width must be >= 0")
	} else if cfg.Width > 0 && cfg.Width < minUsefulWidth {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "width",
			Value:   cfg.Width,
			Message: fmt.Sprintf("width %d leaves no room for text inside info boxes", cfg.Width),
		})
	}

	if cfg.Backend != "" && !cfg.Backend.IsValid() {
		addError("backend", cfg.Backend, "invalid backend %q; must be one of: terminal, monospace", cfg.Backend)
	}
	if cfg.CharWidth < 0 {
		addError("char_width", cfg.CharWidth, "char_width must be >= 0")
	}
	if cfg.LineHeight < 0 {
		addError("line_height", cfg.LineHeight, "line_height must be >= 0")
	}
	if cfg.Color != "" && !cfg.Color.IsValid() {
		addError("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}
	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		addError("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.InfoBox.Padding < 0 {
		addError("info_box.padding", cfg.InfoBox.Padding, "info_box.padding must be >= 0")
	}
	if cfg.InfoBox.Background != "" {
		if _, err := layout.ParseColour(cfg.InfoBox.Background); err != nil {
			addError("info_box.background", cfg.InfoBox.Background, "%v", err)
		}
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		addError("format", cfg.Format, "invalid format %q; must be one of: text, json, yaml", cfg.Format)
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
