package configloader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "output.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
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

	// Warnings are non-fatal issues (e.g., unknown fields).
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

// Validate checks a configuration for errors.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LogLevel != "" && !config.IsValidLogLevel(cfg.LogLevel) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if _, err := cfg.Output.FileMode(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.mode",
			Value:   cfg.Output.Mode,
			Message: err.Error(),
		})
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

// knownFields lists the accepted keys per mapping path ("" is the document root).
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFields = map[string]map[string]bool{
	"":       {"log_level": true, "output": true},
	"output": {"mode": true, "atomic": true, "final_newline": true},
}

// UnknownFields reports keys in a YAML config document that gomd2html does
// not recognize. Each warning carries the key's line number.
func UnknownFields(content []byte, filePath string) ([]ValidationError, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	var warnings []ValidationError
	collectUnknown(doc.Content[0], "", filePath, &warnings)
	return warnings, nil
}

func collectUnknown(node *yaml.Node, path, filePath string, warnings *[]ValidationError) {
	known, ok := knownFields[path]
	if !ok || node.Kind != yaml.MappingNode {
		return
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		field := key.Value
		if path != "" {
			field = path + "." + key.Value
		}

		if !known[key.Value] {
			*warnings = append(*warnings, ValidationError{
				Field:    field,
				Value:    key.Value,
				Message:  "unknown field; it will be ignored",
				FilePath: filePath,
				Line:     key.Line,
			})
			continue
		}

		collectUnknown(node.Content[i+1], field, filePath, warnings)
	}
}
