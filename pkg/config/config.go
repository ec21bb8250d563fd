// Package config defines core configuration types for gomd2html.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Log levels accepted in LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultOutputMode is the permission mode written to output files.
const DefaultOutputMode = "0644"

// ErrInvalidMode is returned when an output mode is not an octal permission.
var ErrInvalidMode = errors.New("invalid file mode")

// OutputConfig controls how the HTML output file is written.
type OutputConfig struct {
	// Mode is the octal permission string for the output file, e.g. "0644".
	Mode string `yaml:"mode"`

	// Atomic writes through a temp file and rename when true.
	Atomic *bool `yaml:"atomic"`

	// FinalNewline appends a newline after the joined fragments when true.
	FinalNewline *bool `yaml:"final_newline"`
}

// Config is the root configuration structure for gomd2html.
type Config struct {
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`

	// Output configures the written HTML file.
	Output OutputConfig `yaml:"output"`

	// CLI-level options (not persisted to config files).

	// Debug forces debug logging.
	Debug bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	atomic := true
	finalNewline := false

	return &Config{
		LogLevel: LogLevelInfo,
		Output: OutputConfig{
			Mode:         DefaultOutputMode,
			Atomic:       &atomic,
			FinalNewline: &finalNewline,
		},
	}
}

// EffectiveLogLevel returns the log level to apply, honoring Debug.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return LogLevelDebug
	}
	if c.LogLevel == "" {
		return LogLevelInfo
	}
	return strings.ToLower(c.LogLevel)
}

// AtomicWrites reports whether output should be written atomically.
// Unset means true.
func (o OutputConfig) AtomicWrites() bool {
	return o.Atomic == nil || *o.Atomic
}

// WantsFinalNewline reports whether a trailing newline should be appended.
func (o OutputConfig) WantsFinalNewline() bool {
	return o.FinalNewline != nil && *o.FinalNewline
}

// FileMode parses Mode as an octal permission. Empty means DefaultOutputMode.
func (o OutputConfig) FileMode() (os.FileMode, error) {
	mode := o.Mode
	if mode == "" {
		mode = DefaultOutputMode
	}

	parsed, err := strconv.ParseUint(strings.TrimPrefix(mode, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidMode, o.Mode, err)
	}
	if parsed == 0 || parsed > 0o777 {
		return 0, fmt.Errorf("%w %q: must be between 0001 and 0777", ErrInvalidMode, o.Mode)
	}

	return os.FileMode(parsed), nil
}

// IsValidLogLevel reports whether level names a supported log level.
func IsValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, "warning", LogLevelError:
		return true
	default:
		return false
	}
}
