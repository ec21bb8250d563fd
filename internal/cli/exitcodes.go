package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// Exit codes for gomd2html.
const (
	// ExitSuccess indicates the output file was produced.
	ExitSuccess = 0

	// ExitMissingInput indicates the input file does not exist or is not a regular file.
	ExitMissingInput = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrMissingInput is returned when the input path is not an existing regular file.
	// The diagnostic has already been written to stderr.
	ErrMissingInput = errors.New("missing input file")

	// ErrUsage marks argument and flag errors.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration loading and validation failures.
	ErrConfig = errors.New("configuration error")

	// ErrIO marks failures reading the input or writing the output.
	ErrIO = errors.New("i/o error")
)

func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// ExitCodeFor maps an error returned by the root command to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrMissingInput):
		return ExitMissingInput
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.Is(err, config.ErrInvalidMode):
		return ExitConfigError
	case errors.Is(err, context.Canceled):
		return ExitInternalError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
