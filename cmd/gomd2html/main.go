// Package main is the entry point for the gomd2html CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gomd2html/internal/cli"
	"github.com/yaklabco/gomd2html/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// The missing-input diagnostic has already been printed.
		if !errors.Is(err, cli.ErrMissingInput) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFor(err)
	}

	return cli.ExitSuccess
}
