// Package cli provides the Cobra command structure for gomd2html.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String formats the build info for --version.
func (b BuildInfo) String() string {
	return b.Version + " (commit " + b.Commit + ", built " + b.Date + ")"
}

// NewRootCommand creates the gomd2html command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomd2html <input_file> <output_file>",
		Short: "Convert a restricted Markdown dialect to HTML",
		Long: `gomd2html converts a Markdown file into HTML fragments, line by line.

Supported syntax:
  # Heading               <h1> through <hN>, one per leading '#'
  - item                  unordered list items, grouped into one <ul>
  1. item                 ordered list items, grouped into one <ol>
  text                    everything else becomes a <p> paragraph

Inline markers:
  [[text]]                replaced by the lowercase MD5 hex digest of text
  ((text))                replaced by text with every 'c' and 'C' removed

The output contains one fragment per line and no <html> or <body> wrapper.`,
		Example: `  gomd2html README.md README.html
  gomd2html --config docs/gomd2html.yml notes.md notes.html`,
		Version: info.String(),
		Args:    usageArgs(cobra.ExactArgs(2)),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1], flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", ColorAuto,
		"colorize help: "+ColorAuto+", "+ColorAlways+", "+ColorNever)

	helpFormatter := NewHelpFormatter(&flags.color)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

type rootFlags struct {
	debug      bool
	configPath string
	color      string
}
