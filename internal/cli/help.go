package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	// Command usage line
	Command lipgloss.Style

	// Section headers (Usage, Examples, Flags)
	Heading lipgloss.Style

	// Flag names (--flag, -f)
	Flag lipgloss.Style

	// Flag descriptions
	Description lipgloss.Style

	// Examples section
	Example lipgloss.Style

	// Secondary info such as the version and flag types
	Dim lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Flag:        plain,
			Description: plain,
			Example:     plain,
			Dim:         plain,
		}
	}

	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Description: lipgloss.NewStyle(),
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter provides styled help output for Cobra commands.
// The color mode is read when help is rendered, after flags are parsed.
type HelpFormatter struct {
	colorMode *string
}

// NewHelpFormatter creates a help formatter that reads the color mode from colorMode.
func NewHelpFormatter(colorMode *string) *HelpFormatter {
	return &HelpFormatter{colorMode: colorMode}
}

func (h *HelpFormatter) mode() string {
	if h.colorMode == nil {
		return ColorAuto
	}
	return *h.colorMode
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{ styleCommand .UseLine }}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}
`

const helpTemplate = `{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

func templateFuncs(styles *HelpStyles) template.FuncMap {
	return template.FuncMap{
		"styleCommand":            styles.Command.Render,
		"styleHeading":            styles.Heading.Render,
		"styleExample":            styles.Example.Render,
		"styleDim":                styles.Dim.Render,
		"styleFlagsUsage":         func(flags any) string { return styleFlagsUsage(styles, flags) },
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

func (h *HelpFormatter) render(command *cobra.Command, name, text string) error {
	styles := NewHelpStyles(IsColorEnabled(h.mode(), command.OutOrStdout()))

	tmpl, err := template.New(name).Funcs(templateFuncs(styles)).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl.Execute(command.OutOrStdout(), command)
}

// ApplyToCommand installs the styled usage and help functions on cmd.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.render(command, "usage", usageTemplate)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.render(command, "help", helpTemplate); err != nil {
			command.PrintErrln(err)
		}
	})
}

// styleFlagsUsage formats pflag usage lines with styling.
func styleFlagsUsage(styles *HelpStyles, flags any) string {
	flagUsages, ok := flags.(interface{ FlagUsages() string })
	if !ok {
		return ""
	}

	usages := strings.TrimSuffix(flagUsages.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = styleFlagLine(styles, line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles a line of the form "  -f, --flag type   description".
func styleFlagLine(styles *HelpStyles, line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}

	flagPart, descPart, found := splitFlagLine(trimmed)
	if !found {
		return line
	}

	var out strings.Builder
	out.WriteString(line[:len(line)-len(trimmed)])

	for i, token := range strings.Fields(flagPart) {
		if i > 0 {
			out.WriteString(" ")
		}

		if !strings.HasPrefix(token, "-") {
			out.WriteString(styles.Dim.Render(token))
			continue
		}

		clean := strings.TrimSuffix(token, ",")
		out.WriteString(styles.Flag.Render(clean))
		if clean != token {
			out.WriteString(",")
		}
	}

	out.WriteString("   ")
	out.WriteString(styles.Description.Render(descPart))
	return out.String()
}

// splitFlagLine splits at the first run of two or more spaces.
func splitFlagLine(line string) (string, string, bool) {
	const minSpaceGap = 2

	idx := strings.Index(line, strings.Repeat(" ", minSpaceGap))
	if idx < 0 {
		return line, "", false
	}

	desc := strings.TrimLeft(line[idx:], " ")
	if desc == "" {
		return line, "", false
	}
	return line[:idx], desc, true
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
