package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomd2html/internal/cli"
	"github.com/yaklabco/gomd2html/internal/configloader"
	"github.com/yaklabco/gomd2html/pkg/config"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "gomd2html", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Contains(t, cmd.Version, "1.2.3")
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q", name)
	}

	assert.Equal(t, cli.ColorAuto, cmd.PersistentFlags().Lookup("color").DefValue)
}

func TestArgsValidation(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	require.NoError(t, cmd.Args(cmd, []string{"in.md", "out.html"}))

	for _, args := range [][]string{nil, {"in.md"}, {"a", "b", "c"}} {
		err := cmd.Args(cmd, args)
		require.Error(t, err, "args %v", args)
		assert.ErrorIs(t, err, cli.ErrUsage)
	}
}

func TestVersionFlag(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gomd2html version 1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestHelp(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help", "--color", "never"})

	require.NoError(t, cmd.Execute())

	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "gomd2html <input_file> <output_file>")
	assert.Contains(t, help, "--config")
	assert.Contains(t, help, "[[text]]")
	assert.NotContains(t, help, "\x1b[", "color disabled")
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, cli.IsColorEnabled(cli.ColorAlways, &buf))
	assert.False(t, cli.IsColorEnabled(cli.ColorNever, &buf))
	assert.False(t, cli.IsColorEnabled(cli.ColorAuto, &buf), "buffers are not terminals")
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"missing input", fmt.Errorf("%w: gone", cli.ErrMissingInput), cli.ExitMissingInput},
		{"usage", fmt.Errorf("%w: accepts 2 arg(s)", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: %w", cli.ErrConfig, configloader.ErrConfigParse), cli.ExitConfigError},
		{"invalid mode", fmt.Errorf("mode: %w", config.ErrInvalidMode), cli.ExitConfigError},
		{"io", fmt.Errorf("%w: write out.html: denied", cli.ErrIO), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFor(tt.err))
		})
	}
}
