package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/configloader"
	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/converter"
	"github.com/yaklabco/gomd2html/pkg/fsutil"
)

func runConvert(cmd *cobra.Command, input, output string, flags *rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger := logging.Default()
	logging.SetLevel(cfg.EffectiveLogLevel())
	logger.Debug("resolved log level", logging.FieldLevel, cfg.EffectiveLogLevel())
	ctx = logging.WithLogger(ctx, logger)

	result, err := converter.New(cfg).Convert(ctx, input, output)
	if err != nil {
		if fsutil.IsMissing(err) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Missing %s\n", input)
			return fmt.Errorf("%w: %w", ErrMissingInput, err)
		}
		if errors.Is(err, config.ErrInvalidMode) || errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	logger.Debug("converted",
		logging.FieldInput, result.Input,
		logging.FieldOutput, result.Output,
		logging.FieldHeadings, result.Stats.Headings,
		logging.FieldParagraphs, result.Stats.Paragraphs,
		logging.FieldLists, result.Stats.Lists,
		logging.FieldListItems, result.Stats.ListItems,
		logging.FieldHashMarkers, result.Stats.HashMarkers,
		logging.FieldStripMarkers, result.Stats.StripMarkers,
		logging.FieldWritten, result.Written,
	)

	return nil
}

func loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    &config.Config{Debug: flags.debug},
	})
	if err != nil {
		return nil, err
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn("unknown configuration key", logging.FieldConfig, warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}
