// Package configloader provides configuration loading and resolution.
// It implements project configuration discovery, explicit config files,
// hierarchical merging and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// Sentinel errors for configuration failures.
var (
	// ErrConfigNotFound is returned when an explicit config path does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigParse is returned when a config file is not valid YAML.
	ErrConfigParse = errors.New("invalid config file")
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreProjectConfig skips project config discovery.
	IgnoreProjectConfig bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.gomd2html.yml upward search)
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{Explicit: opts.ExplicitPath},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	if !opts.IgnoreProjectConfig {
		projectPath, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		result.Paths.Project = projectPath

		if projectPath != "" {
			projectCfg, err := loadConfigFile(projectPath, result)
			if err != nil {
				return nil, fmt.Errorf("load project config: %w", err)
			}
			cfg = merge(cfg, projectCfg)
			result.LoadedFrom = append(result.LoadedFrom, projectPath)
		}
	}

	if opts.ExplicitPath != "" {
		if !fileExists(opts.ExplicitPath) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ExplicitPath)
		}
		explicitCfg, err := loadConfigFile(opts.ExplicitPath, result)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file, validating it on
// its own so errors point at the file that caused them.
func loadConfigFile(path string, result *LoadResult) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	validation := ValidateWithFile(cfg, path)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	unknown, err := UnknownFields(content, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}
	for _, w := range unknown {
		result.Warnings = append(result.Warnings, w.Error())
	}

	return cfg, nil
}
