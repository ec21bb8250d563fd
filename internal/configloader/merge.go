package configloader

import "github.com/yaklabco/gomd2html/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Strings: override wins when non-empty
//   - *bool: override wins when non-nil, so a file can set false explicitly
//   - Debug: sticky once true
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Output.Mode != "" {
		result.Output.Mode = override.Output.Mode
	}
	if override.Output.Atomic != nil {
		atomic := *override.Output.Atomic
		result.Output.Atomic = &atomic
	}
	if override.Output.FinalNewline != nil {
		finalNewline := *override.Output.FinalNewline
		result.Output.FinalNewline = &finalNewline
	}
	if override.Debug {
		result.Debug = true
	}

	return result
}
