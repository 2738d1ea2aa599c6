package configloader

import "github.com/yaklabco/textengine/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Zero values in override leave base untouched, so a file that omits a key
// keeps the lower layer's value.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Backend != "" {
		result.Backend = override.Backend
	}
	if override.CharWidth != 0 {
		result.CharWidth = override.CharWidth
	}
	if override.LineHeight != 0 {
		result.LineHeight = override.LineHeight
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.InfoBox.Padding != 0 {
		result.InfoBox.Padding = override.InfoBox.Padding
	}
	if override.InfoBox.Background != "" {
		result.InfoBox.Background = override.InfoBox.Background
	}

	// CLI-only fields.
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Debug {
		result.Debug = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
