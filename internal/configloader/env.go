package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/textengine/pkg/config"
)

// envVarPrefix is the prefix for all textengine environment variables.
const envVarPrefix = "TEXTENGINE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"WIDTH":               {"width", envTypeInt, "Layout width in backend units"},
	"BACKEND":             {"backend", envTypeString, "Measurement backend: terminal or monospace"},
	"CHAR_WIDTH":          {"char_width", envTypeInt, "Monospace backend character width"},
	"LINE_HEIGHT":         {"line_height", envTypeInt, "Monospace backend line height"},
	"COLOR":               {"color", envTypeString, "Coloured output: auto, always, or never"},
	"LOG_LEVEL":           {"log_level", envTypeString, "Log level: debug, info, warn, or error"},
	"INFO_BOX_PADDING":    {"info_box.padding", envTypeInt, "Info box padding"},
	"INFO_BOX_BACKGROUND": {"info_box.background", envTypeString, "Info box background as #rrggbb"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TEXTENGINE_ (e.g., TEXTENGINE_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "backend":
		cfg.Backend = config.Backend(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "log_level":
		cfg.LogLevel = value
	case "info_box.background":
		cfg.InfoBox.Background = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "width":
		cfg.Width = value
	case "char_width":
		cfg.CharWidth = value
	case "line_height":
		cfg.LineHeight = value
	case "info_box.padding":
		cfg.InfoBox.Padding = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
