// Package config defines core configuration types for textengine.
// These types are pure data structures with no dependency on the loader.
package config

// Backend names a measurement backend.
type Backend string

const (
	BackendTerminal  Backend = "terminal"
	BackendMonospace Backend = "monospace"
)

// IsValid reports whether b names a known backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendTerminal, BackendMonospace:
		return true
	default:
		return false
	}
}

// ColorMode controls coloured terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known colour mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// OutputFormat specifies how dump output is written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// IsValid reports whether f is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Defaults.
const (
	DefaultWidth             = 80
	DefaultCharWidth         = 1
	DefaultLineHeight        = 1
	DefaultInfoBoxPadding    = 10
	DefaultInfoBoxBackground = "#deebff"
	DefaultLogLevel          = "info"
)

// InfoBoxConfig styles info boxes.
type InfoBoxConfig struct {
	Padding    int    `mapstructure:"padding" yaml:"padding"`
	Background string `mapstructure:"background" yaml:"background"`
}

// Config is the root configuration structure for textengine.
type Config struct {
	// Width is the layout width in backend units.
	Width int `mapstructure:"width" yaml:"width"`

	// Backend selects the measurement backend ("terminal" or "monospace").
	Backend Backend `mapstructure:"backend" yaml:"backend"`

	// CharWidth and LineHeight scale the monospace backend.
	CharWidth  int `mapstructure:"char_width" yaml:"char_width"`
	LineHeight int `mapstructure:"line_height" yaml:"line_height"`

	// Color controls coloured output ("auto", "always" or "never").
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// LogLevel is the default log level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// InfoBox styles info boxes.
	InfoBox InfoBoxConfig `mapstructure:"info_box" yaml:"info_box"`

	// CLI-level options (not persisted to config files).

	// Format specifies the dump output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Backend:    BackendTerminal,
		CharWidth:  DefaultCharWidth,
		LineHeight: DefaultLineHeight,
		Color:      ColorAuto,
		LogLevel:   DefaultLogLevel,
		InfoBox: InfoBoxConfig{
			Padding:    DefaultInfoBoxPadding,
			Background: DefaultInfoBoxBackground,
		},
		Format: FormatText,
	}
}
