package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a commented configuration file template
// holding the default values.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == string(FormatJSON) {
		return templateToJSON()
	}

	return []byte(fmt.Sprintf(`%s

# Layout width in backend units (terminal cells for the terminal backend)
width: %d

# Measurement backend: terminal or monospace
backend: %s

# Monospace backend cell size
char_width: %d
line_height: %d

# Coloured output: auto, always, or never
color: %s

# Log level: debug, info, warn, or error
log_level: %s

# Info box styling
info_box:
  padding: %d
  background: "%s"
`,
		DefaultTemplateHeader(),
		DefaultWidth,
		BackendTerminal,
		DefaultCharWidth,
		DefaultLineHeight,
		ColorAuto,
		DefaultLogLevel,
		DefaultInfoBoxPadding,
		DefaultInfoBoxBackground,
	)), nil
}

// templateToJSON renders the default configuration as indented JSON.
func templateToJSON() ([]byte, error) {
	cfg := NewConfig()
	doc := map[string]any{
		"width":       cfg.Width,
		"backend":     cfg.Backend,
		"char_width":  cfg.CharWidth,
		"line_height": cfg.LineHeight,
		"color":       cfg.Color,
		"log_level":   cfg.LogLevel,
		"info_box": map[string]any{
			"padding":    cfg.InfoBox.Padding,
			"background": cfg.InfoBox.Background,
		},
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# textengine configuration
# See: https://github.com/yaklabco/textengine`
}
