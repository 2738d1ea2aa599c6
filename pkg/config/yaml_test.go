package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, config.DefaultWidth, cfg.Width)
	assert.Equal(t, config.BackendTerminal, cfg.Backend)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, config.DefaultInfoBoxPadding, cfg.InfoBox.Padding)
	assert.Equal(t, config.DefaultInfoBoxBackground, cfg.InfoBox.Background)
	assert.Equal(t, config.FormatText, cfg.Format)
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Width = 120
	original.Backend = config.BackendMonospace
	original.InfoBox.Padding = 4
	original.Format = config.FormatJSON

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "width: 120")
	assert.Contains(t, string(data), "backend: monospace")
	assert.NotContains(t, string(data), "format")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 120, parsed.Width)
	assert.Equal(t, config.BackendMonospace, parsed.Backend)
	assert.Equal(t, 4, parsed.InfoBox.Padding)
	assert.Empty(t, parsed.Format, "CLI-only fields are not persisted")
}

func TestConfigToYAML_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestConfigToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.Regexp(t, `^# header\n\nwidth: 80\n`, string(data))
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("width: [not, a, number"))
	require.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	original := config.NewConfig()
	clone := original.Clone()
	require.NotNil(t, clone)
	assert.NotSame(t, original, clone)

	clone.InfoBox.Padding = 1
	assert.Equal(t, config.DefaultInfoBoxPadding, original.InfoBox.Padding)
}

func TestEnumsValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, config.BackendMonospace.IsValid())
	assert.False(t, config.Backend("gtk").IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
	assert.True(t, config.FormatYAML.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("yaml template parses to defaults", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "yaml"})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# textengine configuration")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)

		want := config.NewConfig()
		want.Format = ""
		assert.Equal(t, want, parsed)
	})

	t.Run("json template", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.InDelta(t, float64(config.DefaultWidth), parsed["width"], 0)
		assert.Equal(t, "terminal", parsed["backend"])
	})
}
