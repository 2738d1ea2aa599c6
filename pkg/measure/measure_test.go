package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
	"github.com/yaklabco/textengine/pkg/model"
)

func TestWrapColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		columns int
		want    []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "hello", 10, []string{"hello"}},
		{"word break", "hello world", 5, []string{"hello", "world"}},
		{"several words", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word split", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"hard break", "a\nb", 10, []string{"a", "b"}},
		{"zero columns treated as one", "ab", 0, []string{"a", "b"}},
		{"wide runes", "猫猫猫", 4, []string{"猫猫", "猫"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, measure.WrapColumns(tc.text, tc.columns))
		})
	}
}

func TestMonospace_MeasureHeight(t *testing.T) {
	t.Parallel()

	backend := measure.NewMonospace(8, 16)

	height, err := backend.MeasureHeight("hello world", 40)
	require.NoError(t, err)
	assert.Equal(t, 32, height, "5 columns wraps into two lines of 16")

	height, err = backend.MeasureHeight("hello world", 800)
	require.NoError(t, err)
	assert.Equal(t, 16, height)
}

func TestNewMonospace_Defaults(t *testing.T) {
	t.Parallel()

	backend := measure.NewMonospace(0, -3)
	assert.Equal(t, 1, backend.CharWidth)
	assert.Equal(t, 1, backend.LineHeight)
}

func TestTerminal_Wrap(t *testing.T) {
	t.Parallel()

	rows := measure.Terminal{}.Wrap("hello world", 5)
	assert.Equal(t, []string{"hello", "world"}, rows)

	height, err := measure.Terminal{}.MeasureHeight("hello world", 80)
	require.NoError(t, err)
	assert.Equal(t, 1, height)
}

func TestFixed(t *testing.T) {
	t.Parallel()

	height, err := measure.Fixed{Height: 20}.MeasureHeight("anything", 3)
	require.NoError(t, err)
	assert.Equal(t, 20, height)
}

func TestNew(t *testing.T) {
	t.Parallel()

	backend, err := measure.New(measure.NameTerminal, 0, 0)
	require.NoError(t, err)
	assert.IsType(t, measure.Terminal{}, backend)

	backend, err = measure.New(measure.NameMonospace, 7, 14)
	require.NoError(t, err)
	assert.Equal(t, &measure.Monospace{CharWidth: 7, LineHeight: 14}, backend)

	_, err = measure.New("pango", 0, 0)
	require.Error(t, err)

	assert.Equal(t, []string{"terminal", "monospace"}, measure.Names())
}

func TestMonospace_DrivesLayout(t *testing.T) {
	t.Parallel()

	doc := model.NewDocument()
	paragraph, err := doc.NewParagraph("the quick ", "brown fox")
	require.NoError(t, err)
	require.NoError(t, doc.Root().AppendBlock(paragraph))

	_, height, err := layout.Layout(doc, 10, measure.NewMonospace(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, height)
}
