package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/layout"
)

func TestExtents(t *testing.T) {
	t.Parallel()

	e := layout.Extents{Top: 1, Left: 2, Bottom: 3, Right: 4}

	assert.Equal(t, 6, e.Horizontal())
	assert.Equal(t, 4, e.Vertical())
	assert.Equal(t, layout.Extents{Top: 11, Left: 12, Bottom: 13, Right: 14}, e.Add(layout.Uniform(10)))
}

func TestColour_HexRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#deebff", layout.InfoBoxBackground.Hex())

	parsed, err := layout.ParseColour("#deebff")
	require.NoError(t, err)
	assert.Equal(t, layout.InfoBoxBackground, parsed)

	parsed, err = layout.ParseColour("000000")
	require.NoError(t, err)
	assert.Equal(t, layout.Black, parsed)
}

func TestParseColour_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#fff", "#gggggg", "1234567"} {
		_, err := layout.ParseColour(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFlow_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "block", layout.BlockFlow.String())
	assert.Equal(t, "inline", layout.InlineFlow.String())
}
