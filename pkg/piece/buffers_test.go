package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/piece"
)

func TestBuffers_AppendAndResolve(t *testing.T) {
	t.Parallel()

	buffers := piece.NewBuffers("original")

	first := buffers.Append("one")
	second := buffers.Append("two")

	assert.Equal(t, piece.Span{Source: piece.Edits, Start: 0, End: 3}, first)
	assert.Equal(t, piece.Span{Source: piece.Edits, Start: 3, End: 6}, second)

	text, err := buffers.Resolve(first)
	require.NoError(t, err)
	assert.Equal(t, "one", text)

	text, err = buffers.Resolve(buffers.OriginalSpan())
	require.NoError(t, err)
	assert.Equal(t, "original", text)
}

func TestBuffers_ResolveOutOfBounds(t *testing.T) {
	t.Parallel()

	buffers := piece.NewBuffers("abc")

	_, err := buffers.Resolve(piece.Span{Source: piece.Original, Start: 1, End: 10})
	require.ErrorIs(t, err, piece.ErrCorruptRun)

	var runErr *piece.RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, 3, runErr.BufferLen)

	_, err = buffers.Resolve(piece.Span{Source: piece.Edits, Start: 0, End: 1})
	require.ErrorIs(t, err, piece.ErrCorruptRun)

	_, err = buffers.Resolve(piece.Span{Source: piece.Original, Start: 2, End: 1})
	require.ErrorIs(t, err, piece.ErrCorruptRun)
}

func TestSpan_SplitAt(t *testing.T) {
	t.Parallel()

	span := piece.Span{Source: piece.Edits, Start: 4, End: 10}
	before, after := span.SplitAt(2)

	assert.Equal(t, piece.Span{Source: piece.Edits, Start: 4, End: 6}, before)
	assert.Equal(t, piece.Span{Source: piece.Edits, Start: 6, End: 10}, after)
	assert.Equal(t, span.Len(), before.Len()+after.Len())
	assert.False(t, before.IsEmpty())
}

func TestCheckBoundary(t *testing.T) {
	t.Parallel()

	text := "a猫b"

	require.NoError(t, piece.CheckBoundary(text, 0))
	require.NoError(t, piece.CheckBoundary(text, 1))
	require.NoError(t, piece.CheckBoundary(text, 4))
	require.NoError(t, piece.CheckBoundary(text, 5))

	require.ErrorIs(t, piece.CheckBoundary(text, 2), piece.ErrInvalidOffset)
	require.ErrorIs(t, piece.CheckBoundary(text, 6), piece.ErrInvalidOffset)
}

func TestSource_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "original", piece.Original.String())
	assert.Equal(t, "edits", piece.Edits.String())
	assert.Equal(t, "unknown", piece.Source(9).String())
}
