package model_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/model"
	"github.com/yaklabco/textengine/pkg/piece"
)

func mustText(t *testing.T, doc *model.Document) string {
	t.Helper()
	text, err := doc.Text()
	require.NoError(t, err)
	return text
}

func TestNewDocumentWithText(t *testing.T) {
	t.Parallel()

	doc := model.NewDocumentWithText("Hell🌍 World")

	assert.Equal(t, "Hell🌍 World", mustText(t, doc))
	require.Equal(t, 1, doc.Root().Len())

	paragraph, ok := doc.Root().Children()[0].(*model.Paragraph)
	require.True(t, ok, "root child should be a paragraph")
	require.Equal(t, 1, paragraph.Len())

	run, ok := paragraph.Children()[0].(*model.Run)
	require.True(t, ok, "paragraph child should be a run")
	assert.Equal(t, piece.Span{Source: piece.Original, Start: 0, End: 14}, run.Span())
	assert.Equal(t, model.Element(paragraph), run.Parent())
}

func TestNewDocument_Empty(t *testing.T) {
	t.Parallel()

	doc := model.NewDocument()

	assert.Empty(t, mustText(t, doc))
	assert.Empty(t, doc.Runs())
	assert.Equal(t, 0, doc.Root().Len())
	assert.Nil(t, doc.Root().Parent())
}

func TestDocument_Insert(t *testing.T) {
	t.Parallel()

	t.Run("comma in the middle", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocumentWithText("Hello World")
		require.NoError(t, doc.Insert(5, ","))
		assert.Equal(t, "Hello, World", mustText(t, doc))
		assert.Len(t, doc.Runs(), 3)
	})

	t.Run("append semantics at the end", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocumentWithText("AB")
		require.NoError(t, doc.Insert(0, "X"))
		require.NoError(t, doc.Insert(3, "Y"))
		assert.Equal(t, "XABY", mustText(t, doc))
	})

	t.Run("version history", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocumentWithText("Hell🌍 World")
		require.NoError(t, doc.Insert(14, ", again!"))
		assert.Equal(t, "Hell🌍 World, again!", mustText(t, doc))

		require.NoError(t, doc.Insert(22, " (no really!)"))
		assert.Equal(t, "Hell🌍 World, again! (no really!)", mustText(t, doc))

		require.NoError(t, doc.Insert(8, " to the entire"))
		assert.Equal(t, "Hell🌍 to the entire World, again! (no really!)", mustText(t, doc))
	})

	t.Run("empty document creates a paragraph", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocument()
		require.NoError(t, doc.Insert(0, "first"))
		assert.Equal(t, "first", mustText(t, doc))
		require.Equal(t, 1, doc.Root().Len())
		assert.Equal(t, model.KindParagraph, doc.Root().Children()[0].Kind())
	})

	t.Run("empty text is a no-op", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocumentWithText("abc")
		require.NoError(t, doc.Insert(1, ""))
		assert.Len(t, doc.Runs(), 1)
	})

	t.Run("boundary between paragraphs goes to the later one", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocumentWithText("one")
		second, err := doc.NewParagraph("two")
		require.NoError(t, err)
		require.NoError(t, doc.Root().AppendBlock(second))

		require.NoError(t, doc.Insert(3, "+"))

		text, err := doc.TextOf(second)
		require.NoError(t, err)
		assert.Equal(t, "+two", text)
		assert.Equal(t, "one+two", mustText(t, doc))
	})
}

func TestDocument_InsertRejectsInvalidOffsets(t *testing.T) {
	t.Parallel()

	doc := model.NewDocumentWithText("猫は")

	tests := []struct {
		name   string
		offset int
	}{
		{"inside a rune", 1},
		{"past the end", 7},
		{"negative", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, doc.Insert(tc.offset, "x"), piece.ErrInvalidOffset)
		})
	}

	require.ErrorIs(t, doc.Insert(0, "\xc3"), piece.ErrInvalidText)
}

func TestDocument_InsertRoundTrip(t *testing.T) {
	t.Parallel()

	fragments := []string{"a", "é", "猫", "🌍", "  ", "word"}
	rng := rand.New(rand.NewPCG(7, 11))

	doc := model.NewDocumentWithText("start")
	expected := "start"

	for range 150 {
		var boundaries []int
		for i := range expected {
			boundaries = append(boundaries, i)
		}
		boundaries = append(boundaries, len(expected))

		offset := boundaries[rng.IntN(len(boundaries))]
		text := fragments[rng.IntN(len(fragments))]

		spansBefore := doc.Spans()
		textsBefore := make([]string, len(spansBefore))
		for i, span := range spansBefore {
			resolved, err := doc.ResolveSpan(span)
			require.NoError(t, err)
			textsBefore[i] = resolved
		}

		require.NoError(t, doc.Insert(offset, text))
		expected = expected[:offset] + text + expected[offset:]

		for i, span := range spansBefore {
			resolved, err := doc.ResolveSpan(span)
			require.NoError(t, err)
			require.Equal(t, textsBefore[i], resolved, "earlier span changed")
		}
	}

	assert.Equal(t, expected, mustText(t, doc))
	assert.Equal(t, len(expected), doc.Len())

	var concatenated string
	for _, run := range doc.Runs() {
		text, err := doc.Resolve(run)
		require.NoError(t, err)
		concatenated += text
	}
	assert.Equal(t, expected, concatenated)
}

func TestDocument_ResolveForeignRun(t *testing.T) {
	t.Parallel()

	first := model.NewDocument()
	second := model.NewDocument()

	run, err := first.NewRun("mine")
	require.NoError(t, err)

	_, err = second.Resolve(run)
	require.ErrorIs(t, err, model.ErrForeignRun)

	_, err = second.Resolve(nil)
	require.ErrorIs(t, err, model.ErrNilElement)
}

func TestDocument_TextOfInfoBox(t *testing.T) {
	t.Parallel()

	doc := model.NewDocumentWithText("Intro. ")

	inner := model.NewFrame()
	note, err := doc.NewParagraph("Note: ", "careful")
	require.NoError(t, err)
	require.NoError(t, inner.AppendBlock(note))

	box, err := model.NewInfoBox(inner)
	require.NoError(t, err)
	require.NoError(t, doc.Root().AppendBlock(box))

	text, err := doc.TextOf(box)
	require.NoError(t, err)
	assert.Equal(t, "Note: careful", text)
	assert.Equal(t, "Intro. Note: careful", mustText(t, doc))
}
