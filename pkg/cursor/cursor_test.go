package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/cursor"
	"github.com/yaklabco/textengine/pkg/model"
	"github.com/yaklabco/textengine/pkg/piece"
)

func TestCursor_MoveForward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		unit       cursor.Unit
		quantity   int
		wantMoved  int
		wantOffset int
	}{
		{name: "characters", text: "Hello World", unit: cursor.Character, quantity: 3, wantMoved: 3, wantOffset: 3},
		{name: "characters are scalar values", text: "Hell🌍 World", unit: cursor.Character, quantity: 5, wantMoved: 5, wantOffset: 8},
		{name: "characters stop at end", text: "abc", unit: cursor.Character, quantity: 10, wantMoved: 3, wantOffset: 3},
		{name: "one word lands on next word", text: "Hello World", unit: cursor.Word, quantity: 1, wantMoved: 1, wantOffset: 6},
		{name: "words stop at end", text: "Hello World", unit: cursor.Word, quantity: 5, wantMoved: 2, wantOffset: 11},
		{name: "word skips punctuation", text: "Hello, World", unit: cursor.Word, quantity: 1, wantMoved: 1, wantOffset: 7},
		{name: "sentence", text: "Hi there. Bye now.", unit: cursor.Sentence, quantity: 1, wantMoved: 1, wantOffset: 10},
		{name: "two sentences", text: "Hi there. Bye now.", unit: cursor.Sentence, quantity: 2, wantMoved: 2, wantOffset: 18},
		{name: "paragraph at line break", text: "one\ntwo\nthree", unit: cursor.Paragraph, quantity: 1, wantMoved: 1, wantOffset: 4},
		{name: "paragraphs to end", text: "one\ntwo\nthree", unit: cursor.Paragraph, quantity: 4, wantMoved: 3, wantOffset: 13},
		{name: "zero quantity", text: "abc", unit: cursor.Character, quantity: 0, wantMoved: 0, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cursor.New(piece.NewTableWithText(tt.text))

			moved, err := c.MoveForward(tt.quantity, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMoved, moved)

			offset, err := c.Offset()
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestCursor_CrossesRunsInOrder(t *testing.T) {
	t.Parallel()

	table := piece.NewTableWithText("AB")
	require.NoError(t, table.Insert(1, "xy"))
	require.Len(t, table.Spans(), 3)

	c := cursor.New(table)

	_, err := c.MoveForward(2, cursor.Character)
	require.NoError(t, err)
	assert.Equal(t, cursor.Position{Run: 1, Offset: 1}, c.Position())

	_, err = c.MoveForward(1, cursor.Character)
	require.NoError(t, err)
	assert.Equal(t, cursor.Position{Run: 2, Offset: 0}, c.Position())

	_, err = c.MoveForward(1, cursor.Character)
	require.NoError(t, err)
	assert.Equal(t, cursor.Position{Run: 2, Offset: 1}, c.Position())

	moved, err := c.MoveForward(1, cursor.Character)
	require.NoError(t, err)
	assert.Zero(t, moved)
}

func TestCursor_DocumentParagraphs(t *testing.T) {
	t.Parallel()

	doc := model.NewDocumentWithText("Hello")
	para, err := doc.NewParagraph("World")
	require.NoError(t, err)
	require.NoError(t, doc.Root().AppendBlock(para))

	c := cursor.New(doc)

	moved, err := c.MoveForward(1, cursor.Paragraph)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	assert.Equal(t, cursor.Position{Run: 1, Offset: 0}, c.Position())

	moved, err = c.MoveForward(1, cursor.Paragraph)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	assert.Equal(t, cursor.Position{Run: 1, Offset: 5}, c.Position())
}

func TestCursor_Seek(t *testing.T) {
	t.Parallel()

	c := cursor.New(piece.NewTableWithText("Hell🌍 World"))

	require.NoError(t, c.Seek(8))
	assert.Equal(t, cursor.Position{Run: 0, Offset: 8}, c.Position())

	err := c.Seek(5)
	require.ErrorIs(t, err, cursor.ErrInvalidPosition)
	assert.Equal(t, cursor.Position{Run: 0, Offset: 8}, c.Position())

	require.ErrorIs(t, c.Seek(100), cursor.ErrInvalidPosition)
}

func TestCursor_StaysValidAcrossLaterInsert(t *testing.T) {
	t.Parallel()

	doc := model.NewDocumentWithText("Hello World")
	c := cursor.New(doc)
	require.NoError(t, c.Seek(5))

	require.NoError(t, doc.Insert(11, "!"))

	offset, err := c.Offset()
	require.NoError(t, err)
	assert.Equal(t, 5, offset)

	moved, err := c.MoveForward(1, cursor.Word)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	offset, err = c.Offset()
	require.NoError(t, err)
	assert.Equal(t, 6, offset)
}

func TestCursor_EmptySource(t *testing.T) {
	t.Parallel()

	c := cursor.New(piece.NewTable())

	moved, err := c.MoveForward(3, cursor.Word)
	require.NoError(t, err)
	assert.Zero(t, moved)
	assert.Equal(t, cursor.Position{}, c.Position())
}

func TestUnit_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "character", cursor.Character.String())
	assert.Equal(t, "word", cursor.Word.String())
	assert.Equal(t, "sentence", cursor.Sentence.String())
	assert.Equal(t, "paragraph", cursor.Paragraph.String())
	assert.Equal(t, "unknown", cursor.Unit(42).String())
}
