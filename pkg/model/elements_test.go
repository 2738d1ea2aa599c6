package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/model"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Frame", model.KindFrame.String())
	assert.Equal(t, "Paragraph", model.KindParagraph.String())
	assert.Equal(t, "InfoBox", model.KindInfoBox.String())
	assert.Equal(t, "Run", model.KindRun.String())
	assert.Equal(t, "Unknown", model.Kind(42).String())
}

func TestFrame_AppendBlock(t *testing.T) {
	t.Parallel()

	frame := model.NewFrame()
	first := model.NewParagraph()
	second := model.NewParagraph()

	require.NoError(t, frame.AppendBlock(first))
	require.NoError(t, frame.AppendBlock(second))

	children := frame.Children()
	require.Len(t, children, 2)
	assert.Same(t, first, children[0])
	assert.Same(t, second, children[1])
	assert.Equal(t, model.Element(frame), first.Parent())
}

func TestFrame_AppendBlockRejectsInvalidChildren(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		frame := model.NewFrame()
		require.ErrorIs(t, frame.AppendBlock(nil), model.ErrNilElement)

		var paragraph *model.Paragraph
		require.ErrorIs(t, frame.AppendBlock(paragraph), model.ErrNilElement)
	})

	t.Run("already attached", func(t *testing.T) {
		t.Parallel()

		paragraph := model.NewParagraph()
		require.NoError(t, model.NewFrame().AppendBlock(paragraph))
		require.ErrorIs(t, model.NewFrame().AppendBlock(paragraph), model.ErrAlreadyAttached)
	})

	t.Run("document root", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocument()
		_, err := model.NewInfoBox(doc.Root())
		require.ErrorIs(t, err, model.ErrAlreadyAttached)
	})

	t.Run("cycle through info box", func(t *testing.T) {
		t.Parallel()

		outer := model.NewFrame()
		inner := model.NewFrame()
		box, err := model.NewInfoBox(outer)
		require.NoError(t, err)
		require.NoError(t, outer.AppendBlock(inner))

		require.ErrorIs(t, inner.AppendBlock(box), model.ErrCycle)
	})

	t.Run("self", func(t *testing.T) {
		t.Parallel()

		frame := model.NewFrame()
		require.ErrorIs(t, frame.AppendBlock(frame), model.ErrCycle)
	})
}

func TestParagraph_AppendInline(t *testing.T) {
	t.Parallel()

	doc := model.NewDocument()
	paragraph := model.NewParagraph()

	run, err := doc.NewRun("Hello ")
	require.NoError(t, err)
	require.NoError(t, paragraph.AppendInline(run))
	require.ErrorIs(t, paragraph.AppendInline(run), model.ErrAlreadyAttached)
	require.ErrorIs(t, paragraph.AppendInline(nil), model.ErrNilElement)

	assert.Equal(t, 1, paragraph.Len())
	assert.Equal(t, 6, run.Len())
}

func TestNewInfoBox(t *testing.T) {
	t.Parallel()

	frame := model.NewFrame()
	box, err := model.NewInfoBox(frame)
	require.NoError(t, err)

	assert.Same(t, frame, box.Frame())
	assert.Equal(t, model.Element(box), frame.Parent())
	assert.Equal(t, model.KindInfoBox, box.Kind())

	_, err = model.NewInfoBox(nil)
	require.ErrorIs(t, err, model.ErrNilElement)

	_, err = model.NewInfoBox(frame)
	require.ErrorIs(t, err, model.ErrAlreadyAttached)
}

func TestAppend_RejectsRunsFromAnotherDocument(t *testing.T) {
	t.Parallel()

	t.Run("run into attached paragraph", func(t *testing.T) {
		t.Parallel()

		mine := model.NewDocumentWithText("mine")
		other := model.NewDocument()
		stranger, err := other.NewRun("theirs")
		require.NoError(t, err)

		paragraph := model.Paragraphs(mine.Root())[0]
		require.ErrorIs(t, paragraph.AppendInline(stranger), model.ErrForeignRun)
		assert.Nil(t, stranger.Parent())

		text, err := mine.Text()
		require.NoError(t, err)
		assert.Equal(t, "mine", text)
	})

	t.Run("detached paragraph into root", func(t *testing.T) {
		t.Parallel()

		mine := model.NewDocument()
		other := model.NewDocument()
		paragraph, err := other.NewParagraph("theirs")
		require.NoError(t, err)

		require.ErrorIs(t, mine.Root().AppendBlock(paragraph), model.ErrForeignRun)
		assert.Zero(t, mine.Root().Len())
	})

	t.Run("mixed detached subtree", func(t *testing.T) {
		t.Parallel()

		mine := model.NewDocument()
		other := model.NewDocument()

		inner := model.NewFrame()
		paragraph, err := mine.NewParagraph("mine")
		require.NoError(t, err)
		require.NoError(t, inner.AppendBlock(paragraph))

		box, err := model.NewInfoBox(inner)
		require.NoError(t, err)
		require.NoError(t, mine.Root().AppendBlock(box))

		late := model.NewParagraph()
		require.NoError(t, inner.AppendBlock(late))
		foreign, err := other.NewRun("late")
		require.NoError(t, err)
		require.ErrorIs(t, late.AppendInline(foreign), model.ErrForeignRun)
	})

	t.Run("same document", func(t *testing.T) {
		t.Parallel()

		doc := model.NewDocumentWithText("a")
		run, err := doc.NewRun("b")
		require.NoError(t, err)
		require.NoError(t, model.Paragraphs(doc.Root())[0].AppendInline(run))

		text, err := doc.Text()
		require.NoError(t, err)
		assert.Equal(t, "ab", text)
	})
}
