package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textengine/pkg/model"
)

func buildTestTree(t *testing.T) *model.Document {
	t.Helper()

	// Frame
	//   Paragraph
	//     Run "Hello "
	//     Run "World"
	//   InfoBox
	//     Frame
	//       Paragraph
	//         Run "!"
	doc := model.NewDocument()

	greeting, err := doc.NewParagraph("Hello ", "World")
	require.NoError(t, err)
	require.NoError(t, doc.Root().AppendBlock(greeting))

	inner := model.NewFrame()
	bang, err := doc.NewParagraph("!")
	require.NoError(t, err)
	require.NoError(t, inner.AppendBlock(bang))

	box, err := model.NewInfoBox(inner)
	require.NoError(t, err)
	require.NoError(t, doc.Root().AppendBlock(box))

	return doc
}

func TestWalk_EnterAndLeaveOrder(t *testing.T) {
	t.Parallel()

	doc := buildTestTree(t)

	var entered, left []model.Kind
	err := model.Walk(doc.Root(),
		func(e model.Element) error {
			entered = append(entered, e.Kind())
			return nil
		},
		func(e model.Element) error {
			left = append(left, e.Kind())
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []model.Kind{
		model.KindFrame, model.KindParagraph, model.KindRun, model.KindRun,
		model.KindInfoBox, model.KindFrame, model.KindParagraph, model.KindRun,
	}, entered)

	assert.Equal(t, []model.Kind{
		model.KindRun, model.KindRun, model.KindParagraph,
		model.KindRun, model.KindParagraph, model.KindFrame, model.KindInfoBox,
		model.KindFrame,
	}, left)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	doc := buildTestTree(t)
	stop := errors.New("stop")

	visited := 0
	err := model.Walk(doc.Root(), func(e model.Element) error {
		visited++
		if e.Kind() == model.KindRun {
			return stop
		}
		return nil
	}, nil)

	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	require.NoError(t, model.Walk(nil, nil, nil))
}

func TestRunsAndParagraphs(t *testing.T) {
	t.Parallel()

	doc := buildTestTree(t)

	assert.Len(t, doc.Runs(), 3)
	assert.Len(t, model.Paragraphs(doc.Root()), 2)
	assert.Equal(t, len("Hello World!"), doc.Len())

	text, err := doc.Text()
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", text)
}

func TestDocument_ParagraphOffsets(t *testing.T) {
	t.Parallel()

	doc := buildTestTree(t)
	assert.Equal(t, []int{0, len("Hello World")}, doc.ParagraphOffsets())
}
