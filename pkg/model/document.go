package model

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/textengine/pkg/piece"
)

// Document owns the text buffers and the root frame of a tree.
type Document struct {
	buffers *piece.Buffers
	root    *Frame
}

// NewDocument creates a document with an empty root frame and no runs.
func NewDocument() *Document {
	buffers := &piece.Buffers{}
	root := NewFrame()
	root.root = true
	root.owner = buffers
	return &Document{
		buffers: buffers,
		root:    root,
	}
}

// NewDocumentWithText creates a document whose original buffer holds text,
// shaped as a single Frame → Paragraph → Run chain.
func NewDocumentWithText(text string) *Document {
	doc := NewDocument()
	doc.buffers = piece.NewBuffers(text)
	doc.root.owner = doc.buffers

	paragraph := NewParagraph()
	paragraph.insertRuns(0, doc.mint(doc.buffers.OriginalSpan()))
	paragraph.parent = doc.root
	doc.root.children = append(doc.root.children, paragraph)

	return doc
}

// Root returns the document's root frame.
func (d *Document) Root() *Frame {
	return d.root
}

// NewRun appends text to the edit buffer and returns a detached run over it.
func (d *Document) NewRun(text string) (*Run, error) {
	if !utf8.ValidString(text) {
		return nil, piece.ErrInvalidText
	}
	return d.mint(d.buffers.Append(text)), nil
}

// NewParagraph returns a detached paragraph holding one run per text.
func (d *Document) NewParagraph(texts ...string) (*Paragraph, error) {
	paragraph := NewParagraph()
	for _, text := range texts {
		run, err := d.NewRun(text)
		if err != nil {
			return nil, err
		}
		if err := paragraph.AppendInline(run); err != nil {
			return nil, err
		}
	}
	return paragraph, nil
}

func (d *Document) mint(span piece.Span) *Run {
	run := &Run{span: span}
	run.owner = d.buffers
	return run
}

// Resolve returns the text addressed by run.
func (d *Document) Resolve(run *Run) (string, error) {
	if run == nil {
		return "", ErrNilElement
	}
	if run.owner != d.buffers {
		return "", ErrForeignRun
	}
	return d.buffers.Resolve(run.span)
}

// ResolveSpan returns the text addressed by span in this document's buffers.
func (d *Document) ResolveSpan(span piece.Span) (string, error) {
	return d.buffers.Resolve(span)
}

// TextOf concatenates the text under e, visiting children before their parent.
func (d *Document) TextOf(e Element) (string, error) {
	var sb strings.Builder

	err := Walk(e, nil, func(visited Element) error {
		run, ok := visited.(*Run)
		if !ok {
			return nil
		}
		text, err := d.Resolve(run)
		if err != nil {
			return err
		}
		sb.WriteString(text)
		return nil
	})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Text returns the whole document text in document order.
func (d *Document) Text() (string, error) {
	return d.TextOf(d.root)
}

// Runs returns every run of the document in document order.
func (d *Document) Runs() []*Run {
	return Runs(d.root)
}

// Spans returns the span of every run in document order.
func (d *Document) Spans() []piece.Span {
	runs := d.Runs()
	spans := make([]piece.Span, len(runs))
	for i, run := range runs {
		spans[i] = run.span
	}
	return spans
}

// Len returns the logical length of the document text in bytes.
func (d *Document) Len() int {
	total := 0
	for _, run := range d.Runs() {
		total += run.Len()
	}
	return total
}

// ParagraphOffsets returns the logical byte offset at which each paragraph
// starts, in document order.
func (d *Document) ParagraphOffsets() []int {
	var offsets []int
	pos := 0

	//nolint:errcheck,revive // the callback never fails
	Walk(d.root, func(e Element) error {
		switch v := e.(type) {
		case *Paragraph:
			offsets = append(offsets, pos)
		case *Run:
			pos += v.Len()
		}
		return nil
	}, nil)

	return offsets
}
