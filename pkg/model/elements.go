package model

import (
	"slices"

	"github.com/yaklabco/textengine/pkg/piece"
)

// Frame is a block container of other blocks. A document's root is a Frame.
type Frame struct {
	node
	children []Block
}

// NewFrame creates an empty, detached frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Kind returns KindFrame.
func (f *Frame) Kind() Kind { return KindFrame }

func (f *Frame) element() *node { return &f.node }
func (f *Frame) block()         {}

// Children returns the frame's blocks in order.
func (f *Frame) Children() []Block {
	return slices.Clone(f.children)
}

// Len returns the number of direct children.
func (f *Frame) Len() int {
	return len(f.children)
}

// AppendBlock adds child as the last block of the frame.
func (f *Frame) AppendBlock(child Block) error {
	if err := checkAttach(f, child); err != nil {
		return err
	}
	attach(f, child)
	f.children = append(f.children, child)
	return nil
}

// Paragraph is a block whose content is inline-only.
type Paragraph struct {
	node
	children []Inline
}

// NewParagraph creates an empty, detached paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// Kind returns KindParagraph.
func (p *Paragraph) Kind() Kind { return KindParagraph }

func (p *Paragraph) element() *node { return &p.node }
func (p *Paragraph) block()         {}

// Children returns the paragraph's inline elements in order.
func (p *Paragraph) Children() []Inline {
	return slices.Clone(p.children)
}

// Len returns the number of direct children.
func (p *Paragraph) Len() int {
	return len(p.children)
}

// AppendInline adds child as the last inline element of the paragraph.
func (p *Paragraph) AppendInline(child Inline) error {
	if err := checkAttach(p, child); err != nil {
		return err
	}
	attach(p, child)
	p.children = append(p.children, child)
	return nil
}

// insertRuns places runs at index without attachment checks.
// Only the document's edit path uses it, with freshly minted runs.
func (p *Paragraph) insertRuns(index int, runs ...*Run) {
	inlines := make([]Inline, len(runs))
	for i, run := range runs {
		run.parent = p
		inlines[i] = run
	}
	p.children = slices.Insert(p.children, index, inlines...)
}

func (p *Paragraph) indexOf(child Inline) int {
	return slices.Index(p.children, child)
}

// InfoBox is a decorated call-out block wrapping exactly one frame.
type InfoBox struct {
	node
	frame *Frame
}

// NewInfoBox wraps frame in an info box. The frame must be detached.
func NewInfoBox(frame *Frame) (*InfoBox, error) {
	box := &InfoBox{}
	if err := checkAttach(box, frame); err != nil {
		return nil, err
	}
	attach(box, frame)
	box.frame = frame
	return box, nil
}

// Kind returns KindInfoBox.
func (b *InfoBox) Kind() Kind { return KindInfoBox }

func (b *InfoBox) element() *node { return &b.node }
func (b *InfoBox) block()         {}

// Frame returns the wrapped frame.
func (b *InfoBox) Frame() *Frame {
	return b.frame
}

// Run is an inline leaf addressing a span of text in its document's buffers.
type Run struct {
	node
	span piece.Span
}

// Kind returns KindRun.
func (r *Run) Kind() Kind { return KindRun }

func (r *Run) element() *node { return &r.node }
func (r *Run) inline()        {}

// Span returns the byte range this run addresses.
func (r *Run) Span() piece.Span {
	return r.span
}

// Len returns the run length in bytes.
func (r *Run) Len() int {
	return r.span.Len()
}

// Compile-time interface checks.
var (
	_ Block  = (*Frame)(nil)
	_ Block  = (*Paragraph)(nil)
	_ Block  = (*InfoBox)(nil)
	_ Inline = (*Run)(nil)
)
