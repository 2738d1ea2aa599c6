package piece

import (
	"strings"
	"unicode/utf8"
)

// Buffers holds the original and edit buffers that spans refer to.
// The zero value is ready to use and has both buffers empty.
type Buffers struct {
	original string
	edits    strings.Builder
}

// NewBuffers creates buffers whose original buffer holds initial.
func NewBuffers(initial string) *Buffers {
	return &Buffers{original: initial}
}

// OriginalSpan returns the span covering the whole original buffer.
func (b *Buffers) OriginalSpan() Span {
	return Span{Source: Original, Start: 0, End: len(b.original)}
}

// Append adds text to the end of the edit buffer and returns its span.
// Previously appended bytes are never touched.
func (b *Buffers) Append(text string) Span {
	start := b.edits.Len()
	b.edits.WriteString(text)
	return Span{Source: Edits, Start: start, End: b.edits.Len()}
}

// Len returns the current length of the buffer named by source.
func (b *Buffers) Len(source Source) int {
	switch source {
	case Original:
		return len(b.original)
	case Edits:
		return b.edits.Len()
	default:
		return 0
	}
}

// Resolve returns the text addressed by span.
func (b *Buffers) Resolve(span Span) (string, error) {
	var buf string
	switch span.Source {
	case Original:
		buf = b.original
	case Edits:
		buf = b.edits.String()
	default:
		return "", &RunError{Span: span, BufferLen: 0}
	}

	if span.Start < 0 || span.End < span.Start || span.End > len(buf) {
		return "", &RunError{Span: span, BufferLen: len(buf)}
	}

	return buf[span.Start:span.End], nil
}

// CheckBoundary verifies that offset splits text on a UTF-8 boundary.
// Offsets equal to the text length are valid.
func CheckBoundary(text string, offset int) error {
	if offset < 0 || offset > len(text) {
		return &OffsetError{Offset: offset, Length: len(text), Reason: "out of range"}
	}
	if offset < len(text) && !utf8.RuneStart(text[offset]) {
		return &OffsetError{Offset: offset, Length: len(text), Reason: "not on a UTF-8 boundary"}
	}
	return nil
}
