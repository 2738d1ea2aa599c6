package piece

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Table is a flat piece table: buffers plus an ordered list of spans.
// It is not safe for concurrent use.
type Table struct {
	buffers *Buffers
	spans   []Span
}

// NewTable creates an empty table with no spans.
func NewTable() *Table {
	return &Table{buffers: &Buffers{}}
}

// NewTableWithText creates a table whose original buffer holds initial,
// covered by a single span.
func NewTableWithText(initial string) *Table {
	buffers := NewBuffers(initial)
	return &Table{
		buffers: buffers,
		spans:   []Span{buffers.OriginalSpan()},
	}
}

// Buffers returns the underlying buffers.
func (t *Table) Buffers() *Buffers {
	return t.buffers
}

// Spans returns a copy of the spans in document order.
func (t *Table) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// Len returns the logical length of the text in bytes.
func (t *Table) Len() int {
	total := 0
	for _, span := range t.spans {
		total += span.Len()
	}
	return total
}

// ResolveSpan returns the text addressed by span.
func (t *Table) ResolveSpan(span Span) (string, error) {
	return t.buffers.Resolve(span)
}

// Text concatenates every span in order.
func (t *Table) Text() (string, error) {
	var sb strings.Builder
	for _, span := range t.spans {
		text, err := t.buffers.Resolve(span)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// Insert places text at the logical byte offset.
//
// The span containing offset is split in two and the new span goes between
// the halves. An offset on the boundary between two spans lands before the
// later one; an offset equal to Len appends.
func (t *Table) Insert(offset int, text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidText
	}

	index, within, err := t.locate(offset)
	if err != nil {
		return err
	}

	if text == "" {
		return nil
	}

	inserted := t.buffers.Append(text)

	switch {
	case index == len(t.spans):
		t.spans = append(t.spans, inserted)
	case within == 0:
		t.spans = slices.Insert(t.spans, index, inserted)
	default:
		before, after := t.spans[index].SplitAt(within)
		t.spans[index] = before
		t.spans = slices.Insert(t.spans, index+1, inserted, after)
	}

	return nil
}

// locate finds the span containing offset and the offset within it.
// It returns len(spans) when offset equals the logical length.
func (t *Table) locate(offset int) (int, int, error) {
	length := t.Len()
	if offset < 0 || offset > length {
		return 0, 0, &OffsetError{Offset: offset, Length: length, Reason: "out of range"}
	}

	pos := 0
	for i, span := range t.spans {
		if offset >= pos && offset < pos+span.Len() {
			within := offset - pos
			text, err := t.buffers.Resolve(span)
			if err != nil {
				return 0, 0, err
			}
			if !utf8.RuneStart(text[within]) {
				return 0, 0, &OffsetError{Offset: offset, Length: length, Reason: "not on a UTF-8 boundary"}
			}
			return i, within, nil
		}
		pos += span.Len()
	}

	return len(t.spans), 0, nil
}
