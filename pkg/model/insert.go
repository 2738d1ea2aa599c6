package model

import (
	"unicode/utf8"

	"github.com/yaklabco/textengine/pkg/piece"
)

// Insert places text at the logical byte offset of the document.
//
// The run containing offset is split and a new run over the edit buffer is
// placed between its halves. At a boundary between two runs the text goes
// before the later run. An offset equal to Len appends to the last
// paragraph, creating one if the document has none.
func (d *Document) Insert(offset int, text string) error {
	if !utf8.ValidString(text) {
		return piece.ErrInvalidText
	}

	runs := d.Runs()
	target, within, err := d.locate(runs, offset)
	if err != nil {
		return err
	}

	if text == "" {
		return nil
	}

	inserted := d.mint(d.buffers.Append(text))

	if target != nil {
		paragraph := target.parent.(*Paragraph)
		index := paragraph.indexOf(target)

		if within == 0 {
			paragraph.insertRuns(index, inserted)
			return nil
		}

		before, after := target.span.SplitAt(within)
		target.span = before
		paragraph.insertRuns(index+1, inserted, d.mint(after))
		return nil
	}

	return d.appendRun(runs, inserted)
}

// locate finds the run containing offset and the offset within it.
// A nil run means offset is the end of the document.
func (d *Document) locate(runs []*Run, offset int) (*Run, int, error) {
	length := 0
	for _, run := range runs {
		length += run.Len()
	}

	if offset < 0 || offset > length {
		return nil, 0, &piece.OffsetError{Offset: offset, Length: length, Reason: "out of range"}
	}

	pos := 0
	for _, run := range runs {
		if offset >= pos && offset < pos+run.Len() {
			text, err := d.Resolve(run)
			if err != nil {
				return nil, 0, err
			}
			within := offset - pos
			if !utf8.RuneStart(text[within]) {
				return nil, 0, &piece.OffsetError{Offset: offset, Length: length, Reason: "not on a UTF-8 boundary"}
			}
			return run, within, nil
		}
		pos += run.Len()
	}

	return nil, 0, nil
}

func (d *Document) appendRun(runs []*Run, run *Run) error {
	if len(runs) > 0 {
		last := runs[len(runs)-1]
		paragraph := last.parent.(*Paragraph)
		paragraph.insertRuns(paragraph.indexOf(last)+1, run)
		return nil
	}

	if paragraphs := Paragraphs(d.root); len(paragraphs) > 0 {
		return paragraphs[len(paragraphs)-1].AppendInline(run)
	}

	paragraph := NewParagraph()
	if err := paragraph.AppendInline(run); err != nil {
		return err
	}
	return d.root.AppendBlock(paragraph)
}
