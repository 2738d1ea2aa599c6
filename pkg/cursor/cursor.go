// Package cursor moves an insertion point through a document's runs.
//
// A position is a run index plus a byte offset inside that run. Movement is
// counted in Unicode units: characters are scalar values, and word, sentence
// and line boundaries follow the Unicode segmentation rules (UAX #29 and
// UAX #14) as implemented by uniseg.
package cursor

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/textengine/pkg/piece"
)

// ErrInvalidPosition is returned when a position does not address a rune
// boundary inside the source.
var ErrInvalidPosition = errors.New("invalid cursor position")

// Unit is the granularity of a cursor movement.
type Unit uint8

// Movement units.
const (
	Character Unit = iota
	Word
	Sentence
	Paragraph
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case Character:
		return "character"
	case Word:
		return "word"
	case Sentence:
		return "sentence"
	case Paragraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Source is the run sequence a cursor walks. Both piece.Table and
// model.Document satisfy it.
type Source interface {
	Spans() []piece.Span
	ResolveSpan(span piece.Span) (string, error)
}

// ParagraphSource is implemented by sources that know where paragraphs
// start. Without it, paragraphs are delimited by hard line breaks.
type ParagraphSource interface {
	ParagraphOffsets() []int
}

// Position addresses a byte inside a run.
type Position struct {
	Run    int
	Offset int
}

// Cursor is an insertion point over a Source.
// It reads the source on every call, so it stays valid across inserts
// that happen after its position.
type Cursor struct {
	src Source
	pos Position
}

// New returns a cursor at the start of src.
func New(src Source) *Cursor {
	return &Cursor{src: src}
}

// Position returns the current position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Offset returns the current logical byte offset.
func (c *Cursor) Offset() (int, error) {
	snap, err := takeSnapshot(c.src)
	if err != nil {
		return 0, err
	}
	return snap.offsetOf(c.pos)
}

// Seek moves the cursor to a logical byte offset.
func (c *Cursor) Seek(offset int) error {
	snap, err := takeSnapshot(c.src)
	if err != nil {
		return err
	}
	if err := piece.CheckBoundary(snap.text, offset); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	c.pos = snap.positionOf(offset)
	return nil
}

// MoveForward advances the cursor by quantity units and returns how many
// units it actually moved; fewer means it reached the end of the text.
func (c *Cursor) MoveForward(quantity int, unit Unit) (int, error) {
	snap, err := takeSnapshot(c.src)
	if err != nil {
		return 0, err
	}

	offset, err := snap.offsetOf(c.pos)
	if err != nil {
		return 0, err
	}

	var next func(text string, offset int) int
	switch unit {
	case Character:
		next = nextCharacter
	case Word:
		next = nextWord
	case Sentence:
		next = nextSentence
	case Paragraph:
		next = snap.nextParagraph(c.src)
	default:
		return 0, fmt.Errorf("move by %s: unsupported unit", unit)
	}

	moved := 0
	for moved < quantity && offset < len(snap.text) {
		offset = next(snap.text, offset)
		moved++
	}

	c.pos = snap.positionOf(offset)
	return moved, nil
}

// snapshot is the flattened text of a source with run start offsets.
type snapshot struct {
	text   string
	starts []int
	spans  []piece.Span
}

func takeSnapshot(src Source) (*snapshot, error) {
	spans := src.Spans()
	snap := &snapshot{spans: spans, starts: make([]int, len(spans))}

	var sb strings.Builder
	for i, span := range spans {
		snap.starts[i] = sb.Len()
		text, err := src.ResolveSpan(span)
		if err != nil {
			return nil, err
		}
		sb.WriteString(text)
	}
	snap.text = sb.String()

	return snap, nil
}

func (s *snapshot) offsetOf(pos Position) (int, error) {
	if len(s.spans) == 0 {
		if pos.Run == 0 && pos.Offset == 0 {
			return 0, nil
		}
		return 0, ErrInvalidPosition
	}
	if pos.Run < 0 || pos.Run >= len(s.spans) || pos.Offset < 0 || pos.Offset > s.spans[pos.Run].Len() {
		return 0, ErrInvalidPosition
	}
	offset := s.starts[pos.Run] + pos.Offset
	if offset < len(s.text) && !utf8.RuneStart(s.text[offset]) {
		return 0, ErrInvalidPosition
	}
	return offset, nil
}

// positionOf maps a logical offset to the run that starts at or contains it.
// The end of the text maps to the end of the last run.
func (s *snapshot) positionOf(offset int) Position {
	for i, span := range s.spans {
		if offset < s.starts[i]+span.Len() {
			return Position{Run: i, Offset: offset - s.starts[i]}
		}
	}
	if len(s.spans) == 0 {
		return Position{}
	}
	last := len(s.spans) - 1
	return Position{Run: last, Offset: s.spans[last].Len()}
}

func (s *snapshot) nextParagraph(src Source) func(string, int) int {
	var boundaries []int

	if ps, ok := src.(ParagraphSource); ok {
		boundaries = append(boundaries, ps.ParagraphOffsets()...)
	}

	pos, state := 0, -1
	rest := s.text
	for len(rest) > 0 {
		var (
			segment   string
			mustBreak bool
		)
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		pos += len(segment)
		if mustBreak && len(rest) > 0 {
			boundaries = append(boundaries, pos)
		}
	}

	slices.Sort(boundaries)

	return func(text string, offset int) int {
		for _, b := range boundaries {
			if b > offset {
				return b
			}
		}
		return len(text)
	}
}

func nextCharacter(text string, offset int) int {
	_, size := utf8.DecodeRuneInString(text[offset:])
	return offset + size
}

// nextWord moves past the current word segment and any following
// non-word segments, landing on the start of the next word.
func nextWord(text string, offset int) int {
	state := -1
	rest := text[offset:]

	segment, rest, state := uniseg.FirstWordInString(rest, state)
	offset += len(segment)

	for len(rest) > 0 {
		var next string
		next, _, _ = uniseg.FirstWordInString(rest, state)
		if isWord(next) {
			break
		}
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		offset += len(segment)
	}

	return offset
}

func nextSentence(text string, offset int) int {
	segment, _, _ := uniseg.FirstSentenceInString(text[offset:], -1)
	return offset + len(segment)
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
