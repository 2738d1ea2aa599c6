package measure

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Monospace measures text on a fixed-pitch grid. Width passed to
// MeasureHeight is divided by CharWidth to get columns; each wrapped line
// adds LineHeight.
type Monospace struct {
	CharWidth  int
	LineHeight int
}

// NewMonospace returns a grid backend, defaulting non-positive sizes to 1.
func NewMonospace(charWidth, lineHeight int) *Monospace {
	return &Monospace{
		CharWidth:  max(charWidth, 1),
		LineHeight: max(lineHeight, 1),
	}
}

// MeasureHeight returns the wrapped line count times LineHeight.
func (m *Monospace) MeasureHeight(text string, width int) (int, error) {
	return len(m.Wrap(text, width)) * max(m.LineHeight, 1), nil
}

// Wrap breaks text into lines that fit width/CharWidth columns.
func (m *Monospace) Wrap(text string, width int) []string {
	return WrapColumns(text, width/max(m.CharWidth, 1))
}

// WrapColumns greedily breaks text at Unicode line-break opportunities so
// no line is wider than columns cells. Segments wider than a whole line are
// split between grapheme clusters. Mandatory breaks always start a new line.
// The result always has at least one line.
func WrapColumns(text string, columns int) []string {
	columns = max(columns, 1)

	var (
		lines []string
		line  strings.Builder
		used  int
		state = -1
	)

	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		used = 0
	}

	rest := text
	for len(rest) > 0 {
		var (
			segment   string
			mustBreak bool
		)
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		body := strings.TrimRight(segment, "\r\n")
		fit := uniseg.StringWidth(strings.TrimRight(body, " "))

		if used > 0 && used+fit > columns {
			flush()
		}

		if fit > columns {
			used = splitGraphemes(body, columns, &line, &lines, used)
		} else {
			line.WriteString(body)
			used += uniseg.StringWidth(body)
		}

		if mustBreak && len(rest) > 0 {
			flush()
		}
	}

	lines = append(lines, strings.TrimRight(line.String(), " "))
	return lines
}

// splitGraphemes writes an over-long segment cluster by cluster, starting a
// new line whenever the current one is full. It returns the columns used on
// the last line.
func splitGraphemes(segment string, columns int, line *strings.Builder, lines *[]string, used int) int {
	graphemes := uniseg.NewGraphemes(segment)
	for graphemes.Next() {
		cluster := graphemes.Str()
		w := graphemes.Width()
		if used > 0 && used+w > columns {
			*lines = append(*lines, strings.TrimRight(line.String(), " "))
			line.Reset()
			used = 0
		}
		line.WriteString(cluster)
		used += w
	}
	return used
}
