// Package paint rasterises a display list onto a grid of terminal cells.
//
// Text is re-wrapped with the same Wrapper that measured it during layout,
// so painted lines break exactly where the layout assumed they would.
package paint

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
)

// Options configures a Painter.
type Options struct {
	// Wrapper breaks RenderText commands into rows. Required.
	Wrapper measure.Wrapper

	// CharWidth and LineHeight convert layout units to cells and rows.
	// Values below 1 mean 1.
	CharWidth  int
	LineHeight int

	// Color emits ANSI styling for backgrounds and foregrounds.
	Color bool
}

// Painter paints display lists.
type Painter struct {
	opts Options
}

// New creates a painter.
func New(opts Options) *Painter {
	opts.CharWidth = max(opts.CharWidth, 1)
	opts.LineHeight = max(opts.LineHeight, 1)
	return &Painter{opts: opts}
}

// cell is one terminal cell. An empty glyph marks the trailing half of a
// wide cluster.
type cell struct {
	glyph      string
	background *layout.Colour
	foreground *layout.Colour
}

// Canvas is a painted grid.
type Canvas struct {
	cols  int
	rows  [][]cell
	color bool
}

// Paint rasterises list into a canvas width units wide and height units tall.
func (p *Painter) Paint(list layout.DisplayList, width, height int) *Canvas {
	cols := max(width/p.opts.CharWidth, 0)
	rowCount := max(height/p.opts.LineHeight, 0)

	canvas := &Canvas{cols: cols, rows: make([][]cell, rowCount), color: p.opts.Color}
	for i := range canvas.rows {
		canvas.rows[i] = blankRow(cols)
	}

	for _, cmd := range list.Commands {
		switch c := cmd.(type) {
		case layout.RenderBox:
			if c.Background != nil {
				p.fill(canvas, c.Rect, c.Background)
			}
		case layout.RenderText:
			p.text(canvas, c)
		}
	}

	return canvas
}

func blankRow(cols int) []cell {
	row := make([]cell, cols)
	for i := range row {
		row[i] = cell{glyph: " "}
	}
	return row
}

func (p *Painter) fill(canvas *Canvas, rect layout.Rectangle, bg *layout.Colour) {
	x0, y0 := rect.X/p.opts.CharWidth, rect.Y/p.opts.LineHeight
	x1 := (rect.X + rect.W) / p.opts.CharWidth
	y1 := len(canvas.rows)
	if rect.H != layout.Unconstrained {
		y1 = (rect.Y + rect.H) / p.opts.LineHeight
	}

	colour := *bg
	for y := max(y0, 0); y < min(y1, len(canvas.rows)); y++ {
		for x := max(x0, 0); x < min(x1, canvas.cols); x++ {
			canvas.rows[y][x].background = &colour
		}
	}
}

func (p *Painter) text(canvas *Canvas, cmd layout.RenderText) {
	fg := cmd.Foreground
	x0 := cmd.X / p.opts.CharWidth
	y := cmd.Y / p.opts.LineHeight

	for _, line := range p.opts.Wrapper.Wrap(cmd.Text, cmd.Width) {
		if y >= len(canvas.rows) {
			return
		}
		if y >= 0 {
			canvas.put(y, x0, line, &fg)
		}
		y++
	}
}

// put writes line at (row, col) cluster by cluster, clipping at the right
// edge. Zero-width clusters occupy no cell and are skipped.
func (c *Canvas) put(row, col int, line string, fg *layout.Colour) {
	graphemes := uniseg.NewGraphemes(line)
	for graphemes.Next() {
		w := graphemes.Width()
		if col < 0 || col >= c.cols || col+w > c.cols {
			return
		}
		if w == 0 {
			continue
		}
		c.rows[row][col].glyph = graphemes.Str()
		c.rows[row][col].foreground = fg
		for i := 1; i < w; i++ {
			c.rows[row][col+i].glyph = ""
		}
		col += w
	}
}

// Rows returns the number of rows.
func (c *Canvas) Rows() int {
	return len(c.rows)
}

// String renders the canvas. Without colour, trailing spaces are trimmed
// from every row.
func (c *Canvas) String() string {
	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		if c.color {
			lines[i] = renderStyled(row)
		} else {
			lines[i] = renderPlain(row)
		}
	}
	return strings.Join(lines, "\n")
}

func renderPlain(row []cell) string {
	var sb strings.Builder
	for _, cl := range row {
		sb.WriteString(cl.glyph)
	}
	return strings.TrimRight(sb.String(), " ")
}

// renderStyled groups runs of cells sharing colours into one lipgloss render.
func renderStyled(row []cell) string {
	var (
		out strings.Builder
		seg strings.Builder
		cur cell
	)

	flush := func() {
		if seg.Len() == 0 {
			return
		}
		out.WriteString(styleFor(cur).Render(seg.String()))
		seg.Reset()
	}

	for i, cl := range row {
		if i == 0 || !sameStyle(cl, cur) {
			flush()
			cur = cl
		}
		seg.WriteString(cl.glyph)
	}
	flush()

	return out.String()
}

func sameStyle(a, b cell) bool {
	return sameColour(a.background, b.background) && sameColour(a.foreground, b.foreground)
}

func sameColour(a, b *layout.Colour) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// styleFor colours a cell. Foreground colours apply only over a filled
// background; elsewhere the terminal's own text colour is kept.
func styleFor(cl cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if cl.background == nil {
		return style
	}
	style = style.Background(lipgloss.Color(cl.background.Hex()))
	if cl.foreground != nil {
		style = style.Foreground(lipgloss.Color(cl.foreground.Hex()))
	}
	return style
}
