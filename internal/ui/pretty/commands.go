package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/textengine/pkg/layout"
)

// FormatCommand formats a single display list command on one line.
func (s *Styles) FormatCommand(cmd layout.Command) string {
	switch c := cmd.(type) {
	case layout.RenderBox:
		line := fmt.Sprintf("%s %s", s.BoxKind.Render("box "), s.FormatRect(c.Rect))
		if c.Background != nil {
			line += " " + s.Dim.Render("bg=") + s.Swatch.Render(c.Background.Hex())
		}
		return line
	case layout.RenderText:
		pos := fmt.Sprintf("x=%d y=%d w=%d", c.X, c.Y, c.Width)
		return fmt.Sprintf("%s %s %s", s.TextKind.Render("text"), s.Rect.Render(pos), s.Text.Render(strconv.Quote(c.Text)))
	default:
		return fmt.Sprintf("unknown command %T", cmd)
	}
}

// FormatRect formats a rectangle as x/y/w/h, printing an unconstrained
// height as "auto".
func (s *Styles) FormatRect(r layout.Rectangle) string {
	h := strconv.Itoa(r.H)
	if r.H == layout.Unconstrained {
		h = "auto"
	}
	return s.Rect.Render(fmt.Sprintf("x=%d y=%d w=%d h=%s", r.X, r.Y, r.W, h))
}

// FormatDisplayList formats every command in order, one per line.
func (s *Styles) FormatDisplayList(list layout.DisplayList) string {
	var builder strings.Builder
	for i, cmd := range list.Commands {
		builder.WriteString(s.Dim.Render(fmt.Sprintf("%3d ", i)))
		builder.WriteString(s.FormatCommand(cmd))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatVersion formats one entry of a document's version history.
// The inserted text is highlighted when it can be located at offset.
func (s *Styles) FormatVersion(version int, text string, offset int, inserted string) string {
	label := s.VersionLabel.Render(fmt.Sprintf("v%d:", version))

	body := strconv.Quote(text)
	if inserted != "" && offset >= 0 && offset+len(inserted) <= len(text) && text[offset:offset+len(inserted)] == inserted {
		before := strconv.Quote(text[:offset])
		after := strconv.Quote(text[offset+len(inserted):])
		middle := strconv.Quote(inserted)
		// Strip the quotes strconv adds so the three pieces read as one literal.
		body = before[:len(before)-1] + s.Inserted.Render(middle[1:len(middle)-1]) + after[1:]
	}

	return label + " " + body
}
