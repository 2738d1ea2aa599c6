package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/textengine/pkg/layout"
)

const summaryDividerWidth = 40

// Stats counts the commands of a layout pass.
type Stats struct {
	Commands int
	Boxes    int
	Texts    int
	Filled   int
	Height   int
}

// Summarize computes Stats for a display list and its total height.
func Summarize(list layout.DisplayList, height int) Stats {
	stats := Stats{Commands: list.Len(), Height: height}
	for _, cmd := range list.Commands {
		switch c := cmd.(type) {
		case layout.RenderBox:
			stats.Boxes++
			if c.Background != nil {
				stats.Filled++
			}
		case layout.RenderText:
			stats.Texts++
		}
	}
	return stats
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats layout statistics as a single line.
// Example: "3 commands (2 boxes, 1 text), height 20".
func (s *Styles) FormatSummaryOneLine(stats Stats) string {
	if stats.Commands == 0 {
		return s.Dim.Render("Empty display list") + "\n"
	}

	counts := fmt.Sprintf("%d %s (%d %s, %d %s)",
		stats.Commands, plural(stats.Commands, "command", "commands"),
		stats.Boxes, plural(stats.Boxes, "box", "boxes"),
		stats.Texts, plural(stats.Texts, "text", "texts"),
	)

	return s.Success.Render(counts) + ", height " + s.SummaryValue.Render(strconv.Itoa(stats.Height)) + "\n"
}

// FormatSummary formats layout statistics as a summary block.
func (s *Styles) FormatSummary(stats Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Commands:      " + s.SummaryValue.Render(strconv.Itoa(stats.Commands)) + "\n")
	builder.WriteString("    Boxes:       " + s.SummaryValue.Render(strconv.Itoa(stats.Boxes)) + "\n")
	if stats.Filled > 0 {
		builder.WriteString("      Filled:    " + s.SummaryValue.Render(strconv.Itoa(stats.Filled)) + "\n")
	}
	builder.WriteString("    Texts:       " + s.SummaryValue.Render(strconv.Itoa(stats.Texts)) + "\n")
	builder.WriteString("  Height:        " + s.SummaryValue.Render(strconv.Itoa(stats.Height)) + "\n")

	return builder.String()
}
