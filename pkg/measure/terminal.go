package measure

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal measures text in terminal cells using lipgloss word wrapping.
// One unit of width is one column and one unit of height is one row.
type Terminal struct{}

// MeasureHeight returns the number of rows text wraps to.
func (Terminal) MeasureHeight(text string, width int) (int, error) {
	return len(Terminal{}.Wrap(text, width)), nil
}

// Wrap renders text at width columns and returns its rows without padding.
func (Terminal) Wrap(text string, width int) []string {
	rendered := lipgloss.NewStyle().Width(max(width, 1)).Render(text)
	rows := strings.Split(rendered, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
	}
	return rows
}
