package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/textengine/pkg/layout"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 7 // #, KIND, X, Y, W, H, DETAIL
	minIndexWidth    = 3
	minNumberWidth   = 4
	minDetailWidth   = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single display list command in the table.
type TableRow struct {
	Index  int
	Kind   string
	X      string
	Y      string
	W      string
	H      string
	Detail string
}

// TableFormatter formats display lists as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats a display list as a table followed by a summary line.
func (t *TableFormatter) FormatTable(list layout.DisplayList, height int) string {
	if list.Len() == 0 {
		return ""
	}

	rows := make([]TableRow, 0, list.Len())
	for i, cmd := range list.Commands {
		rows = append(rows, CommandToTableRow(i, cmd))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatRow(TableRow{Kind: "KIND", X: "X", Y: "Y", W: "W", H: "H", Detail: "DETAIL"}, widths, "#"))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths, strconv.Itoa(row.Index)))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.FormatSummaryOneLine(Summarize(list, height)))

	return builder.String()
}

type columnWidths struct {
	index  int
	kind   int
	number int
	detail int
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		index:  minIndexWidth,
		kind:   len("KIND"),
		number: minNumberWidth,
		detail: minDetailWidth,
	}

	for _, row := range rows {
		widths.index = max(widths.index, len(strconv.Itoa(row.Index)))
		widths.kind = max(widths.kind, len(row.Kind))
		widths.number = max(widths.number, len(row.X), len(row.Y), len(row.W), len(row.H))
		widths.detail = max(widths.detail, len(row.Detail))
	}

	// Constrain to terminal width by shrinking the detail column.
	if total := t.calculateTotalWidth(widths); total > t.termWidth {
		widths.detail = max(minDetailWidth, widths.detail-(total-t.termWidth))
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.index + widths.kind + 4*widths.number + widths.detail + tablePadding*tableColumnCount
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths, index string) string {
	content := fmt.Sprintf(" %*s  %-*s  %*s  %*s  %*s  %*s  %s",
		widths.index, index,
		widths.kind, row.Kind,
		widths.number, row.X,
		widths.number, row.Y,
		widths.number, row.W,
		widths.number, row.H,
		truncateString(row.Detail, widths.detail),
	)

	switch row.Kind {
	case "KIND":
		return t.styles.TableHeader.Render(content)
	case kindBox:
		return t.styles.BoxKind.Render(content)
	default:
		return content
	}
}

const (
	kindBox  = "box"
	kindText = "text"
)

// CommandToTableRow converts a display list command to a table row.
func CommandToTableRow(index int, cmd layout.Command) TableRow {
	switch c := cmd.(type) {
	case layout.RenderBox:
		h := strconv.Itoa(c.Rect.H)
		if c.Rect.H == layout.Unconstrained {
			h = "auto"
		}
		detail := ""
		if c.Background != nil {
			detail = "bg " + c.Background.Hex()
		}
		return TableRow{
			Index:  index,
			Kind:   kindBox,
			X:      strconv.Itoa(c.Rect.X),
			Y:      strconv.Itoa(c.Rect.Y),
			W:      strconv.Itoa(c.Rect.W),
			H:      h,
			Detail: detail,
		}
	case layout.RenderText:
		return TableRow{
			Index:  index,
			Kind:   kindText,
			X:      strconv.Itoa(c.X),
			Y:      strconv.Itoa(c.Y),
			W:      strconv.Itoa(c.Width),
			H:      "-",
			Detail: strconv.Quote(c.Text),
		}
	default:
		return TableRow{Index: index, Kind: fmt.Sprintf("%T", cmd)}
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
