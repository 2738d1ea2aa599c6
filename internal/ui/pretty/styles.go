// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Message levels
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Display list components
	BoxKind  lipgloss.Style
	TextKind lipgloss.Style
	Rect     lipgloss.Style
	Text     lipgloss.Style
	Swatch   lipgloss.Style

	// Version history
	VersionLabel lipgloss.Style
	Inserted     lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Command help
	Command lipgloss.Style
	Heading lipgloss.Style
	Flag    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		BoxKind:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		TextKind: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Rect:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Text:     lipgloss.NewStyle(),
		Swatch:   lipgloss.NewStyle(),

		VersionLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Inserted:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Underline(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Info:           plain,
		BoxKind:        plain,
		TextKind:       plain,
		Rect:           plain,
		Text:           plain,
		Swatch:         plain,
		VersionLabel:   plain,
		Inserted:       plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Command:        plain,
		Heading:        plain,
		Flag:           plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
