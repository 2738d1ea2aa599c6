// Package viewer is an interactive terminal viewer that lays a document
// out again every time the window is resized.
package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
	"github.com/yaklabco/textengine/pkg/model"
	"github.com/yaklabco/textengine/pkg/paint"
)

// footerHeight is the number of rows taken by the status bar.
const footerHeight = 1

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e6edf3")).
			Background(lipgloss.Color("#1c2128"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f85149")).
			Bold(true)
)

// Options configures a viewer Model.
type Options struct {
	Title   string
	Engine  *layout.Engine
	Backend measure.WrappingBackend

	// CharWidth and LineHeight convert layout units to cells and rows.
	CharWidth  int
	LineHeight int

	Color bool
}

// Model is the root BubbleTea model for the viewer.
type Model struct {
	doc  *model.Document
	opts Options

	// Layout state
	lines    []string
	height   int
	commands int

	// UI state
	width        int
	rows         int
	scrollOffset int

	err error
}

// New creates a viewer for doc.
func New(doc *model.Document, opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = layout.NewEngine(layout.Options{})
	}
	if opts.Backend == nil {
		opts.Backend = measure.Terminal{}
	}
	opts.CharWidth = max(opts.CharWidth, 1)
	opts.LineHeight = max(opts.LineHeight, 1)
	return Model{doc: doc, opts: opts}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.rows = max(msg.Height-footerHeight, 0)
		if msg.Width != m.width {
			m.width = msg.Width
			m.reflow()
		}
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// reflow lays the document out at the current width and repaints it.
func (m *Model) reflow() {
	width := m.width * m.opts.CharWidth

	result, err := m.opts.Engine.Layout(m.doc, width, m.opts.Backend)
	if err != nil {
		m.err = err
		m.lines = nil
		return
	}
	m.err = nil
	m.height = result.Height
	m.commands = result.DisplayList.Len()

	painter := paint.New(paint.Options{
		Wrapper:    m.opts.Backend,
		CharWidth:  m.opts.CharWidth,
		LineHeight: m.opts.LineHeight,
		Color:      m.opts.Color,
	})
	canvas := painter.Paint(result.DisplayList, width, result.Height)
	m.lines = strings.Split(canvas.String(), "\n")
	if canvas.Rows() == 0 {
		m.lines = nil
	}
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "j", "down":
		m.scrollOffset++
	case "k", "up":
		m.scrollOffset--
	case "pgdown", " ", "f":
		m.scrollOffset += max(m.rows, 1)
	case "pgup", "b":
		m.scrollOffset -= max(m.rows, 1)
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = len(m.lines)
	}
	m.clampScroll()
	return m, nil
}

func (m *Model) clampScroll() {
	m.scrollOffset = min(m.scrollOffset, max(len(m.lines)-m.rows, 0))
	m.scrollOffset = max(m.scrollOffset, 0)
}

// ScrollOffset returns the index of the first visible row.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	if m.err != nil {
		body = errorStyle.Render(fmt.Sprintf("layout failed: %v", m.err))
	} else {
		end := min(m.scrollOffset+m.rows, len(m.lines))
		visible := m.lines[m.scrollOffset:end]
		body = strings.Join(visible, "\n")
		if pad := m.rows - len(visible); pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer())
}

func (m Model) footer() string {
	title := m.opts.Title
	if title == "" {
		title = "textengine"
	}
	status := fmt.Sprintf(" %s  width %d  height %d  %d commands  %d/%d  q quit ",
		title, m.width, m.height, m.commands, min(m.scrollOffset+m.rows, len(m.lines)), len(m.lines))
	return footerStyle.Width(m.width).Render(ansi.Truncate(status, m.width, ""))
}
