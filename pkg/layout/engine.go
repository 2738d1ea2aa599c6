package layout

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/textengine/pkg/model"
)

// Options configures an Engine.
type Options struct {
	// Builder converts elements to boxes. Defaults to NewDefaultBuilder().
	Builder model.Builder[*Box]

	// Logger receives debug records for each pass. Nil disables logging.
	Logger *log.Logger
}

// Engine lays out documents with a fixed box policy.
type Engine struct {
	builder model.Builder[*Box]
	logger  *log.Logger
}

// NewEngine creates an engine from opts.
func NewEngine(opts Options) *Engine {
	builder := opts.Builder
	if builder == nil {
		builder = NewDefaultBuilder()
	}
	return &Engine{builder: builder, logger: opts.Logger}
}

// Result is the output of one layout pass.
type Result struct {
	DisplayList DisplayList

	// Height is the total height required by the document.
	Height int
}

// Layout lays out doc with the default builder.
func Layout(doc *model.Document, width int, backend Backend) (DisplayList, int, error) {
	result, err := NewEngine(Options{}).Layout(doc, width, backend)
	if err != nil {
		return DisplayList{}, 0, err
	}
	return result.DisplayList, result.Height, nil
}

// BuildTree converts the document into a fresh box tree.
func (e *Engine) BuildTree(doc *model.Document) (*Box, error) {
	return model.Build[*Box](doc.Root(), e.builder)
}

// Layout builds the box tree for doc and lays it out in a viewport of the
// given width and unconstrained height. Errors from the backend are
// returned unchanged.
func (e *Engine) Layout(doc *model.Document, width int, backend Backend) (*Result, error) {
	root, err := e.BuildTree(doc)
	if err != nil {
		return nil, err
	}

	pass := &pass{doc: doc, backend: backend}
	viewport := Rectangle{X: 0, Y: 0, W: width, H: Unconstrained}

	commands, height, err := pass.layout(root, viewport)
	if err != nil {
		return nil, err
	}

	if e.logger != nil {
		e.logger.Debug("layout complete",
			"width", width,
			"height", height,
			"commands", len(commands),
			"measurements", pass.measured,
		)
	}

	return &Result{
		DisplayList: DisplayList{Commands: commands},
		Height:      height,
	}, nil
}

// pass holds the state of a single layout call.
type pass struct {
	doc      *model.Document
	backend  Backend
	measured int
}

// layout places box inside rect and returns its commands and required height.
func (p *pass) layout(box *Box, rect Rectangle) ([]Command, int, error) {
	edges := box.Edges()
	width := max(rect.W, 0)

	content := Rectangle{
		X: rect.X + edges.Left,
		Y: rect.Y + edges.Top,
		W: max(width-edges.Horizontal(), 0),
		H: Unconstrained,
	}

	var (
		children      []Command
		contentHeight int
		err           error
	)

	if box.HasInlineChildren() {
		children, contentHeight, err = p.layoutInline(box, content)
	} else {
		children, contentHeight, err = p.layoutBlocks(box, content)
	}
	if err != nil {
		return nil, 0, err
	}

	height := contentHeight + edges.Vertical()

	// Only block boxes with children or a background paint themselves.
	if box.Background == nil && (box.HasInlineChildren() || len(box.Children) == 0) {
		return children, height, nil
	}

	commands := make([]Command, 0, len(children)+1)
	commands = append(commands, RenderBox{
		Rect:       Rectangle{X: rect.X, Y: rect.Y, W: width, H: height},
		Background: box.Background,
	})
	commands = append(commands, children...)

	return commands, height, nil
}

// layoutBlocks stacks block children from the top of content.
func (p *pass) layoutBlocks(box *Box, content Rectangle) ([]Command, int, error) {
	var commands []Command
	height := 0

	for _, child := range box.Children {
		viewport := Rectangle{X: content.X, Y: content.Y + height, W: content.W, H: Unconstrained}
		childCommands, childHeight, err := p.layout(child, viewport)
		if err != nil {
			return nil, 0, err
		}
		height += childHeight
		commands = append(commands, childCommands...)
	}

	return commands, height, nil
}

// layoutInline flattens the inline children into one string and measures it.
func (p *pass) layoutInline(box *Box, content Rectangle) ([]Command, int, error) {
	var sb strings.Builder
	for _, child := range box.Children {
		if child.Run == nil {
			continue
		}
		text, err := p.doc.Resolve(child.Run)
		if err != nil {
			return nil, 0, err
		}
		sb.WriteString(text)
	}
	text := sb.String()

	height, err := p.backend.MeasureHeight(text, content.W)
	if err != nil {
		return nil, 0, err
	}
	p.measured++

	return []Command{RenderText{
		X:          content.X,
		Y:          content.Y,
		Width:      content.W,
		Text:       text,
		Foreground: box.Foreground,
	}}, height, nil
}
