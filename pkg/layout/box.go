package layout

import "github.com/yaklabco/textengine/pkg/model"

// Flow distinguishes block boxes from inline boxes.
type Flow uint8

const (
	// BlockFlow boxes stack their children vertically.
	BlockFlow Flow = iota

	// InlineFlow boxes carry text that flows horizontally.
	InlineFlow
)

// String returns the flow name.
func (f Flow) String() string {
	switch f {
	case BlockFlow:
		return "block"
	case InlineFlow:
		return "inline"
	default:
		return "unknown"
	}
}

// Box is the geometric counterpart of a document element for one layout pass.
type Box struct {
	Flow Flow

	// Source is the kind of element this box was built from.
	Source model.Kind

	Margins    Extents
	Padding    Extents
	Background *Colour
	Foreground Colour

	// Children holds either block boxes or inline boxes, never both.
	Children []*Box

	// Run is the text carried by an inline box.
	Run *model.Run
}

// Edges returns margins plus padding.
func (b *Box) Edges() Extents {
	return b.Margins.Add(b.Padding)
}

// HasInlineChildren reports whether the box's content is inline flow.
func (b *Box) HasInlineChildren() bool {
	return len(b.Children) > 0 && b.Children[0].Flow == InlineFlow
}
