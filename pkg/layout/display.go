package layout

// Command is one paint instruction. Implementations are RenderBox and RenderText.
type Command interface {
	command()
}

// RenderBox paints a rectangle, filled with Background when it is set.
type RenderBox struct {
	Rect       Rectangle `json:"rect" yaml:"rect"`
	Background *Colour   `json:"background,omitempty" yaml:"background,omitempty"`
}

// RenderText paints text wrapped to Width with its top-left corner at (X, Y).
type RenderText struct {
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	Width      int    `json:"width" yaml:"width"`
	Text       string `json:"text" yaml:"text"`
	Foreground Colour `json:"foreground" yaml:"foreground"`
}

func (RenderBox) command()  {}
func (RenderText) command() {}

// DisplayList is the ordered output of a layout pass, back to front.
type DisplayList struct {
	Commands []Command
}

// Len returns the number of commands.
func (d DisplayList) Len() int {
	return len(d.Commands)
}
