package layout

// Backend measures wrapped text. Implementations are supplied by the host,
// for example a font shaper or a terminal cell grid.
type Backend interface {
	// MeasureHeight returns the height text occupies when wrapped to width.
	MeasureHeight(text string, width int) (int, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(text string, width int) (int, error)

// MeasureHeight calls f.
func (f BackendFunc) MeasureHeight(text string, width int) (int, error) {
	return f(text, width)
}
