package measure

import (
	"fmt"

	"github.com/yaklabco/textengine/pkg/layout"
)

// Wrapper splits text into the lines a backend measured.
type Wrapper interface {
	Wrap(text string, width int) []string
}

// WrappingBackend is a backend whose line breaks can be replayed by a painter.
type WrappingBackend interface {
	layout.Backend
	Wrapper
}

// Backend names accepted by New.
const (
	NameTerminal  = "terminal"
	NameMonospace = "monospace"
)

// Names returns the accepted backend names.
func Names() []string {
	return []string{NameTerminal, NameMonospace}
}

// New returns the backend registered under name.
// Monospace uses charWidth and lineHeight; Terminal ignores them.
func New(name string, charWidth, lineHeight int) (WrappingBackend, error) {
	switch name {
	case NameTerminal, "":
		return Terminal{}, nil
	case NameMonospace:
		return NewMonospace(charWidth, lineHeight), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// Fixed reports Height for every input.
type Fixed struct {
	Height int
}

// MeasureHeight returns f.Height.
func (f Fixed) MeasureHeight(_ string, _ int) (int, error) {
	return f.Height, nil
}

var (
	_ layout.Backend  = Fixed{}
	_ WrappingBackend = Terminal{}
	_ WrappingBackend = (*Monospace)(nil)
)
