package layout

import (
	"fmt"
	"strconv"
)

// Rectangle is an axis-aligned area. H of -1 means the height is unconstrained.
type Rectangle struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Unconstrained is the height used for rectangles that may grow without limit.
const Unconstrained = -1

// Extents is a four-sided spacing such as margins or padding.
type Extents struct {
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Right  int `json:"right" yaml:"right"`
}

// Uniform returns extents with the same value on every side.
func Uniform(v int) Extents {
	return Extents{Top: v, Left: v, Bottom: v, Right: v}
}

// Horizontal returns Left + Right.
func (e Extents) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Extents) Vertical() int {
	return e.Top + e.Bottom
}

// Add returns the side-by-side sum of two extents.
func (e Extents) Add(o Extents) Extents {
	return Extents{
		Top:    e.Top + o.Top,
		Left:   e.Left + o.Left,
		Bottom: e.Bottom + o.Bottom,
		Right:  e.Right + o.Right,
	}
}

// Colour is an RGB colour with 0 to 255 channels.
type Colour struct {
	Red   uint8 `json:"red" yaml:"red"`
	Green uint8 `json:"green" yaml:"green"`
	Blue  uint8 `json:"blue" yaml:"blue"`
}

// Common colours.
var (
	Black = Colour{}
	White = Colour{Red: 255, Green: 255, Blue: 255}

	// InfoBoxBackground is the default call-out background.
	InfoBoxBackground = Colour{Red: 222, Green: 235, Blue: 255}
)

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// ParseColour parses "#rrggbb" or "rrggbb".
func ParseColour(s string) (Colour, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Colour{}, fmt.Errorf("parse colour %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Colour{Red: uint8(v >> 16), Green: uint8(v >> 8), Blue: uint8(v)}, nil
}
