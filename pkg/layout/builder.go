package layout

import (
	"github.com/yaklabco/textengine/pkg/model"
)

// DefaultInfoBoxPadding is the padding applied on every side of an info box.
const DefaultInfoBoxPadding = 10

// DefaultBuilder is the standard box policy: frames and paragraphs are plain
// block boxes, runs are inline boxes, and info boxes are padded and shaded.
type DefaultBuilder struct {
	InfoBoxPadding    int
	InfoBoxBackground Colour
	Foreground        Colour
}

// NewDefaultBuilder returns a builder with the standard padding and colours.
func NewDefaultBuilder() *DefaultBuilder {
	return &DefaultBuilder{
		InfoBoxPadding:    DefaultInfoBoxPadding,
		InfoBoxBackground: InfoBoxBackground,
		Foreground:        Black,
	}
}

var _ model.Builder[*Box] = (*DefaultBuilder)(nil)

// BuildFrame wraps one block box per child.
func (b *DefaultBuilder) BuildFrame(f *model.Frame) (*Box, error) {
	box := b.block(model.KindFrame)
	for _, child := range f.Children() {
		sub, err := model.Build[*Box](child, b)
		if err != nil {
			return nil, err
		}
		box.Children = append(box.Children, sub)
	}
	return box, nil
}

// BuildParagraph wraps one inline box per child.
func (b *DefaultBuilder) BuildParagraph(p *model.Paragraph) (*Box, error) {
	box := b.block(model.KindParagraph)
	for _, child := range p.Children() {
		sub, err := model.Build[*Box](child, b)
		if err != nil {
			return nil, err
		}
		box.Children = append(box.Children, sub)
	}
	return box, nil
}

// BuildRun returns a childless inline box carrying the run.
func (b *DefaultBuilder) BuildRun(r *model.Run) (*Box, error) {
	return &Box{
		Flow:       InlineFlow,
		Source:     model.KindRun,
		Foreground: b.Foreground,
		Run:        r,
	}, nil
}

// BuildInfoBox wraps the layout of the inner frame with padding and a background.
func (b *DefaultBuilder) BuildInfoBox(info *model.InfoBox) (*Box, error) {
	inner, err := model.Build[*Box](info.Frame(), b)
	if err != nil {
		return nil, err
	}

	background := b.InfoBoxBackground
	box := b.block(model.KindInfoBox)
	box.Padding = Uniform(b.InfoBoxPadding)
	box.Background = &background
	box.Children = []*Box{inner}
	return box, nil
}

func (b *DefaultBuilder) block(source model.Kind) *Box {
	return &Box{
		Flow:       BlockFlow,
		Source:     source,
		Foreground: b.Foreground,
	}
}
