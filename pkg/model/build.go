package model

import "fmt"

// Builder constructs a value of type T for each element kind.
// Layout engines implement it to turn the tree into their own box types
// without the tree knowing anything about layout.
type Builder[T any] interface {
	BuildFrame(f *Frame) (T, error)
	BuildParagraph(p *Paragraph) (T, error)
	BuildRun(r *Run) (T, error)
	BuildInfoBox(b *InfoBox) (T, error)
}

// Build dispatches e to the builder method matching its kind.
func Build[T any](e Element, b Builder[T]) (T, error) {
	var zero T

	if isNil(e) {
		return zero, ErrNilElement
	}

	switch v := e.(type) {
	case *Frame:
		return b.BuildFrame(v)
	case *Paragraph:
		return b.BuildParagraph(v)
	case *Run:
		return b.BuildRun(v)
	case *InfoBox:
		return b.BuildInfoBox(v)
	default:
		return zero, fmt.Errorf("build %T: %w", e, ErrUnsupported)
	}
}
