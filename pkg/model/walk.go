package model

// WalkFunc is called for each element during a walk.
// Return a non-nil error to stop the walk.
type WalkFunc func(e Element) error

// Children returns the direct children of e in document order.
func Children(e Element) []Element {
	switch v := e.(type) {
	case *Frame:
		out := make([]Element, len(v.children))
		for i, child := range v.children {
			out[i] = child
		}
		return out
	case *Paragraph:
		out := make([]Element, len(v.children))
		for i, child := range v.children {
			out[i] = child
		}
		return out
	case *InfoBox:
		if v.frame == nil {
			return nil
		}
		return []Element{v.frame}
	default:
		return nil
	}
}

// Walk traverses the tree rooted at root depth-first.
// Enter is called before a node's children and leave after them.
// Either callback may be nil.
func Walk(root Element, enter, leave WalkFunc) error {
	if isNil(root) {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for _, child := range Children(root) {
		if err := Walk(child, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// Runs returns every run under root in document order.
func Runs(root Element) []*Run {
	var runs []*Run

	//nolint:errcheck,revive // the callback never fails
	Walk(root, func(e Element) error {
		if run, ok := e.(*Run); ok {
			runs = append(runs, run)
		}
		return nil
	}, nil)

	return runs
}

// Paragraphs returns every paragraph under root in document order.
func Paragraphs(root Element) []*Paragraph {
	var paragraphs []*Paragraph

	//nolint:errcheck,revive // the callback never fails
	Walk(root, func(e Element) error {
		if p, ok := e.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
		return nil
	}, nil)

	return paragraphs
}
