package model

import "github.com/yaklabco/textengine/pkg/piece"

// Kind classifies the type of a document element.
type Kind uint8

// Element kinds.
const (
	KindFrame Kind = iota
	KindParagraph
	KindInfoBox
	KindRun
)

// String returns the element kind name.
func (k Kind) String() string {
	switch k {
	case KindFrame:
		return "Frame"
	case KindParagraph:
		return "Paragraph"
	case KindInfoBox:
		return "InfoBox"
	case KindRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// Element is any node of the document tree.
// The set of implementations is closed: Frame, Paragraph, InfoBox and Run.
type Element interface {
	Kind() Kind
	Parent() Element
	element() *node
}

// Block is an element that stacks vertically inside a Frame.
type Block interface {
	Element
	block()
}

// Inline is an element that flows horizontally inside a Paragraph.
type Inline interface {
	Element
	inline()
}

// node holds the structural state shared by every element.
type node struct {
	parent Element
	root   bool

	// owner is the buffer set the runs under this node resolve against.
	// It stays nil on a detached subtree that holds no run yet.
	owner *piece.Buffers
}

func (n *node) Parent() Element {
	return n.parent
}

// isNil reports whether e is nil or wraps a nil pointer.
func isNil(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Frame:
		return v == nil
	case *Paragraph:
		return v == nil
	case *InfoBox:
		return v == nil
	case *Run:
		return v == nil
	default:
		return false
	}
}

// checkAttach verifies that child may be placed under parent.
func checkAttach(parent, child Element) error {
	if isNil(child) {
		return ErrNilElement
	}

	n := child.element()
	if n.parent != nil || n.root {
		return ErrAlreadyAttached
	}

	for ancestor := parent; !isNil(ancestor); ancestor = ancestor.Parent() {
		if ancestor == child {
			return ErrCycle
		}
	}

	if want := ownerOf(parent); want != nil && n.owner != nil && want != n.owner {
		return ErrForeignRun
	}

	return nil
}

// attach links child under parent and records the child's owner on every
// ancestor that has none yet. Callers run checkAttach first.
func attach(parent, child Element) {
	n := child.element()
	n.parent = parent
	if n.owner == nil {
		return
	}
	for e := parent; !isNil(e) && e.element().owner == nil; e = e.Parent() {
		e.element().owner = n.owner
	}
}

// ownerOf returns the nearest owner recorded on e or its ancestors.
func ownerOf(e Element) *piece.Buffers {
	for ; !isNil(e); e = e.Parent() {
		if owner := e.element().owner; owner != nil {
			return owner
		}
	}
	return nil
}
