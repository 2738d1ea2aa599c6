package model

import "errors"

var (
	// ErrNilElement is returned when a nil element is passed where a node is required.
	ErrNilElement = errors.New("nil element")

	// ErrAlreadyAttached is returned when appending a node that already has a parent.
	ErrAlreadyAttached = errors.New("element already attached to a parent")

	// ErrCycle is returned when appending a node would make it its own ancestor.
	ErrCycle = errors.New("element would become its own ancestor")

	// ErrForeignRun is returned when a run minted by another document is used.
	ErrForeignRun = errors.New("run belongs to a different document")

	// ErrUnsupported is returned by builders that do not handle an element kind.
	ErrUnsupported = errors.New("not implemented")
)
