package piece

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations.
var (
	// ErrInvalidOffset is returned when an insertion offset lies past the end
	// of the text or inside a multi-byte UTF-8 sequence.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrCorruptRun is returned when a span addresses bytes outside its buffer.
	ErrCorruptRun = errors.New("corrupt run")

	// ErrInvalidText is returned when inserted text is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")
)

// OffsetError describes a rejected insertion offset.
type OffsetError struct {
	Offset int
	Length int
	Reason string
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("offset %d (length %d): %s", e.Offset, e.Length, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidOffset.
func (e *OffsetError) Unwrap() error {
	return ErrInvalidOffset
}

// RunError describes a span that cannot be resolved against its buffer.
type RunError struct {
	Span      Span
	BufferLen int
}

func (e *RunError) Error() string {
	return fmt.Sprintf("span %s [%d:%d] exceeds buffer length %d",
		e.Span.Source, e.Span.Start, e.Span.End, e.BufferLen)
}

// Unwrap lets errors.Is match ErrCorruptRun.
func (e *RunError) Unwrap() error {
	return ErrCorruptRun
}
