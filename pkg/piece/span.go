package piece

// Source identifies which buffer a span reads from.
type Source uint8

const (
	// Original is the buffer filled once when the document is created.
	Original Source = iota

	// Edits is the append-only buffer that receives inserted text.
	Edits
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case Original:
		return "original"
	case Edits:
		return "edits"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) into one buffer.
type Span struct {
	Source Source
	Start  int
	End    int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// SplitAt cuts the span at a byte offset relative to its start.
// The offset must satisfy 0 <= at <= Len().
func (s Span) SplitAt(at int) (Span, Span) {
	mid := s.Start + at
	return Span{Source: s.Source, Start: s.Start, End: mid},
		Span{Source: s.Source, Start: mid, End: s.End}
}
