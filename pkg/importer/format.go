package importer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-enry/go-enry/v2"
)

// Format is an input format.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat converts a flag value to a Format. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatText, "txt":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown input format %q; must be one of: auto, markdown, text", s)
	}
}

// DetectFormat guesses the format of content. The file extension wins when
// it names Markdown or plain text; otherwise block-level Markdown syntax in
// the content selects Markdown.
func DetectFormat(path string, content []byte) Format {
	if path != "" {
		langs := enry.GetLanguagesByExtension(path, content, nil)
		switch {
		case slices.Contains(langs, "Markdown"):
			return FormatMarkdown
		case slices.Contains(langs, "Text"):
			return FormatText
		}
	}

	if looksLikeMarkdown(content) {
		return FormatMarkdown
	}
	return FormatText
}

// headingPrefixes are ATX heading markers; one is enough to pick Markdown.
//
//nolint:gochecknoglobals // Read-only lookup table.
var headingPrefixes = [][]byte{
	[]byte("# "),
	[]byte("## "),
	[]byte("### "),
	[]byte("#### "),
}

// blockPrefixes are other block markers; two lines are needed.
//
//nolint:gochecknoglobals // Read-only lookup table.
var blockPrefixes = [][]byte{
	[]byte("> "),
	[]byte("```"),
	[]byte("~~~"),
	[]byte("- "),
	[]byte("* "),
	[]byte("1. "),
}

func hasAnyPrefix(line []byte, prefixes [][]byte) bool {
	for _, prefix := range prefixes {
		if bytes.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// looksLikeMarkdown reports whether content uses Markdown block syntax.
func looksLikeMarkdown(content []byte) bool {
	hits := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimLeft(line, " ")
		if hasAnyPrefix(line, headingPrefixes) {
			return true
		}
		if hasAnyPrefix(line, blockPrefixes) {
			hits++
		}
	}
	return hits >= 2
}
