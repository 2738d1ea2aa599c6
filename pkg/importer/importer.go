// Package importer builds documents from Markdown and plain text input.
//
// Only the public document constructors are used, so an imported document
// is indistinguishable from one assembled by hand.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/textengine/pkg/model"
)

// ErrBinaryInput is returned when the input does not look like text.
var ErrBinaryInput = errors.New("input is binary")

// Options controls an import.
type Options struct {
	// Format forces the input format. FormatAuto or the empty string
	// detects it from the path and content.
	Format Format

	// Flavor selects the Markdown dialect ("commonmark" or "gfm").
	Flavor string
}

// Import converts content into a document. path is used only for format
// detection and may be empty.
func Import(ctx context.Context, path string, content []byte, opts Options) (*model.Document, Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, FormatAuto, fmt.Errorf("import cancelled: %w", err)
	}
	if enry.IsBinary(content) {
		return nil, FormatAuto, fmt.Errorf("import %s: %w", displayPath(path), ErrBinaryInput)
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(path, content)
	}

	var (
		doc *model.Document
		err error
	)
	switch format {
	case FormatMarkdown:
		doc, err = NewMarkdown(opts.Flavor).Import(ctx, content)
	case FormatText:
		doc, err = ImportText(content)
	default:
		return nil, format, fmt.Errorf("import %s: unknown format %q", displayPath(path), format)
	}
	if err != nil {
		return nil, format, fmt.Errorf("import %s: %w", displayPath(path), err)
	}

	return doc, format, nil
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
