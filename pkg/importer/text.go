package importer

import (
	"regexp"
	"strings"

	"github.com/yaklabco/textengine/pkg/model"
)

// blankLines separates paragraphs in plain text.
//
//nolint:gochecknoglobals // Compiled once.
var blankLines = regexp.MustCompile(`\n[ \t]*\n\s*`)

// ImportText builds a document with one paragraph per blank-line separated
// block. Single newlines stay inside the paragraph as hard breaks.
func ImportText(content []byte) (*model.Document, error) {
	doc := model.NewDocument()

	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	for _, block := range blankLines.Split(strings.Trim(normalized, "\n"), -1) {
		block = strings.TrimRight(block, " \t\n")
		if block == "" {
			continue
		}
		paragraph, err := doc.NewParagraph(block)
		if err != nil {
			return nil, err
		}
		if err := doc.Root().AppendBlock(paragraph); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
