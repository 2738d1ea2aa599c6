package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/textengine/pkg/model"
)

// Markdown flavors.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Markdown imports Markdown source with goldmark.
type Markdown struct {
	flavor string
	md     goldmark.Markdown
}

// NewMarkdown creates an importer for the given flavor.
// Invalid flavors default to "gfm".
func NewMarkdown(flavor string) *Markdown {
	f := flavorOrDefault(flavor)
	return &Markdown{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (m *Markdown) Flavor() string {
	return m.flavor
}

// Import parses content and maps it onto a new document:
// paragraphs, headings, list items, code blocks and table rows become
// paragraphs, block quotes become info boxes, and every inline text node
// becomes its own run.
func (m *Markdown) Import(ctx context.Context, content []byte) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	reader := text.NewReader(content)
	gmDoc := m.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := model.NewDocument()
	mp := &mapper{doc: doc, content: content}
	if err := mp.mapBlocks(gmDoc, doc.Root()); err != nil {
		return nil, err
	}

	return doc, nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to GFM.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorGFM
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	// GFM without Linkify: autolink detection splits text nodes at every
	// trigger character, which would scatter one sentence over many runs.
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		))
	}

	return goldmark.New(opts...)
}

// mapper converts a goldmark AST into document elements.
type mapper struct {
	doc     *model.Document
	content []byte
}

// mapBlocks maps the block children of gmParent into frame.
func (m *mapper) mapBlocks(gmParent ast.Node, frame *model.Frame) error {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if err := m.mapBlock(child, frame); err != nil {
			return err
		}
	}
	return nil
}

// mapBlock converts a single goldmark block node.
func (m *mapper) mapBlock(gmNode ast.Node, frame *model.Frame) error {
	switch gmn := gmNode.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		return m.appendParagraph(frame, nil, m.inlineTexts(gmn))

	case *ast.Blockquote:
		return m.mapBlockquote(gmn, frame)

	case *ast.List:
		return m.mapList(gmn, frame)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return m.appendParagraph(frame, nil, []string{m.codeText(gmn)})

	case *east.Table:
		return m.mapTable(gmn, frame)

	case *ast.ThematicBreak, *ast.HTMLBlock:
		return nil

	default:
		return m.mapBlocks(gmNode, frame)
	}
}

// mapBlockquote wraps the quote's blocks in an info box.
func (m *mapper) mapBlockquote(quote *ast.Blockquote, frame *model.Frame) error {
	inner := model.NewFrame()
	if err := m.mapBlocks(quote, inner); err != nil {
		return err
	}
	box, err := model.NewInfoBox(inner)
	if err != nil {
		return err
	}
	return frame.AppendBlock(box)
}

// mapList flattens list items into paragraphs whose first run is the marker.
func (m *mapper) mapList(list *ast.List, frame *model.Frame) error {
	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + string(list.Marker) + " "
			number++
		}

		first := true
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if first {
					if err := m.appendParagraph(frame, []string{marker}, m.inlineTexts(child)); err != nil {
						return err
					}
					first = false
					continue
				}
			}
			if err := m.mapBlock(child, frame); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapTable turns every row into a paragraph of cells separated by " | ".
func (m *mapper) mapTable(table *east.Table, frame *model.Frame) error {
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var texts []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if len(texts) > 0 {
				texts = append(texts, " | ")
			}
			texts = append(texts, strings.Join(m.inlineTexts(cell), ""))
		}
		if err := m.appendParagraph(frame, nil, texts); err != nil {
			return err
		}
	}
	return nil
}

// appendParagraph adds a paragraph of prefix and texts to frame. Empty
// strings are dropped and a paragraph with no text is not added.
func (m *mapper) appendParagraph(frame *model.Frame, prefix, texts []string) error {
	runs := make([]string, 0, len(prefix)+len(texts))
	hasText := false
	for _, t := range texts {
		if t != "" {
			hasText = true
			break
		}
	}
	if !hasText {
		return nil
	}
	for _, t := range append(prefix, texts...) {
		if t != "" {
			runs = append(runs, t)
		}
	}

	paragraph, err := m.doc.NewParagraph(runs...)
	if err != nil {
		return err
	}
	return frame.AppendBlock(paragraph)
}

// inlineTexts collects the text of each inline leaf under gmNode.
// Soft line breaks become spaces and hard line breaks become newlines.
func (m *mapper) inlineTexts(gmNode ast.Node) []string {
	var texts []string

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Text:
				s := string(c.Value(m.content))
				switch {
				case c.HardLineBreak():
					s += "\n"
				case c.SoftLineBreak():
					s += " "
				}
				texts = append(texts, s)
			case *ast.String:
				texts = append(texts, string(c.Value))
			case *ast.AutoLink:
				texts = append(texts, string(c.Label(m.content)))
			case *ast.RawHTML:
				// Markup carries no text.
			case *east.TaskCheckBox:
				if c.IsChecked {
					texts = append(texts, "[x] ")
				} else {
					texts = append(texts, "[ ] ")
				}
			default:
				walk(child)
			}
		}
	}
	walk(gmNode)

	// A trailing break at the end of a block is not content.
	if n := len(texts); n > 0 {
		texts[n-1] = strings.TrimRight(texts[n-1], " \n")
	}
	return texts
}

// codeText joins the raw lines of a code block without the final newline.
func (m *mapper) codeText(gmNode ast.Node) string {
	var sb strings.Builder
	lines := gmNode.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(seg.Value(m.content))
	}
	return strings.TrimRight(sb.String(), "\n")
}
