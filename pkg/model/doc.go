// Package model defines the document tree: a typed hierarchy of frames,
// paragraphs, info boxes and text runs built over a piece table.
//
// Block and Inline are distinct interfaces, so a Paragraph can only ever
// hold inline children and a Frame only block children. Runs are the only
// leaves that carry text; each one addresses a span in the document's
// buffers and is minted by the Document that owns those buffers.
//
// Documents are not safe for concurrent use. Callers serialize edits and
// reads, typically on a single UI loop.
package model
