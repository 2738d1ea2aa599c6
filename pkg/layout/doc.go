// Package layout turns a document tree into a display list.
//
// Layout happens in two steps. A Builder converts each element into a Box
// carrying margins, padding and colours. The Engine then walks the boxes
// top-down, stacking block children vertically and flattening a paragraph's
// inline children into one string whose wrapped height is reported by a
// Backend. Width flows down and height flows back up in the same recursive
// descent, so no separate measure pass is needed.
//
// Every call builds fresh boxes and a fresh display list; nothing is cached
// between calls and the document is only read.
package layout
