// Package piece implements the piece-table text storage used by documents.
//
// Text lives in two buffers: an original buffer written once at creation
// and an edit buffer that only ever grows. A Span addresses a half-open byte
// range in one of them. Inserting text appends to the edit buffer and splits
// the affected span, so existing bytes are never copied or rewritten.
package piece
