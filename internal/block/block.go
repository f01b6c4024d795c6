// Package block defines the closed set of content block kinds extracted
// from a Markdown subsection. The layout planner matches exhaustively on
// this set, so adding a kind is a compile-time event for every consumer.
package block

import "strings"

// Block is one unit of subsection content: a paragraph, a list, a table,
// or an image. Blocks are immutable once produced by the parser.
type Block interface {
	isBlock()
}

// Paragraph is a plain run of text.
type Paragraph struct {
	Text string
}

// List is an ordered sequence of bullet items.
type List struct {
	Items []string
}

// Table holds the raw pipe-delimited source lines of a Markdown table
// (header, separator, data rows) plus an optional caption. Row and column
// counts are derived heuristically from the lines at layout time.
type Table struct {
	Lines   []string
	Caption string
}

// Image references a picture by source path with an optional caption.
// The path may be relative to the source document.
type Image struct {
	Source  string
	Caption string
}

func (Paragraph) isBlock() {}
func (List) isBlock()      {}
func (Table) isBlock()     {}
func (Image) isBlock()     {}

// Text joins the table's raw lines, mirroring how single-table layouts
// estimate the grid shape from unstructured text.
func (t Table) Text() string {
	return strings.Join(t.Lines, "\n")
}

// IsTextual reports whether b contributes to the text composition bucket.
func IsTextual(b Block) bool {
	switch b.(type) {
	case Paragraph, List:
		return true
	}
	return false
}

// TextAmount counts list items plus paragraphs across blocks. It is the
// content-volume input for font sizing and layout classification.
func TextAmount(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		switch v := b.(type) {
		case Paragraph:
			n++
		case List:
			n += len(v.Items)
		}
	}
	return n
}
