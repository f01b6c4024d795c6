package md2pptx

import (
	"github.com/alnah/go-md2pptx/internal/block"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
	"github.com/alnah/go-md2pptx/internal/layout"
	"github.com/alnah/go-md2pptx/internal/render"
)

// Input contains conversion parameters.
type Input struct {
	Markdown  string // Markdown content (required)
	SourceDir string // Base directory for relative image paths (optional)
}

// Result holds the outcome of a conversion. Deck is populated when the
// default recording writer is used; with a custom DeckWriter the output
// lives wherever that writer put it and Deck is nil.
type Result struct {
	Deck     *Deck
	Warnings []Warning
}

// Content block types, re-exported for callers that build documents
// programmatically or inspect placements.
type (
	Block     = block.Block
	Paragraph = block.Paragraph
	List      = block.List
	Table     = block.Table
	Image     = block.Image
)

// Geometry and writer types, re-exported so a custom DeckWriter can be
// implemented without importing internal packages.
type (
	Rect       = layout.Rect
	TextRun    = render.TextRun
	Caption    = render.Caption
	DeckWriter = render.DeckWriter
	Deck       = render.Deck
	Slide      = render.Slide
	Element    = render.Element
	Warning    = render.Warning
)

// FontCategory names a font sizing category for overrides.
type FontCategory = fontcalc.Category

// Font categories accepted by WithBaseSize and WithSizeRange.
const (
	FontParentTitle = fontcalc.CategoryParentTitle
	FontTitle       = fontcalc.CategoryTitle
	FontText        = fontcalc.CategoryText
	FontTableHeader = fontcalc.CategoryTableHeader
	FontTableData   = fontcalc.CategoryTableData
	FontCaption     = fontcalc.CategoryCaption
)

// Option configures a Generator.
type Option func(*Generator)
