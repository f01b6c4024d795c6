// Package layout decides where subsection content goes on a slide. Given
// the composition of a block sequence (text volume, table count, image
// count) it selects one of seven layout archetypes and computes a rectangle
// for every element, including caption strips, so nothing overflows the
// slide. Planning is pure geometry: the same blocks and area always yield
// an identical plan.
package layout

import (
	"github.com/alnah/go-md2pptx/internal/block"
)

// Slide canvas geometry in inches, for the default 13.33x7.5 template.
const (
	CanvasWidth  = 13.33
	ContentLeft  = 1.0
	ContentWidth = 11.0
	PageBottom   = 7.5
)

// Image layout constants. Aspect ratios are assumed, not measured: the
// planner never reads image files, so a single image is treated as 16:9 and
// a row of images as 4:3. Pictures with other shapes stretch accordingly.
const (
	aspectSingle = 16.0 / 9.0
	aspectMulti  = 4.0 / 3.0
	imageGap     = 0.3

	// MaxImagesPerSlide caps how many images one slide renders; extras are
	// dropped and reported on the plan.
	MaxImagesPerSlide = 3
)

// Caption strip geometry.
const (
	captionHeight = 0.3
	captionGap    = 0.1
)

// Rect is a rectangle on the slide canvas, in inches.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns the y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// ContentArea is the rectangle available below a slide's heading.
type ContentArea struct {
	Top    float64
	Height float64
	Width  float64
}

// NewContentArea returns a content area with the fixed template width.
func NewContentArea(top, height float64) ContentArea {
	return ContentArea{Top: top, Height: height, Width: ContentWidth}
}

// Kind discriminates placement instructions.
type Kind int

const (
	KindText Kind = iota
	KindImage
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// Placement is one computed instruction: a rectangle plus the content that
// will render inside it. Exactly one of the payload groups is populated,
// per Kind.
type Placement struct {
	Kind Kind
	Rect Rect

	// Text payload: the list/paragraph blocks sharing one text frame.
	TextBlocks []block.Block

	// Image payload.
	Source string

	// Table payload. Data is nil when only the grid shape is known.
	Rows int
	Cols int
	Data [][]string

	// Caption strip below an image or table. Nil for text placements.
	Caption     string
	CaptionRect *Rect
}

// Archetype names the layout strategy chosen for a slide.
type Archetype int

const (
	ArchetypeEmpty Archetype = iota
	ArchetypeImagesOnly
	ArchetypeTableOnly
	ArchetypeTextTable
	ArchetypeTextImages
	ArchetypeTableImages
	ArchetypeTextTableImages
	ArchetypeComplex
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeEmpty:
		return "empty"
	case ArchetypeImagesOnly:
		return "images-only"
	case ArchetypeTableOnly:
		return "table-only"
	case ArchetypeTextTable:
		return "text+table"
	case ArchetypeTextImages:
		return "text+images"
	case ArchetypeTableImages:
		return "table+images"
	case ArchetypeTextTableImages:
		return "text+table+images"
	case ArchetypeComplex:
		return "complex"
	}
	return "unknown"
}

// Plan is the ordered sequence of placement instructions for one slide.
// It is produced fresh per slide and consumed immediately by the placer.
type Plan struct {
	Archetype  Archetype
	Placements []Placement

	// DroppedImages counts images beyond the per-slide cap that were not
	// placed. The complex archetype also drops any images it receives.
	DroppedImages int
}

// captionRect computes the strip below an element, clipped so the caption
// never crosses the page bottom.
func captionRect(r Rect) *Rect {
	top := r.Bottom() + captionGap
	if top+captionHeight > PageBottom {
		top = PageBottom - captionHeight
	}
	return &Rect{Left: r.Left, Top: top, Width: r.Width, Height: captionHeight}
}
