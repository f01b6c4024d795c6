package layout

import (
	"fmt"
	"math"

	"github.com/alnah/go-md2pptx/internal/block"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
)

// Planner selects a layout archetype from content composition and computes
// element rectangles within a content area.
type Planner struct {
	fonts *fontcalc.Calculator
}

// NewPlanner creates a Planner sizing text with fonts.
func NewPlanner(fonts *fontcalc.Calculator) *Planner {
	return &Planner{fonts: fonts}
}

// composition buckets a block sequence for archetype dispatch.
type composition struct {
	textAmount int
	tables     int
	images     int
}

// classify maps a composition to exactly one archetype. The chain is total:
// anything the six specific archetypes don't match falls through to
// ArchetypeComplex, so there is no unsupported-layout error path.
func classify(c composition) Archetype {
	switch {
	case c.images > 0 && c.tables == 0 && c.textAmount == 0:
		return ArchetypeImagesOnly
	case c.images > 0 && c.tables == 0 && c.textAmount > 0:
		return ArchetypeTextImages
	case c.images > 0 && c.tables == 1 && c.textAmount == 0:
		return ArchetypeTableImages
	case c.images > 0 && c.tables >= 1 && c.textAmount > 0:
		return ArchetypeTextTableImages
	case c.tables == 1 && c.textAmount == 0:
		return ArchetypeTableOnly
	case c.tables == 1 && c.textAmount > 0:
		return ArchetypeTextTable
	default:
		return ArchetypeComplex
	}
}

// Plan computes placement instructions for one slide's blocks. An empty
// block sequence yields an empty plan.
func (p *Planner) Plan(blocks []block.Block, area ContentArea) Plan {
	if len(blocks) == 0 {
		return Plan{Archetype: ArchetypeEmpty}
	}

	var texts []block.Block
	var tables []block.Table
	var images []block.Image
	for _, b := range blocks {
		switch v := b.(type) {
		case block.Table:
			tables = append(tables, v)
		case block.Image:
			images = append(images, v)
		default:
			texts = append(texts, b)
		}
	}
	comp := composition{
		textAmount: block.TextAmount(texts),
		tables:     len(tables),
		images:     len(images),
	}

	plan := Plan{Archetype: classify(comp)}
	kept := images
	if len(kept) > MaxImagesPerSlide {
		kept = kept[:MaxImagesPerSlide]
		plan.DroppedImages = len(images) - MaxImagesPerSlide
	}

	switch plan.Archetype {
	case ArchetypeImagesOnly:
		plan.Placements = p.imagesOnly(kept, area)
	case ArchetypeTableOnly:
		plan.Placements = p.tableOnly(tables[0], area)
	case ArchetypeTextTable:
		plan.Placements = p.textAndTable(texts, tables[0], area)
	case ArchetypeTextImages:
		plan.Placements = p.textAndImages(texts, kept, area)
	case ArchetypeTableImages:
		plan.Placements = p.tableAndImages(tables[0], kept, area)
	case ArchetypeTextTableImages:
		plan.Placements = p.textTableImages(texts, tables[0], kept, area)
	default:
		// Complex renders text and tables only; any images are dropped.
		plan.DroppedImages = len(images)
		plan.Placements = p.complexContent(texts, tables, area)
	}
	return plan
}

// imagesOnly gives images most of the area, inset slightly from the top.
func (p *Planner) imagesOnly(images []block.Image, area ContentArea) []Placement {
	top := area.Top + 0.1
	height := math.Min(area.Height*0.85, area.Height)
	return p.imageRow(images, top, height)
}

// imageRow lays images across the full content width: a single image
// centered on the canvas at an assumed 16:9, multiple images equal-width at
// 4:3 from the left margin. Heights never exceed the band.
func (p *Planner) imageRow(images []block.Image, top, height float64) []Placement {
	n := len(images)
	if n == 0 {
		return nil
	}

	if n == 1 {
		w := math.Min(math.Min(ContentWidth, height*aspectSingle), 10.0)
		est := w / aspectSingle
		r := Rect{
			Left:   (CanvasWidth - w) / 2,
			Top:    top + math.Max(0, (height-est)/2),
			Width:  w,
			Height: math.Min(est, height),
		}
		return []Placement{imagePlacement(images[0], r, 1)}
	}

	widthByRow := (ContentWidth - imageGap*float64(n-1)) / float64(n)
	w := math.Min(math.Min(widthByRow, height*aspectMulti), 5.0)
	est := w / aspectMulti
	rowTop := top + math.Max(0, (height-est)/2)

	out := make([]Placement, 0, n)
	for i, img := range images {
		r := Rect{
			Left:   ContentLeft + float64(i)*(w+imageGap),
			Top:    rowTop,
			Width:  w,
			Height: math.Min(est, height),
		}
		out = append(out, imagePlacement(img, r, i+1))
	}
	return out
}

// imageColumn stacks images into a half-slide column, height-matched to the
// band so they align with the neighboring table.
func (p *Planner) imageColumn(images []block.Image, colLeft, colWidth, top, height float64) []Placement {
	n := len(images)
	if n == 0 {
		return nil
	}

	if n == 1 {
		w := math.Min(math.Min(colWidth*0.9, height*aspectSingle), 8.0)
		r := Rect{
			Left:   colLeft + (colWidth-w)/2,
			Top:    top,
			Width:  w,
			Height: height,
		}
		return []Placement{imagePlacement(images[0], r, 1)}
	}

	widthByRow := (colWidth - imageGap*float64(n-1)) / float64(n)
	w := math.Min(math.Min(widthByRow, height*aspectMulti), 4.5)
	groupWidth := w*float64(n) + imageGap*float64(n-1)
	start := colLeft + (colWidth-groupWidth)/2

	out := make([]Placement, 0, n)
	for i, img := range images {
		r := Rect{
			Left:   start + float64(i)*(w+imageGap),
			Top:    top,
			Width:  w,
			Height: height,
		}
		out = append(out, imagePlacement(img, r, i+1))
	}
	return out
}

// tableOnly centers the table both ways, sizing rows from the raw text.
func (p *Planner) tableOnly(t block.Table, area ContentArea) []Placement {
	rows, cols := tableShape(t.Lines)
	height := requiredTableHeight(rows, area.Height*0.9)
	top := area.Top + math.Max(0, (area.Height-height)/2)
	return []Placement{p.centeredTable(t, rows, cols, top, height, 1)}
}

// textAndTable puts text in the top band and centers the table below it.
// Text takes 30% of the area, 40% when there are more than two text blocks.
func (p *Planner) textAndTable(texts []block.Block, t block.Table, area ContentArea) []Placement {
	textRatio := 0.3
	if len(texts) > 2 {
		textRatio = 0.4
	}
	out := []Placement{textPlacement(texts, area.Top, area.Height*textRatio)}

	rows, cols := tableShape(t.Lines)
	tableTop := area.Top + area.Height*(textRatio+0.1)
	height := requiredTableHeight(rows, area.Height*0.5)
	out = append(out, p.centeredTable(t, rows, cols, tableTop, height, 1))
	return out
}

// textAndImages puts text on top and centers the image band between the
// text bottom and the area bottom.
func (p *Planner) textAndImages(texts []block.Block, images []block.Image, area ContentArea) []Placement {
	textRatio := 0.3
	if len(texts) > 2 {
		textRatio = 0.35
	}
	const gapRatio = 0.08
	imagesRatio := 1.0 - textRatio - gapRatio

	textHeight := area.Height * textRatio
	out := []Placement{textPlacement(texts, area.Top, textHeight)}

	textBottom := area.Top + textHeight
	areaBottom := area.Top + area.Height
	imagesHeight := area.Height * imagesRatio
	imagesTop := textBottom + (areaBottom-textBottom-imagesHeight)/2

	out = append(out, p.imageRow(images, imagesTop, imagesHeight)...)
	return out
}

// tableAndImages aligns table and images side by side in a bottom band.
func (p *Planner) tableAndImages(t block.Table, images []block.Image, area ContentArea) []Placement {
	bandHeight := math.Max(1.8, math.Min(area.Height, 4.0))
	bandTop := area.Top + area.Height - bandHeight
	colWidth := (ContentWidth - imageGap) / 2
	rightColLeft := ContentLeft + colWidth + imageGap

	rows, cols, data := tableGrid(t.Lines, bandMaxRows, bandMaxCols)
	out := []Placement{tablePlacement(t, rows, cols, data,
		Rect{Left: ContentLeft, Top: bandTop, Width: colWidth, Height: bandHeight}, 1)}

	out = append(out, p.imageColumn(images, rightColLeft, colWidth, bandTop, bandHeight)...)
	return out
}

// textTableImages estimates the text band from content, then splits the
// remaining area into a table column and an image column. If almost nothing
// remains below the text, table and images stack in the leftover instead.
func (p *Planner) textTableImages(texts []block.Block, t block.Table, images []block.Image, area ContentArea) []Placement {
	const (
		maxTextRatio = 0.35
		minTextIn    = 0.6
		maxTextIn    = 2.0
	)

	var out []Placement
	textHeight := 0.0
	if len(texts) > 0 {
		estimated := EstimateTextHeight(p.fonts, texts, ContentWidth, area.Height*maxTextRatio)
		textHeight = math.Max(minTextIn, math.Min(maxTextIn, estimated))
		out = append(out, textPlacement(texts, area.Top, textHeight))
	}

	remainingTop := area.Top + textHeight
	remaining := math.Max(0, area.Height-textHeight)

	if remaining <= 0.4 {
		// No room for columns: stack whatever fits.
		width := math.Min(10.0, float64(bandMaxCols)*2.0)
		out = append(out, tablePlacement(t, fallbackRows, fallbackCols, nil,
			Rect{Left: (CanvasWidth - width) / 2, Top: remainingTop, Width: width, Height: remaining}, 1))
		out = append(out, p.imageRow(images, remainingTop, remaining)...)
		return out
	}

	const (
		sideMargin = 0.8
		middleGap  = 0.4
	)
	available := CanvasWidth - 2*sideMargin
	colWidth := (available - middleGap) / 2
	imagesLeft := sideMargin + colWidth + middleGap
	regionTop := remainingTop + 0.1
	regionHeight := math.Max(0.5, remaining-0.1)

	rows, cols, data := tableGrid(t.Lines, bandMaxRows, bandMaxCols)
	out = append(out, tablePlacement(t, rows, cols, data,
		Rect{Left: sideMargin, Top: regionTop, Width: colWidth, Height: regionHeight}, 1))
	out = append(out, p.imageColumn(images, imagesLeft, colWidth, regionTop, regionHeight)...)
	return out
}

// complexContent handles multi-table and otherwise unmatched compositions:
// a capped text band on top, then tables stacked down the slide while
// meaningful height remains.
func (p *Planner) complexContent(texts []block.Block, tables []block.Table, area ContentArea) []Placement {
	var out []Placement
	top := area.Top
	remaining := area.Height

	if len(texts) > 0 {
		textHeight := math.Min(remaining*0.3, 1.5)
		out = append(out, textPlacement(texts, top, textHeight))
		top += textHeight + 0.1
		remaining -= textHeight + 0.1
	}

	if len(tables) == 0 || remaining <= 0.5 {
		return out
	}

	each := remaining / float64(len(tables))
	width := math.Min(10.0, float64(bandMaxCols)*2.0)
	left := (CanvasWidth - width) / 2
	for i, t := range tables {
		if remaining <= 0.3 {
			break
		}
		height := math.Min(each, remaining)
		out = append(out, tablePlacement(t, fallbackRows, fallbackCols, nil,
			Rect{Left: left, Top: top, Width: width, Height: height}, i+1))
		top += height
		remaining -= height
	}
	return out
}

// requiredTableHeight sizes a table band: shallower rows as the table
// grows, at most six rows tall, clamped to [0.8, maxHeight].
func requiredTableHeight(rows int, maxHeight float64) float64 {
	rowHeight := math.Max(0.4, math.Min(0.7, 0.6-0.02*math.Max(0, float64(rows-4))))
	required := rowHeight*float64(min(rows, 6)) + 0.2
	return math.Max(0.8, math.Min(maxHeight, required))
}

// centeredTable builds a grid-only table placement horizontally centered on
// the canvas, two inches per column up to ten total.
func (p *Planner) centeredTable(t block.Table, rows, cols int, top, height float64, ordinal int) Placement {
	width := math.Min(10.0, float64(cols)*2.0)
	r := Rect{Left: (CanvasWidth - width) / 2, Top: top, Width: width, Height: height}
	return tablePlacement(t, rows, cols, nil, r, ordinal)
}

func textPlacement(texts []block.Block, top, height float64) Placement {
	return Placement{
		Kind:       KindText,
		Rect:       Rect{Left: ContentLeft, Top: top, Width: ContentWidth, Height: height},
		TextBlocks: texts,
	}
}

func tablePlacement(t block.Table, rows, cols int, data [][]string, r Rect, ordinal int) Placement {
	caption := t.Caption
	if caption == "" {
		caption = fmt.Sprintf("Table %d", ordinal)
	}
	return Placement{
		Kind:        KindTable,
		Rect:        r,
		Rows:        rows,
		Cols:        cols,
		Data:        data,
		Caption:     caption,
		CaptionRect: captionRect(r),
	}
}

func imagePlacement(img block.Image, r Rect, ordinal int) Placement {
	caption := img.Caption
	if caption == "" {
		caption = fmt.Sprintf("Figure %d", ordinal)
	}
	return Placement{
		Kind:        KindImage,
		Rect:        r,
		Source:      img.Source,
		Caption:     caption,
		CaptionRect: captionRect(r),
	}
}
