package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2pptx/internal/block"
	"github.com/alnah/go-md2pptx/internal/fileutil"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
	"github.com/alnah/go-md2pptx/internal/layout"
)

// Body text styling applied to every content run.
const (
	bodyTextColor = "#444444"
	wrapWidth     = 42
)

// ErrBadGeometry reports a placement rectangle the writer cannot accept.
var ErrBadGeometry = errors.New("placement rectangle has non-positive size")

// Placer translates a layout plan into writer calls, computing run-level
// font sizes on the way. One Placer serves one conversion; baseDir anchors
// relative image paths to the source document.
type Placer struct {
	writer  DeckWriter
	fonts   *fontcalc.Calculator
	baseDir string
}

// NewPlacer creates a Placer over the writer.
func NewPlacer(w DeckWriter, fonts *fontcalc.Calculator, baseDir string) *Placer {
	return &Placer{writer: w, fonts: fonts, baseDir: baseDir}
}

// PlacePlan feeds every placement of the plan into the writer. Failures
// are collected as warnings; the slide always completes.
func (p *Placer) PlacePlan(slide int, plan layout.Plan) []Warning {
	var warnings []Warning
	if plan.DroppedImages > 0 {
		warnings = append(warnings, Warning{
			Slide:   slide,
			Element: "images",
			Err:     fmt.Errorf("%d image(s) beyond the per-slide limit dropped", plan.DroppedImages),
		})
	}

	for _, pl := range plan.Placements {
		var err error
		switch pl.Kind {
		case layout.KindText:
			err = p.placeText(slide, pl)
		case layout.KindImage:
			err = p.placeImage(slide, pl)
		case layout.KindTable:
			err = p.placeTable(slide, pl)
		}
		if err != nil {
			warnings = append(warnings, Warning{Slide: slide, Element: pl.Kind.String(), Err: err})
		}
	}
	return warnings
}

func (p *Placer) placeText(slide int, pl layout.Placement) error {
	if err := checkRect(pl.Rect); err != nil {
		return err
	}
	runs := p.textRuns(pl.TextBlocks, pl.Rect.Height)
	if len(runs) == 0 {
		return nil
	}
	return p.writer.PlaceText(slide, pl.Rect, runs)
}

func (p *Placer) placeImage(slide int, pl layout.Placement) error {
	if err := checkRect(pl.Rect); err != nil {
		return err
	}
	path := fileutil.ResolveImagePath(pl.Source, p.baseDir)
	return p.writer.PlaceImage(slide, pl.Rect, path, p.caption(pl))
}

func (p *Placer) placeTable(slide int, pl layout.Placement) error {
	if err := checkRect(pl.Rect); err != nil {
		return err
	}
	return p.writer.PlaceTable(slide, pl.Rect, pl.Rows, pl.Cols, pl.Data, p.caption(pl))
}

// textRuns expands list and paragraph blocks into styled runs. List items
// size by the number of text blocks, paragraphs by the total item count;
// both shrink as content grows.
func (p *Placer) textRuns(blocks []block.Block, height float64) []TextRun {
	totalItems := block.TextAmount(blocks)

	var runs []TextRun
	for _, b := range blocks {
		switch v := b.(type) {
		case block.List:
			size := p.fonts.OptimalSize(height, len(blocks), fontcalc.CategoryText)
			for _, item := range v.Items {
				runs = append(runs, TextRun{
					Text:  "• " + wrapText(item, wrapWidth),
					Size:  size,
					Bold:  true,
					Color: bodyTextColor,
				})
			}
		case block.Paragraph:
			if strings.TrimSpace(v.Text) == "" {
				continue
			}
			size := p.fonts.OptimalSize(height, totalItems, fontcalc.CategoryText)
			runs = append(runs, TextRun{
				Text:  wrapText(v.Text, wrapWidth),
				Size:  size,
				Bold:  true,
				Color: bodyTextColor,
			})
		}
	}
	return runs
}

func (p *Placer) caption(pl layout.Placement) *Caption {
	if pl.Caption == "" || pl.CaptionRect == nil {
		return nil
	}
	return &Caption{
		Text: pl.Caption,
		Rect: *pl.CaptionRect,
		Size: p.fonts.OptimalSize(1.0, 1, fontcalc.CategoryCaption),
	}
}

func checkRect(r layout.Rect) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %.2fx%.2f", ErrBadGeometry, r.Width, r.Height)
	}
	return nil
}

// wrapText inserts line breaks at spaces once a line reaches maxChars.
// Runs without spaces are left to the text frame's own word wrap.
func wrapText(s string, maxChars int) string {
	var lines []string
	var current strings.Builder
	count := 0
	for _, r := range s {
		current.WriteRune(r)
		count++
		if count >= maxChars && r == ' ' {
			lines = append(lines, strings.TrimRight(current.String(), " "))
			current.Reset()
			count = 0
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}
