// Package deck drives a parsed document through layout and placement,
// emitting the slide sequence: title, table of contents, one divider per
// chapter, one content slide per subsection, and a closing slide.
package deck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2pptx/internal/fontcalc"
	"github.com/alnah/go-md2pptx/internal/layout"
	"github.com/alnah/go-md2pptx/internal/mdparse"
	"github.com/alnah/go-md2pptx/internal/render"
)

// Content slide geometry: the band below the title and the divider band.
const (
	contentTop    = 1.0
	contentHeight = 5.8
	titleBand     = 0.5
	dividerBand   = 1.5
)

// Heading prefixes stripped before display: "3. " on dividers,
// "3.2 " on content slides.
var (
	chapterPrefix    = regexp.MustCompile(`^\d+\.\s*`)
	subsectionPrefix = regexp.MustCompile(`^\d+\.\d+\s*`)
)

// Context tracks chapter state across slides so divider titles stay
// consistent when later subsections reference an earlier chapter.
type Context struct {
	chapterTitles map[int]string
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{chapterTitles: make(map[int]string)}
}

// ChapterTitle memoizes the first title seen for a chapter number and
// returns it for every later lookup. Unseen chapters get a placeholder.
func (c *Context) ChapterTitle(number int, title string) string {
	if t, ok := c.chapterTitles[number]; ok {
		return t
	}
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Chapter %d", number)
	}
	c.chapterTitles[number] = title
	return title
}

// Builder assembles a deck from a parsed document.
type Builder struct {
	planner *layout.Planner
	placer  *render.Placer
	writer  render.DeckWriter
}

// NewBuilder creates a Builder writing through w. baseDir anchors relative
// image paths from the source document.
func NewBuilder(w render.DeckWriter, fonts *fontcalc.Calculator, baseDir string) *Builder {
	return &Builder{
		planner: layout.NewPlanner(fonts),
		placer:  render.NewPlacer(w, fonts, baseDir),
		writer:  w,
	}
}

// Build emits the full slide sequence for doc. Failures adding the title
// slide are fatal; everything after is best effort, collected as warnings.
func (b *Builder) Build(doc *mdparse.Document, fonts *fontcalc.Calculator) ([]render.Warning, error) {
	var warnings []render.Warning

	tp := doc.TitlePage
	if err := b.writer.AddTitleSlide(tp.Title, tp.Org, tp.Date); err != nil {
		return nil, fmt.Errorf("adding title slide: %w", err)
	}

	if len(doc.TOC) > 0 {
		if err := b.writer.AddTOCSlide(doc.TOC); err != nil {
			warnings = append(warnings, render.Warning{Slide: -1, Element: "toc", Err: err})
		}
	}

	ctx := NewContext()
	currentChapter := 0
	for _, sub := range doc.Subsections {
		if sub.ChapterNumber != currentChapter {
			currentChapter = sub.ChapterNumber
			title := ctx.ChapterTitle(sub.ChapterNumber, chapterPrefix.ReplaceAllString(sub.ChapterTitle, ""))
			number := fmt.Sprintf("%02d", sub.ChapterNumber)
			size := fonts.ParentTitleSize(dividerBand)
			if err := b.writer.AddDividerSlide(number, title, size); err != nil {
				warnings = append(warnings, render.Warning{Slide: -1, Element: "divider", Err: err})
			}
		}

		title := subsectionPrefix.ReplaceAllString(sub.Title, "")
		slide, err := b.writer.AddContentSlide(title, fonts.TitleSize(titleBand))
		if err != nil {
			warnings = append(warnings, render.Warning{Slide: -1, Element: "content", Err: err})
			continue
		}

		area := layout.NewContentArea(contentTop, contentHeight)
		plan := b.planner.Plan(sub.Blocks, area)
		warnings = append(warnings, b.placer.PlacePlan(slide, plan)...)
	}

	if err := b.writer.AddClosingSlide(); err != nil {
		warnings = append(warnings, render.Warning{Slide: -1, Element: "closing", Err: err})
	}
	return warnings, nil
}
