// Package render feeds computed layout plans into a deck writer. The
// writer is the external collaborator that owns the slide container; this
// package only decides what to ask of it and records what could not be
// placed. Placement is best effort: a failed element is skipped with a
// warning, never aborting the slide.
package render

import (
	"fmt"

	"github.com/alnah/go-md2pptx/internal/layout"
)

// SlideKind names the fixed slide types a deck contains.
type SlideKind string

const (
	SlideTitle   SlideKind = "title"
	SlideTOC     SlideKind = "toc"
	SlideDivider SlideKind = "divider"
	SlideContent SlideKind = "content"
	SlideClosing SlideKind = "closing"
)

// TextRun is one styled run inside a text frame.
type TextRun struct {
	Text  string `json:"text"`
	Size  int    `json:"size"`
	Bold  bool   `json:"bold,omitempty"`
	Color string `json:"color,omitempty"`
}

// Caption is the strip rendered below an image or table.
type Caption struct {
	Text string      `json:"text"`
	Rect layout.Rect `json:"rect"`
	Size int         `json:"size"`
}

// DeckWriter materializes slides into a presentation container. The
// concrete writer (a PPTX library binding) lives outside this module;
// tests and plan output use the Recorder implementation.
//
// Slide indexes returned by AddContentSlide identify the target of
// subsequent Place calls. Writers are not safe for concurrent use.
type DeckWriter interface {
	AddTitleSlide(title, org, date string) error
	AddTOCSlide(items []string) error
	AddDividerSlide(number, title string, titleSize int) error
	AddContentSlide(title string, titleSize int) (int, error)
	AddClosingSlide() error

	PlaceText(slide int, rect layout.Rect, runs []TextRun) error
	PlaceImage(slide int, rect layout.Rect, path string, caption *Caption) error
	PlaceTable(slide int, rect layout.Rect, rows, cols int, data [][]string, caption *Caption) error
}

// Warning records a non-fatal placement failure.
type Warning struct {
	Slide   int
	Element string
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("slide %d: %s: %v", w.Slide, w.Element, w.Err)
}
