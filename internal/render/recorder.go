package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2pptx/internal/layout"
)

// Deck is the recorded output of a conversion: every slide with its
// placement instructions, ready for an external writer to materialize.
type Deck struct {
	Slides []Slide `json:"slides"`
}

// Slide is one recorded slide. Fields besides Kind are populated per kind:
// title slides carry Org/Date, TOC slides carry Items, dividers carry
// Number, content slides carry Elements.
type Slide struct {
	Kind      SlideKind `json:"kind"`
	Title     string    `json:"title,omitempty"`
	TitleSize int       `json:"titleSize,omitempty"`
	Org       string    `json:"org,omitempty"`
	Date      string    `json:"date,omitempty"`
	Items     []string  `json:"items,omitempty"`
	Number    string    `json:"number,omitempty"`
	Elements  []Element `json:"elements,omitempty"`
}

// Element is one placed visual element on a content slide.
type Element struct {
	Kind    string      `json:"kind"`
	Rect    layout.Rect `json:"rect"`
	Runs    []TextRun   `json:"runs,omitempty"`
	Path    string      `json:"path,omitempty"`
	Rows    int         `json:"rows,omitempty"`
	Cols    int         `json:"cols,omitempty"`
	Data    [][]string  `json:"data,omitempty"`
	Caption *Caption    `json:"caption,omitempty"`
}

// Summary renders one line per slide: index, kind, title, element count.
func (d *Deck) Summary() string {
	lines := make([]string, 0, len(d.Slides)+1)
	lines = append(lines, fmt.Sprintf("slides: %d", len(d.Slides)))
	for i, s := range d.Slides {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		lines = append(lines, fmt.Sprintf("slide %d: %s %q (%d elements)", i+1, s.Kind, title, len(s.Elements)))
	}
	return strings.Join(lines, "\n")
}

// Recorder is a DeckWriter that captures instructions instead of writing a
// container. It backs the default conversion result and the tests. It
// rejects non-positive rectangles the way a real writer would.
type Recorder struct {
	deck Deck
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Deck returns the recorded deck.
func (r *Recorder) Deck() *Deck {
	return &r.deck
}

func (r *Recorder) AddTitleSlide(title, org, date string) error {
	r.deck.Slides = append(r.deck.Slides, Slide{Kind: SlideTitle, Title: title, Org: org, Date: date})
	return nil
}

func (r *Recorder) AddTOCSlide(items []string) error {
	r.deck.Slides = append(r.deck.Slides, Slide{Kind: SlideTOC, Items: items})
	return nil
}

func (r *Recorder) AddDividerSlide(number, title string, titleSize int) error {
	r.deck.Slides = append(r.deck.Slides, Slide{Kind: SlideDivider, Number: number, Title: title, TitleSize: titleSize})
	return nil
}

func (r *Recorder) AddContentSlide(title string, titleSize int) (int, error) {
	r.deck.Slides = append(r.deck.Slides, Slide{Kind: SlideContent, Title: title, TitleSize: titleSize})
	return len(r.deck.Slides) - 1, nil
}

func (r *Recorder) AddClosingSlide() error {
	r.deck.Slides = append(r.deck.Slides, Slide{Kind: SlideClosing})
	return nil
}

func (r *Recorder) PlaceText(slide int, rect layout.Rect, runs []TextRun) error {
	return r.place(slide, Element{Kind: layout.KindText.String(), Rect: rect, Runs: runs})
}

func (r *Recorder) PlaceImage(slide int, rect layout.Rect, path string, caption *Caption) error {
	return r.place(slide, Element{Kind: layout.KindImage.String(), Rect: rect, Path: path, Caption: caption})
}

func (r *Recorder) PlaceTable(slide int, rect layout.Rect, rows, cols int, data [][]string, caption *Caption) error {
	return r.place(slide, Element{Kind: layout.KindTable.String(), Rect: rect, Rows: rows, Cols: cols, Data: data, Caption: caption})
}

func (r *Recorder) place(slide int, el Element) error {
	if slide < 0 || slide >= len(r.deck.Slides) {
		return fmt.Errorf("no slide at index %d", slide)
	}
	if el.Rect.Width <= 0 || el.Rect.Height <= 0 {
		return fmt.Errorf("%w: %.2fx%.2f", ErrBadGeometry, el.Rect.Width, el.Rect.Height)
	}
	r.deck.Slides[slide].Elements = append(r.deck.Slides[slide].Elements, el)
	return nil
}
