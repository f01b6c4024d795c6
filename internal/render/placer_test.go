package render_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2pptx/internal/block"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
	"github.com/alnah/go-md2pptx/internal/layout"
	"github.com/alnah/go-md2pptx/internal/render"
)

func newTestPlacer(t *testing.T, baseDir string) (*render.Placer, *render.Recorder) {
	t.Helper()
	rec := render.NewRecorder()
	return render.NewPlacer(rec, fontcalc.NewDefault(), baseDir), rec
}

func contentSlide(t *testing.T, rec *render.Recorder) int {
	t.Helper()
	slide, err := rec.AddContentSlide("Test", 18)
	if err != nil {
		t.Fatalf("AddContentSlide failed: %v", err)
	}
	return slide
}

// ---------------------------------------------------------------------------
// TestPlacePlan - Placements become recorded elements
// ---------------------------------------------------------------------------

func TestPlacePlan(t *testing.T) {
	t.Parallel()

	placer, rec := newTestPlacer(t, "")
	slide := contentSlide(t, rec)

	plan := layout.Plan{
		Archetype: layout.ArchetypeTextTableImages,
		Placements: []layout.Placement{
			{
				Kind:       layout.KindText,
				Rect:       layout.Rect{Left: 1, Top: 1, Width: 11, Height: 1.5},
				TextBlocks: []block.Block{block.List{Items: []string{"alpha", "beta"}}},
			},
			{
				Kind:    layout.KindTable,
				Rect:    layout.Rect{Left: 1, Top: 3, Width: 5, Height: 2},
				Rows:    3,
				Cols:    2,
				Data:    [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}},
				Caption: "Table 1",
				CaptionRect: &layout.Rect{
					Left: 1, Top: 5.1, Width: 5, Height: 0.3,
				},
			},
			{
				Kind:    layout.KindImage,
				Rect:    layout.Rect{Left: 7, Top: 3, Width: 4, Height: 2},
				Source:  "chart.png",
				Caption: "Figure 1",
				CaptionRect: &layout.Rect{
					Left: 7, Top: 5.1, Width: 4, Height: 0.3,
				},
			},
		},
	}

	warnings := placer.PlacePlan(slide, plan)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	elements := rec.Deck().Slides[slide].Elements
	if len(elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(elements))
	}

	text := elements[0]
	if text.Kind != "text" {
		t.Errorf("element 0 kind = %q, want text", text.Kind)
	}
	if len(text.Runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(text.Runs))
	}
	for _, run := range text.Runs {
		if !strings.HasPrefix(run.Text, "• ") {
			t.Errorf("list run %q missing bullet prefix", run.Text)
		}
		if run.Size < 14 || run.Size > 22 {
			t.Errorf("run size %d outside [14, 22]", run.Size)
		}
		if !run.Bold || run.Color != "#444444" {
			t.Errorf("run styling = bold %v color %q", run.Bold, run.Color)
		}
	}

	table := elements[1]
	if table.Kind != "table" || table.Rows != 3 || table.Cols != 2 {
		t.Errorf("table element = %+v", table)
	}
	if table.Caption == nil || table.Caption.Text != "Table 1" {
		t.Errorf("table caption = %+v, want Table 1", table.Caption)
	}
	if table.Caption.Size < 14 || table.Caption.Size > 22 {
		t.Errorf("caption size %d outside [14, 22]", table.Caption.Size)
	}

	img := elements[2]
	if img.Kind != "image" || img.Path != "chart.png" {
		t.Errorf("image element = %+v", img)
	}
}

// ---------------------------------------------------------------------------
// TestPlacePlanBadGeometry - Zero-sized rect warns and skips
// ---------------------------------------------------------------------------

func TestPlacePlanBadGeometry(t *testing.T) {
	t.Parallel()

	placer, rec := newTestPlacer(t, "")
	slide := contentSlide(t, rec)

	plan := layout.Plan{
		Placements: []layout.Placement{
			{
				Kind:   layout.KindImage,
				Rect:   layout.Rect{Left: 1, Top: 1, Width: 0, Height: 2},
				Source: "broken.png",
			},
			{
				Kind:       layout.KindText,
				Rect:       layout.Rect{Left: 1, Top: 1, Width: 11, Height: 1.5},
				TextBlocks: []block.Block{block.Paragraph{Text: "still placed"}},
			},
		},
	}

	warnings := placer.PlacePlan(slide, plan)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if !errors.Is(warnings[0].Err, render.ErrBadGeometry) {
		t.Errorf("warning error = %v, want ErrBadGeometry", warnings[0].Err)
	}
	if warnings[0].Element != "image" {
		t.Errorf("warning element = %q, want image", warnings[0].Element)
	}

	elements := rec.Deck().Slides[slide].Elements
	if len(elements) != 1 || elements[0].Kind != "text" {
		t.Errorf("elements = %+v, want only the text placement", elements)
	}
}

// ---------------------------------------------------------------------------
// TestPlacePlanDroppedImages - The cap produces a warning up front
// ---------------------------------------------------------------------------

func TestPlacePlanDroppedImages(t *testing.T) {
	t.Parallel()

	placer, rec := newTestPlacer(t, "")
	slide := contentSlide(t, rec)

	warnings := placer.PlacePlan(slide, layout.Plan{DroppedImages: 2})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Element != "images" {
		t.Errorf("warning element = %q, want images", warnings[0].Element)
	}
	if !strings.Contains(warnings[0].Err.Error(), "2 image(s)") {
		t.Errorf("warning = %v, want dropped count", warnings[0].Err)
	}
}

// ---------------------------------------------------------------------------
// TestPlaceImagePathResolution - Relative sources resolve against baseDir
// ---------------------------------------------------------------------------

func TestPlaceImagePathResolution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	imgPath := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(imgPath, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	placer, rec := newTestPlacer(t, dir)
	slide := contentSlide(t, rec)

	plan := layout.Plan{
		Placements: []layout.Placement{{
			Kind:   layout.KindImage,
			Rect:   layout.Rect{Left: 1, Top: 1, Width: 4, Height: 3},
			Source: "pic.png",
		}},
	}
	if warnings := placer.PlacePlan(slide, plan); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	got := rec.Deck().Slides[slide].Elements[0].Path
	if got != imgPath {
		t.Errorf("image path = %q, want %q", got, imgPath)
	}
}

// ---------------------------------------------------------------------------
// TestTextWrapping - Long runs break at spaces
// ---------------------------------------------------------------------------

func TestTextWrapping(t *testing.T) {
	t.Parallel()

	placer, rec := newTestPlacer(t, "")
	slide := contentSlide(t, rec)

	long := strings.Repeat("lorem ipsum dolor sit amet ", 5)
	plan := layout.Plan{
		Placements: []layout.Placement{{
			Kind:       layout.KindText,
			Rect:       layout.Rect{Left: 1, Top: 1, Width: 11, Height: 2},
			TextBlocks: []block.Block{block.Paragraph{Text: long}},
		}},
	}
	if warnings := placer.PlacePlan(slide, plan); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	run := rec.Deck().Slides[slide].Elements[0].Runs[0]
	if !strings.Contains(run.Text, "\n") {
		t.Errorf("long run not wrapped: %q", run.Text)
	}
	for _, line := range strings.Split(run.Text, "\n") {
		if len([]rune(line)) > 50 {
			t.Errorf("wrapped line too long (%d runes): %q", len([]rune(line)), line)
		}
	}
}

// ---------------------------------------------------------------------------
// TestEmptyTextSkipped - Blank text placements produce no element
// ---------------------------------------------------------------------------

func TestEmptyTextSkipped(t *testing.T) {
	t.Parallel()

	placer, rec := newTestPlacer(t, "")
	slide := contentSlide(t, rec)

	plan := layout.Plan{
		Placements: []layout.Placement{{
			Kind:       layout.KindText,
			Rect:       layout.Rect{Left: 1, Top: 1, Width: 11, Height: 2},
			TextBlocks: []block.Block{block.Paragraph{Text: "   "}},
		}},
	}
	if warnings := placer.PlacePlan(slide, plan); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if n := len(rec.Deck().Slides[slide].Elements); n != 0 {
		t.Errorf("got %d elements, want 0", n)
	}
}
