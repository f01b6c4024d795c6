package layout

import (
	"math"
	"strings"

	"github.com/alnah/go-md2pptx/internal/block"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
)

// listIndent is the width reserved for a bullet and its indent.
const listIndent = 0.3

// EstimateTextHeight estimates the vertical space a sequence of text blocks
// will occupy inside containerWidth, in inches. Only list and paragraph
// blocks contribute; tables and images are ignored. The result is clamped
// to [0, availableHeight]. The estimate assumes roughly square glyphs
// (char width ~ font size), which suits CJK and over-estimates Latin text,
// erring toward shorter text regions.
func EstimateTextHeight(fonts *fontcalc.Calculator, blocks []block.Block, containerWidth, availableHeight float64) float64 {
	te := fonts.TextEstimation()
	fontPt := float64(fonts.BaseSize(fontcalc.CategoryText))
	lineHeight := fontPt * te.LineHeightRatio / 72.0
	gapList := te.GapList / 72.0
	gapPara := te.GapParagraph / 72.0

	charsPerLine := func(width float64) int {
		cpl := int((width * 72.0) / math.Max(8.0, fontPt))
		if cpl < te.MinCharsPerLine {
			cpl = te.MinCharsPerLine
		}
		return cpl
	}

	total := 0.0
	contributed := 0

	for _, b := range blocks {
		switch v := b.(type) {
		case block.List:
			if len(v.Items) == 0 {
				continue
			}
			cpl := charsPerLine(math.Max(1.0, containerWidth-listIndent))
			for _, item := range v.Items {
				lines := lineCount(item, cpl)
				total += float64(lines)*lineHeight + gapList
				contributed++
			}
		case block.Paragraph:
			if strings.TrimSpace(v.Text) == "" {
				continue
			}
			cpl := charsPerLine(containerWidth)
			lines := lineCount(v.Text, cpl)
			total += float64(lines)*lineHeight + gapPara
			contributed++
		}
	}

	// The last item needs no trailing gap.
	if contributed > 0 {
		total -= math.Min(gapPara, gapList)
	}

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return math.Min(1.2, math.Max(0, availableHeight))
	}
	return math.Max(0, math.Min(total, math.Max(0, availableHeight)))
}

// lineCount is ceil(len/charsPerLine) with a minimum of one line, counting
// runes so multi-byte text is not over-counted.
func lineCount(text string, charsPerLine int) int {
	n := len([]rune(text))
	if n == 0 || charsPerLine <= 0 {
		return 1
	}
	lines := (n + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		lines = 1
	}
	return lines
}
