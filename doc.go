// Package md2pptx converts structured Markdown documents into slide deck
// placement instructions.
//
// # Quick Start
//
// Create a generator and convert a document:
//
//	gen, err := md2pptx.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Convert(ctx, md2pptx.Input{
//	    Markdown: "# Quarterly Review\n\n## 1. Results\n\n### 1.1 Revenue\n\n- Up 12%",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Deck.Summary())
//
// # Document Structure
//
// The input Markdown follows a fixed heading convention:
//
//	# Deck Title            -> title slide
//	## Organization         -> title slide subtitle
//	### 2026-08-27          -> title slide date
//	## 1. Chapter           -> divider slide, TOC entry
//	### 1.1 Subsection      -> one content slide
//
// Lists, paragraphs, pipe tables, and image lines under a subsection become
// that slide's content. A layout archetype is chosen from the content
// composition and every element gets a rectangle sized to fit the slide,
// with font sizes shrinking as space tightens or content grows.
//
// # Output
//
// By default, conversion records placements into Result.Deck, a plain data
// structure that serializes to JSON. To drive a presentation library
// directly, implement DeckWriter and pass it via WithDeckWriter; the deck
// is then materialized by your writer and Result.Deck is nil.
//
// # Configuration
//
// Font sizing is tunable through YAML or programmatic options:
//
//	gen, err := md2pptx.NewGenerator(
//	    md2pptx.WithFontConfig("fonts.yaml"),
//	    md2pptx.WithBaseSize(md2pptx.FontText, 20),
//	    md2pptx.WithSizeRange(md2pptx.FontText, 12, 24),
//	)
package md2pptx
