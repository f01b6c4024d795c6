package md2pptx_test

import (
	"context"
	"fmt"
	"log"

	md2pptx "github.com/alnah/go-md2pptx"
)

func Example() {
	gen, err := md2pptx.NewGenerator()
	if err != nil {
		log.Fatal(err)
	}

	markdown := "# Demo\n\n## 1. One\n\n### 1.1 First\n\n- a\n"
	result, err := gen.Convert(context.Background(), md2pptx.Input{Markdown: markdown})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Deck.Summary())
	// Output:
	// slides: 5
	// slide 1: title "Demo" (0 elements)
	// slide 2: toc "(untitled)" (0 elements)
	// slide 3: divider "One" (0 elements)
	// slide 4: content "First" (1 elements)
	// slide 5: closing "(untitled)" (0 elements)
}

func ExampleWithBaseSize() {
	gen, err := md2pptx.NewGenerator(
		md2pptx.WithBaseSize(md2pptx.FontTitle, 28),
		md2pptx.WithSizeRange(md2pptx.FontTitle, 12, 30),
	)
	if err != nil {
		log.Fatal(err)
	}

	markdown := "# Demo\n\n## 1. One\n\n### 1.1 First\n\n- a\n"
	result, err := gen.Convert(context.Background(), md2pptx.Input{Markdown: markdown})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Deck.Slides[3].TitleSize)
	// Output:
	// 21
}
