// Package mdparse extracts the presentation structure from a Markdown
// document: a title page, chapter headings, and one subsection per `###`
// heading with its content blocks. Parsing uses goldmark with the GFM
// extension so pipe tables arrive as structured nodes, but the output is
// the flat block model the layout engine consumes, not an AST.
package mdparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2pptx/internal/block"
)

// Document is the parsed presentation structure.
type Document struct {
	TitlePage   TitlePage
	TOC         []string
	Subsections []Subsection
}

// TitlePage holds the front-matter headings: the first `#` is the deck
// title, and a `##`/`###` before the first chapter supply the organization
// and date lines.
type TitlePage struct {
	Title string
	Org   string
	Date  string
}

// Subsection is one content slide: a `### N.M Title` unit within a
// `## N. Title` chapter.
type Subsection struct {
	ChapterNumber int
	ChapterTitle  string
	Title         string
	Blocks        []block.Block
}

// chapterPattern matches numbered chapter headings like "1. Background".
var chapterPattern = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)

// Parse extracts the document structure from Markdown source.
func Parse(src []byte) (*Document, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(src))

	p := &parser{src: src, doc: &Document{}}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		p.node(n)
	}
	p.flush()
	return p.doc, nil
}

// parser walks top-level nodes in a single pass, building subsections as
// chapter and subsection headings go by.
type parser struct {
	src []byte
	doc *Document

	chapterNumber int
	chapterTitle  string
	current       *Subsection
}

func (p *parser) node(n ast.Node) {
	switch v := n.(type) {
	case *ast.Heading:
		p.heading(v)
	case *ast.List:
		p.list(v)
	case *extast.Table:
		p.table(v)
	case *ast.Paragraph:
		p.paragraph(v)
	case *ast.ThematicBreak:
		// Slide-divider noise; ignore.
	}
}

func (p *parser) heading(h *ast.Heading) {
	txt := nodeText(h, p.src)
	switch h.Level {
	case 1:
		if p.doc.TitlePage.Title == "" && p.chapterNumber == 0 {
			p.doc.TitlePage.Title = txt
		}
	case 2:
		if m := chapterPattern.FindStringSubmatch(txt); m != nil {
			p.flush()
			p.chapterNumber = atoi(m[1])
			p.chapterTitle = strings.TrimSpace(m[2])
			p.doc.TOC = append(p.doc.TOC, txt)
			return
		}
		if p.doc.TitlePage.Org == "" && p.chapterNumber == 0 {
			p.doc.TitlePage.Org = txt
		}
	case 3:
		if p.chapterNumber > 0 {
			p.flush()
			p.current = &Subsection{
				ChapterNumber: p.chapterNumber,
				ChapterTitle:  p.chapterTitle,
				Title:         txt,
			}
			return
		}
		if p.doc.TitlePage.Date == "" {
			p.doc.TitlePage.Date = txt
		}
	}
}

func (p *parser) list(l *ast.List) {
	if !p.ensureSubsection() {
		return
	}
	var items []string
	for li := l.FirstChild(); li != nil; li = li.NextSibling() {
		items = append(items, nodeText(li, p.src))
	}
	if len(items) > 0 {
		p.current.Blocks = append(p.current.Blocks, block.List{Items: items})
	}
}

func (p *parser) table(t *extast.Table) {
	if !p.ensureSubsection() {
		return
	}
	lines := tableLines(t, p.src)
	caption := fmt.Sprintf("Table %d", countKind(p.current.Blocks, kindTable)+1)
	p.current.Blocks = append(p.current.Blocks, block.Table{Lines: lines, Caption: caption})
}

func (p *parser) paragraph(par *ast.Paragraph) {
	images := paragraphImages(par, p.src)
	if len(images) > 0 {
		if !p.ensureSubsection() {
			return
		}
		for _, img := range images {
			caption := nodeText(img, p.src)
			if caption == "" {
				caption = fmt.Sprintf("Figure %d", countKind(p.current.Blocks, kindImage)+1)
			}
			p.current.Blocks = append(p.current.Blocks, block.Image{
				Source:  string(img.Destination),
				Caption: caption,
			})
		}
		return
	}

	txt := nodeText(par, p.src)
	if strings.TrimSpace(txt) == "" {
		return
	}
	if !p.ensureSubsection() {
		return
	}
	p.current.Blocks = append(p.current.Blocks, block.Paragraph{Text: txt})
}

// ensureSubsection reports whether content can be collected. Chapter-level
// content with no `###` heading yet gets an implicit "N.0" subsection;
// front matter before the first chapter is dropped.
func (p *parser) ensureSubsection() bool {
	if p.current != nil {
		return true
	}
	if p.chapterNumber == 0 {
		return false
	}
	title := p.chapterTitle
	if title == "" {
		title = "Overview"
	}
	p.current = &Subsection{
		ChapterNumber: p.chapterNumber,
		ChapterTitle:  p.chapterTitle,
		Title:         fmt.Sprintf("%d.0 %s", p.chapterNumber, title),
	}
	return true
}

func (p *parser) flush() {
	if p.current != nil {
		p.doc.Subsections = append(p.doc.Subsections, *p.current)
		p.current = nil
	}
}

// paragraphImages returns the image nodes when the paragraph consists only
// of images and whitespace, the shape an image-per-line Markdown document
// produces. Mixed image-and-text paragraphs stay paragraphs.
func paragraphImages(par *ast.Paragraph, src []byte) []*ast.Image {
	var images []*ast.Image
	for n := par.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Image:
			images = append(images, v)
		case *ast.Text:
			if strings.TrimSpace(string(v.Segment.Value(src))) != "" {
				return nil
			}
		default:
			return nil
		}
	}
	return images
}

// tableLines reconstructs the raw pipe-delimited form (header, separator,
// data rows) that the layout engine's shape heuristics consume.
func tableLines(t *extast.Table, src []byte) []string {
	var lines []string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, nodeText(cell, src))
		}
		line := "| " + strings.Join(cells, " | ") + " |"
		lines = append(lines, line)
		if _, ok := row.(*extast.TableHeader); ok {
			seps := make([]string, len(cells))
			for i := range seps {
				seps[i] = "---"
			}
			lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
		}
	}
	return lines
}

type blockKind int

const (
	kindTable blockKind = iota
	kindImage
)

func countKind(blocks []block.Block, k blockKind) int {
	n := 0
	for _, b := range blocks {
		switch b.(type) {
		case block.Table:
			if k == kindTable {
				n++
			}
		case block.Image:
			if k == kindImage {
				n++
			}
		}
	}
	return n
}

// nodeText collects the plain text beneath a node.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
