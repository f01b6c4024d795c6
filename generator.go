package md2pptx

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2pptx/internal/deck"
	"github.com/alnah/go-md2pptx/internal/fileutil"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
	"github.com/alnah/go-md2pptx/internal/mdparse"
	"github.com/alnah/go-md2pptx/internal/render"
)

// Compile-time interface implementation checks.
var _ DeckWriter = (*render.Recorder)(nil)

// Generator converts Markdown documents into slide decks.
// Create with NewGenerator and reuse across conversions; it holds no
// per-conversion state.
type Generator struct {
	cfg    generatorConfig
	fonts  *fontcalc.Calculator
	writer DeckWriter
}

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	fontConfig string
	overrides  []func(*fontcalc.Calculator)
}

// WithFontConfig sets the font configuration, either as a YAML file path or
// as inline YAML content. Entries merge over the built-in defaults.
func WithFontConfig(pathOrYAML string) Option {
	return func(g *Generator) {
		g.cfg.fontConfig = pathOrYAML
	}
}

// WithBaseSize overrides the base font size for a category.
// Panics if size <= 0 (programmer error, similar to time.NewTicker).
func WithBaseSize(cat FontCategory, size int) Option {
	if size <= 0 {
		panic("md2pptx: WithBaseSize size must be positive")
	}
	return func(g *Generator) {
		g.cfg.overrides = append(g.cfg.overrides, func(c *fontcalc.Calculator) {
			c.SetBaseSize(cat, size)
		})
	}
}

// WithSizeRange overrides the clamping range for a category.
// Panics if the range is empty or inverted (programmer error).
func WithSizeRange(cat FontCategory, minSize, maxSize int) Option {
	if minSize <= 0 || maxSize < minSize {
		panic("md2pptx: WithSizeRange requires 0 < min <= max")
	}
	return func(g *Generator) {
		g.cfg.overrides = append(g.cfg.overrides, func(c *fontcalc.Calculator) {
			c.SetSizeRange(cat, minSize, maxSize)
		})
	}
}

// WithDeckWriter sets the writer that materializes slides. Without it,
// conversions record placements into the Result's Deck.
func WithDeckWriter(w DeckWriter) Option {
	return func(g *Generator) {
		g.writer = w
	}
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithFontConfig, WithBaseSize).
// Returns error if the font configuration cannot be loaded or parsed.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}

	fonts, err := g.resolveFonts()
	if err != nil {
		return nil, err
	}
	for _, override := range g.cfg.overrides {
		override(fonts)
	}
	g.fonts = fonts
	return g, nil
}

// Convert parses the Markdown and builds the full slide sequence.
// The context is used for cancellation between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	doc, err := mdparse.Parse([]byte(input.Markdown))
	if err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	writer := g.writer
	var recorder *render.Recorder
	if writer == nil {
		recorder = render.NewRecorder()
		writer = recorder
	}

	builder := deck.NewBuilder(writer, g.fonts, input.SourceDir)
	warnings, err := builder.Build(doc, g.fonts)
	if err != nil {
		return nil, fmt.Errorf("building deck: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{Warnings: warnings}
	if recorder != nil {
		res.Deck = recorder.Deck()
	}
	return res, nil
}

// resolveFonts resolves the font config input (path or YAML content) to a
// configured calculator.
func (g *Generator) resolveFonts() (*fontcalc.Calculator, error) {
	input := g.cfg.fontConfig
	if input == "" {
		return fontcalc.NewDefault(), nil
	}

	data := []byte(input)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrInvalidFontConfig, input, err)
		}
		data = content
	} else if !fileutil.IsYAML(input) {
		return nil, fmt.Errorf("%w: %q is neither a file path nor YAML content", ErrInvalidFontConfig, input)
	}

	cfg, err := fontcalc.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontConfig, err)
	}
	return fontcalc.New(cfg), nil
}
