package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	md2pptx "github.com/alnah/go-md2pptx"
	"github.com/alnah/go-md2pptx/internal/fontcalc"
	"github.com/alnah/go-md2pptx/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteDeck        = errors.New("failed to write deck file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runConvert converts one markdown file into a deck JSON file.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	logger := newLogger(env.Stderr, logLevel(flags.common))

	if flags.fonts.showConfig {
		return showFontConfig(flags.fonts.config, env)
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	gen, err := md2pptx.NewGenerator(generatorOptions(flags)...)
	if err != nil {
		return err
	}

	result, err := gen.Convert(ctx, md2pptx.Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(inputPath),
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warn("placement skipped", "slide", w.Slide, "element", w.Element, "err", w.Err)
	}

	outputPath := resolveOutputPath(inputPath, flags.output.path)
	if err := writeDeck(result.Deck, outputPath); err != nil {
		return err
	}

	if flags.output.summary {
		fmt.Fprintln(env.Stdout, result.Deck.Summary())
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// generatorOptions translates CLI flags into library options.
func generatorOptions(flags *convertFlags) []md2pptx.Option {
	var opts []md2pptx.Option
	if flags.fonts.config != "" {
		opts = append(opts, md2pptx.WithFontConfig(flags.fonts.config))
	}
	if flags.fonts.textSize > 0 {
		opts = append(opts, md2pptx.WithBaseSize(md2pptx.FontText, flags.fonts.textSize))
	}
	if flags.fonts.titleSize > 0 {
		opts = append(opts, md2pptx.WithBaseSize(md2pptx.FontTitle, flags.fonts.titleSize))
	}
	return opts
}

// showFontConfig prints the effective font configuration as YAML: the
// built-in defaults merged with the given config file, if any.
func showFontConfig(configPath string, env *Environment) error {
	cfg := fontcalc.DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("reading font config: %w", err)
		}
		cfg, err = fontcalc.ParseConfig(data)
		if err != nil {
			return fmt.Errorf("parsing font config: %w", err)
		}
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("rendering font config: %w", err)
	}
	fmt.Fprint(env.Stdout, string(out))
	return nil
}

// writeDeck marshals the deck as indented JSON and writes it to path.
func writeDeck(deck *md2pptx.Deck, path string) error {
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDeck, err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteDeck, err)
		}
	}
	// #nosec G306 -- deck files are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDeck, err)
	}
	return nil
}

// resolveOutputPath determines the deck output path for a markdown file.
func resolveOutputPath(inputPath, flagOutput string) string {
	if flagOutput != "" {
		return flagOutput
	}
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(filepath.Dir(inputPath), base+".json")
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// logLevel maps verbosity flags to a log level. Quiet wins over verbose.
func logLevel(f commonFlags) log.Level {
	switch {
	case f.quiet:
		return log.ErrorLevel
	case f.verbose:
		return log.DebugLevel
	default:
		return log.WarnLevel
	}
}
