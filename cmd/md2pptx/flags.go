package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// fontFlags holds font sizing flags.
type fontFlags struct {
	config     string
	textSize   int
	titleSize  int
	showConfig bool
}

// outputFlags holds output destination and mode flags.
type outputFlags struct {
	path    string
	summary bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	fonts  fontFlags
	output outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
}

// addFontFlags adds font sizing flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.StringVarP(&f.config, "font-config", "f", "", "font config YAML file path")
	fs.IntVar(&f.textSize, "text-size", 0, "base body text size in points (0 = default)")
	fs.IntVar(&f.titleSize, "title-size", 0, "base slide title size in points (0 = default)")
	fs.BoolVar(&f.showConfig, "show-font-config", false, "print the effective font config and exit")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output JSON file (default: input name with .json)")
	fs.BoolVarP(&f.summary, "summary", "s", false, "print a per-slide summary after converting")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	addFontFlags(fs, &f.fonts)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
