package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	mmdc "github.com/alnah/go-mmdc"
)

// Sentinel errors for command-line validation.
var (
	ErrMissingInput  = errors.New("missing required flag: -i/--input")
	ErrMissingOutput = errors.New("missing required flag: -o/--output")
	ErrInvalidFlag   = errors.New("invalid flag value")
	ErrUnexpectedArg = errors.New("unexpected argument")
)

// renderFlags holds the flags that map onto a conversion.
type renderFlags struct {
	input        string
	output       string
	width        int
	height       int
	cssFile      string
	configFile   string
	font         string
	block        int
	timeout      time.Duration
	pollInterval time.Duration
}

// commonFlags holds flags unrelated to the diagram itself.
type commonFlags struct {
	settings string
	quiet    bool
	verbose  bool
	version  bool
	help     bool
}

// cliFlags holds all flags of the mmdc command.
type cliFlags struct {
	render renderFlags
	common commonFlags

	// changed reports whether a flag was set explicitly, so settings
	// file values only fill what the command line left unset.
	changed func(name string) bool
}

// addRenderFlags adds conversion flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "diagram file, or - for stdin")
	fs.StringVarP(&f.output, "output", "o", "", "output file (.svg or .png)")
	fs.IntVarP(&f.width, "width", "w", mmdc.DefaultWidth, "page width in pixels")
	fs.IntVarP(&f.height, "height", "H", mmdc.DefaultHeight, "maximum page height in pixels")
	fs.StringVarP(&f.cssFile, "cssFile", "c", "", "stylesheet override")
	fs.StringVarP(&f.configFile, "configFile", "C", "", "mermaid JSON config override")
	fs.StringVarP(&f.font, "font", "f", "", "font file override")
	fs.IntVarP(&f.block, "block", "b", 0, "mermaid block index for Markdown input")
	fs.DurationVarP(&f.timeout, "timeout", "t", mmdc.DefaultWaitTimeout, "render wait timeout")
	fs.DurationVar(&f.pollInterval, "poll-interval", mmdc.DefaultPollInterval, "render poll interval")
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.settings, "settings", "s", "", "settings file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// parseFlags parses args (without the program name). Help and version
// requests skip validation of the required flags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("mmdc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	addRenderFlags(fs, &f.render)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	f.changed = fs.Changed

	if f.common.help || f.common.version {
		return f, nil
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedArg, fs.Arg(0))
	}
	if err := validateFlags(f); err != nil {
		return nil, err
	}
	return f, nil
}

func validateFlags(f *cliFlags) error {
	r := f.render
	if r.input == "" {
		return ErrMissingInput
	}
	if r.output == "" {
		return ErrMissingOutput
	}
	if r.width <= 0 || r.height <= 0 {
		return fmt.Errorf("%w: size %dx%d (must be positive)", ErrInvalidFlag, r.width, r.height)
	}
	if r.block < 0 {
		return fmt.Errorf("%w: --block %d (must be >= 0)", ErrInvalidFlag, r.block)
	}
	if r.timeout <= 0 {
		return fmt.Errorf("%w: --timeout %s (must be positive)", ErrInvalidFlag, r.timeout)
	}
	if r.pollInterval <= 0 {
		return fmt.Errorf("%w: --poll-interval %s (must be positive)", ErrInvalidFlag, r.pollInterval)
	}
	if f.common.quiet && f.common.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrInvalidFlag)
	}
	return nil
}
