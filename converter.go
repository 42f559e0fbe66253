package mmdc

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Default image size in pixels. Height is a maximum: PNG captures are
// cropped to the rendered diagram.
const (
	DefaultWidth  = 1960
	DefaultHeight = 2160
)

// Job describes one conversion.
type Job struct {
	// Input is the diagram path, or "-" to read Stdin.
	Input string
	// Block selects the mermaid block of a Markdown input (0-based).
	Block int
	// Output is the image path; a .svg extension selects SVG, anything
	// else PNG.
	Output string

	// Zero values take DefaultWidth and DefaultHeight.
	Width  int
	Height int

	// Optional override files.
	Font   string
	Style  string
	Config string

	// Stdin is read when Input is "-". Nil means os.Stdin.
	Stdin io.Reader
}

// Converter runs the whole pipeline: store, asset server, render, export.
// One Convert call handles one diagram; calls are not meant to overlap.
type Converter struct {
	cfg      converterConfig
	browser  Browser
	defaults *Resources
	logger   *log.Logger
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithWaitTimeout, WithBrowser).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			waitTimeout:  DefaultWaitTimeout,
			pollInterval: DefaultPollInterval,
		},
		logger: discardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.browser == nil {
		c.browser = &RodBrowser{Bin: c.cfg.browserBin, NoSandbox: c.cfg.noSandbox}
	}
	return c
}

// Convert renders job.Input to job.Output and returns the output's
// canonical absolute path. The asset server is listening before the
// browser is launched and is closed once the image is written.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, job Job) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := job.validate(); err != nil {
		return "", err
	}

	defaults := DefaultResources()
	if c.defaults != nil {
		defaults = *c.defaults
	}

	store, err := BuildStore(Sources{
		Diagram: job.Input,
		Block:   job.Block,
		Font:    job.Font,
		Style:   job.Style,
		Config:  job.Config,
		Stdin:   job.Stdin,
	}, defaults, c.logger)
	if err != nil {
		return "", err
	}

	srv, err := StartServer(store, c.logger)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			c.logger.Debug("closing asset server", "err", err)
		}
	}()

	renderer := NewRenderer(c.browser, Wait{
		Timeout:  c.cfg.waitTimeout,
		Interval: c.cfg.pollInterval,
	}, c.logger)

	return Export(ctx, renderer, job.Output, job.width(), job.height(), srv.Port())
}

func (j Job) validate() error {
	if j.Input == "" {
		return fmt.Errorf("%w: no input", ErrReadDiagram)
	}
	if j.Output == "" {
		return fmt.Errorf("%w: no output path", ErrWriteOutput)
	}
	if j.Width < 0 || j.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, j.Width, j.Height)
	}
	return nil
}

func (j Job) width() int {
	if j.Width == 0 {
		return DefaultWidth
	}
	return j.Width
}

func (j Job) height() int {
	if j.Height == 0 {
		return DefaultHeight
	}
	return j.Height
}
