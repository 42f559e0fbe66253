package mmdc

import (
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	waitTimeout  time.Duration
	pollInterval time.Duration
	browserBin   string
	noSandbox    bool
}

// WithWaitTimeout bounds the wait for the diagram to render.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithWaitTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mmdc: WithWaitTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.waitTimeout = d
	}
}

// WithPollInterval sets how often the page is checked for the rendered
// diagram.
// Panics if d <= 0.
func WithPollInterval(d time.Duration) Option {
	if d <= 0 {
		panic("mmdc: WithPollInterval duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.pollInterval = d
	}
}

// WithBrowser replaces the go-rod browser, typically with a fake in tests.
// WithBrowserBin and WithNoSandbox are ignored when it is set.
func WithBrowser(b Browser) Option {
	return func(c *Converter) {
		c.browser = b
	}
}

// WithBrowserBin sets the Chrome/Chromium executable.
func WithBrowserBin(path string) Option {
	return func(c *Converter) {
		c.cfg.browserBin = path
	}
}

// WithNoSandbox disables Chrome's sandbox.
func WithNoSandbox(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.noSandbox = enabled
	}
}

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaults replaces the compiled-in resources used when no override
// file is given.
func WithDefaults(r Resources) Option {
	return func(c *Converter) {
		c.defaults = &r
	}
}
