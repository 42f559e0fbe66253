package mmdc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Default bounds for the render-completion wait.
const (
	DefaultWaitTimeout  = 30 * time.Second
	DefaultPollInterval = 100 * time.Millisecond
)

// Render-completion selectors. The page script creates div#mermaid only
// after mermaid.render resolves, and mermaid names its SVG root after the
// id passed to render ("svg"). Both selectors therefore depend on the page
// shell and on mermaid's DOM output; a mermaid upgrade that renames the
// root element makes PNG waits time out.
const (
	// svgSelector only needs the container: innerHTML does not require
	// visual layout.
	svgSelector = "div#mermaid"

	// pngSelector waits for the SVG root itself so the screenshot does
	// not capture an empty container.
	pngSelector = "div#mermaid > svg#svg"

	innerHTMLScript = "() => this.innerHTML"
)

// RenderRequest holds the parameters of one render.
type RenderRequest struct {
	Width  int
	Height int
	Format Format
	Port   int
}

// Validate rejects non-positive dimensions.
func (r RenderRequest) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	return nil
}

// ImageRenderer produces image bytes for a request.
type ImageRenderer interface {
	Render(ctx context.Context, req RenderRequest) ([]byte, error)
}

// Compile-time interface check
var _ ImageRenderer = (*Renderer)(nil)

// Renderer drives a Browser through launch, navigation, the
// render-completion wait and capture. Nothing is retried.
type Renderer struct {
	browser Browser
	wait    Wait
	logger  *log.Logger
}

// NewRenderer creates a Renderer. Zero Wait fields take the defaults.
func NewRenderer(browser Browser, wait Wait, logger *log.Logger) *Renderer {
	if wait.Timeout <= 0 {
		wait.Timeout = DefaultWaitTimeout
	}
	if wait.Interval <= 0 {
		wait.Interval = DefaultPollInterval
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Renderer{browser: browser, wait: wait, logger: logger}
}

// Render launches a browser sized to the request, loads the asset server
// page on req.Port and extracts the diagram in req.Format. The browser is
// closed before returning.
func (r *Renderer) Render(ctx context.Context, req RenderRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	inst, err := r.browser.Launch(ctx, Viewport{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	defer func() {
		if err := inst.Close(); err != nil {
			r.logger.Debug("closing browser", "err", err)
		}
	}()
	r.logger.Debug("browser launched", "width", req.Width, "height", req.Height, "duration", since(start))

	page, err := inst.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	url := pageURL(req.Port)
	if err := page.Navigate(ctx, url); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, url, err)
	}
	r.logger.Debug("page loaded", "url", url)

	if req.Format == FormatSVG {
		return r.extractSVG(ctx, page)
	}
	return r.capturePNG(ctx, page)
}

func (r *Renderer) extractSVG(ctx context.Context, page Page) ([]byte, error) {
	el, err := r.waitFor(ctx, page, svgSelector)
	if err != nil {
		return nil, err
	}

	raw, err := el.Eval(ctx, innerHTMLScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSVGExtraction, err)
	}
	return decodeEvalString(raw)
}

func (r *Renderer) capturePNG(ctx context.Context, page Page) ([]byte, error) {
	el, err := r.waitFor(ctx, page, pngSelector)
	if err != nil {
		return nil, err
	}

	png, err := el.Screenshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	return png, nil
}

func (r *Renderer) waitFor(ctx context.Context, page Page, selector string) (Element, error) {
	start := time.Now()
	el, err := page.WaitForSelector(ctx, selector, r.wait)
	if err != nil {
		return nil, fmt.Errorf("%w: waiting for %q (timeout %s): %v", ErrElementWait, selector, r.wait.Timeout, err)
	}
	r.logger.Debug("diagram rendered", "selector", selector, "duration", since(start))
	return el, nil
}

// decodeEvalString turns the JSON-quoted string returned by an evaluation
// into raw bytes: the outer quotes are stripped and escapes such as \" are
// restored. An undefined or null result fails; an empty string is returned
// as empty output.
func decodeEvalString(raw string) ([]byte, error) {
	if raw == "" || raw == "null" {
		return nil, fmt.Errorf("%w: no value", ErrSVGExtraction)
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSVGExtraction, err)
	}
	return []byte(s), nil
}
