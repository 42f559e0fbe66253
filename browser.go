package mmdc

import (
	"context"
	"time"
)

// Viewport is the browser window size in CSS pixels.
type Viewport struct {
	Width  int
	Height int
}

// Wait bounds a selector wait: the DOM is polled every Interval until the
// selector matches or Timeout elapses.
type Wait struct {
	Timeout  time.Duration
	Interval time.Duration
}

// Browser launches headless browser instances. The Renderer depends only on
// this set of interfaces; RodBrowser is the production implementation.
type Browser interface {
	Launch(ctx context.Context, vp Viewport) (Instance, error)
}

// Instance is one running browser process.
type Instance interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is a browser tab.
type Page interface {
	// Navigate loads url and blocks until the load event. The diagram may
	// still be rendering when it returns.
	Navigate(ctx context.Context, url string) error

	// WaitForSelector polls until an element matches selector.
	WaitForSelector(ctx context.Context, selector string, wait Wait) (Element, error)
}

// Element is a DOM element found by WaitForSelector.
type Element interface {
	// Eval runs js with `this` bound to the element and returns the
	// JSON encoding of its result, or "" when the result is undefined.
	Eval(ctx context.Context, js string) (string, error)

	// Screenshot captures the element's bounding box as PNG.
	Screenshot(ctx context.Context) ([]byte, error)
}
