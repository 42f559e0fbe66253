package mmdc

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/rod/lib/utils"

	"github.com/alnah/go-mmdc/internal/process"
)

// Compile-time interface checks
var (
	_ Browser  = (*RodBrowser)(nil)
	_ Instance = (*rodInstance)(nil)
	_ Page     = (*rodPage)(nil)
	_ Element  = (*rodElement)(nil)
)

// RodBrowser launches headless Chrome through go-rod.
// Rod downloads Chromium on first run if no browser is found and Bin is empty.
type RodBrowser struct {
	// Bin is the browser executable. Empty falls back to ROD_BROWSER_BIN,
	// then to rod's own lookup.
	Bin string

	// NoSandbox disables Chrome's sandbox. It is also enabled by
	// ROD_NO_SANDBOX=1, CI=true, or a ROD_BROWSER_BIN override, as
	// containerized Chrome rarely has the privileges the sandbox needs.
	NoSandbox bool
}

func (b *RodBrowser) bin() string {
	if b.Bin != "" {
		return b.Bin
	}
	return os.Getenv("ROD_BROWSER_BIN")
}

func (b *RodBrowser) noSandbox() bool {
	return b.NoSandbox ||
		os.Getenv("ROD_NO_SANDBOX") == "1" ||
		os.Getenv("CI") == "true" ||
		os.Getenv("ROD_BROWSER_BIN") != ""
}

// Launch starts a headless browser with the given window size and
// connects to its DevTools endpoint.
func (b *RodBrowser) Launch(ctx context.Context, vp Viewport) (Instance, error) {
	l := launcher.New().
		Context(ctx).
		Headless(true).
		Set("window-size", fmt.Sprintf("%d,%d", vp.Width, vp.Height))

	if bin := b.bin(); bin != "" {
		l = l.Bin(bin)
	}
	if b.noSandbox() {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, err
	}

	// No device emulation: the viewport must be exactly the requested size.
	browser := rod.New().Context(ctx).ControlURL(u).NoDefaultDevice()
	if err := browser.Connect(); err != nil {
		killLauncher(l)
		return nil, err
	}

	return &rodInstance{browser: browser, launcher: l, viewport: vp}, nil
}

type rodInstance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	viewport Viewport
}

func (i *rodInstance) NewPage(ctx context.Context) (Page, error) {
	page, err := i.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             i.viewport.Width,
		Height:            i.viewport.Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}
	return &rodPage{page: page}, nil
}

// Close disconnects and kills the browser's whole process tree.
func (i *rodInstance) Close() error {
	err := i.browser.Close()
	killLauncher(i.launcher)
	return err
}

func killLauncher(l *launcher.Launcher) {
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
	l.Cleanup()
}

type rodPage struct {
	page *rod.Page
}

func (p *rodPage) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

func (p *rodPage) WaitForSelector(ctx context.Context, selector string, wait Wait) (Element, error) {
	page := p.page.Context(ctx).
		Sleeper(fixedSleeper(wait.Interval)).
		Timeout(wait.Timeout)
	defer page.CancelTimeout()

	el, err := page.Element(selector)
	if err != nil {
		return nil, err
	}
	return &rodElement{el: el}, nil
}

// fixedSleeper polls at a constant interval.
func fixedSleeper(interval time.Duration) func() utils.Sleeper {
	return func() utils.Sleeper {
		return utils.BackoffSleeper(interval, interval, nil)
	}
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Eval(ctx context.Context, js string) (string, error) {
	res, err := e.el.Context(ctx).Eval(js)
	if err != nil {
		return "", err
	}
	if res.Value.Nil() {
		return "", nil
	}
	return res.Value.JSON("", ""), nil
}

func (e *rodElement) Screenshot(ctx context.Context) ([]byte, error) {
	return e.el.Context(ctx).Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
}
