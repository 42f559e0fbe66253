package mmdc

// Notes:
// - fakeBrowser implements Browser, Instance, Page and Element so the
//   Renderer and Converter can be tested without Chrome
// - Each step can be made to fail independently; calls are recorded

import (
	"context"
)

type fakeBrowser struct {
	launchErr error
	pageErr   error
	navErr    error
	waitErr   error
	evalErr   error
	shotErr   error

	evalResult string
	png        []byte

	// onNavigate runs before Navigate returns, with the navigated URL.
	onNavigate func(url string) error

	launched  bool
	viewport  Viewport
	navigated string
	selector  string
	wait      Wait
	script    string
	closed    bool
}

func (b *fakeBrowser) Launch(_ context.Context, vp Viewport) (Instance, error) {
	if b.launchErr != nil {
		return nil, b.launchErr
	}
	b.launched = true
	b.viewport = vp
	return &fakeInstance{b: b}, nil
}

type fakeInstance struct{ b *fakeBrowser }

func (i *fakeInstance) NewPage(context.Context) (Page, error) {
	if i.b.pageErr != nil {
		return nil, i.b.pageErr
	}
	return &fakePage{b: i.b}, nil
}

func (i *fakeInstance) Close() error {
	i.b.closed = true
	return nil
}

type fakePage struct{ b *fakeBrowser }

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.b.navigated = url
	if p.b.onNavigate != nil {
		if err := p.b.onNavigate(url); err != nil {
			return err
		}
	}
	return p.b.navErr
}

func (p *fakePage) WaitForSelector(_ context.Context, selector string, wait Wait) (Element, error) {
	p.b.selector = selector
	p.b.wait = wait
	if p.b.waitErr != nil {
		return nil, p.b.waitErr
	}
	return &fakeElement{b: p.b}, nil
}

type fakeElement struct{ b *fakeBrowser }

func (e *fakeElement) Eval(_ context.Context, js string) (string, error) {
	e.b.script = js
	if e.b.evalErr != nil {
		return "", e.b.evalErr
	}
	return e.b.evalResult, nil
}

func (e *fakeElement) Screenshot(context.Context) ([]byte, error) {
	if e.b.shotErr != nil {
		return nil, e.b.shotErr
	}
	return e.b.png, nil
}

// testResources returns small stand-ins for the compiled-in assets.
func testResources() Resources {
	return Resources{
		HTML:          []byte("<!doctype html><title>shell</title>"),
		Font:          []byte("default-font"),
		Style:         []byte("body { margin: 0; }"),
		Config:        []byte(`{"theme":"default"}`),
		RenderLibrary: []byte("window.mermaid = {};"),
	}
}
