package mmdc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mmdc/internal/assets"
	"github.com/alnah/go-mmdc/internal/fileutil"
	"github.com/alnah/go-mmdc/internal/markdown"
)

// Resource names, also used as the Asset Server routes.
const (
	ResourceFont          = "font"
	ResourceStyle         = "style"
	ResourceConfig        = "config"
	ResourceDiagram       = "diagram"
	ResourceRenderLibrary = "mermaid_js"
)

// Resources is a full set of page resources, typically the compiled-in
// defaults.
type Resources struct {
	HTML          []byte
	Font          []byte
	Style         []byte
	Config        []byte
	RenderLibrary []byte
}

// DefaultResources returns the resources embedded in the binary.
func DefaultResources() Resources {
	b := assets.Defaults()
	return Resources{
		HTML:          b.HTML,
		Font:          b.Font,
		Style:         b.Style,
		Config:        b.Config,
		RenderLibrary: b.RenderLibrary,
	}
}

// Sources names where each store field comes from.
type Sources struct {
	// Diagram is a file path, or "-" for Stdin. Markdown files (.md,
	// .markdown) contribute their Block-th mermaid fenced block.
	Diagram string
	Block   int

	// Optional overrides. Empty or unreadable paths fall back to defaults.
	Font   string
	Style  string
	Config string

	// Stdin is read when Diagram is "-". Nil means os.Stdin.
	Stdin io.Reader
}

// Store is the immutable snapshot served to the browser. It is built once
// by BuildStore and only read afterwards, so it is safe for concurrent use
// without locking.
type Store struct {
	html          []byte
	font          []byte
	style         []byte
	config        []byte
	diagram       []byte
	renderLibrary []byte
}

// BuildStore assembles the store. Override read failures are logged and
// replaced by the default; a diagram read failure is returned.
func BuildStore(src Sources, defaults Resources, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = discardLogger()
	}
	if len(defaults.RenderLibrary) == 0 {
		return nil, ErrRenderLibraryMissing
	}

	diagram, err := readDiagram(src)
	if err != nil {
		return nil, err
	}

	return &Store{
		html:          bytes.Clone(defaults.HTML),
		font:          readOverride(logger, ResourceFont, src.Font, defaults.Font),
		style:         readOverride(logger, ResourceStyle, src.Style, defaults.Style),
		config:        readOverride(logger, ResourceConfig, src.Config, defaults.Config),
		diagram:       diagram,
		renderLibrary: bytes.Clone(defaults.RenderLibrary),
	}, nil
}

// HTML returns a copy of the page shell.
func (s *Store) HTML() []byte {
	return bytes.Clone(s.html)
}

// Resource returns a copy of the named resource.
func (s *Store) Resource(name string) ([]byte, bool) {
	var b []byte
	switch name {
	case ResourceFont:
		b = s.font
	case ResourceStyle:
		b = s.style
	case ResourceConfig:
		b = s.config
	case ResourceDiagram:
		b = s.diagram
	case ResourceRenderLibrary:
		b = s.renderLibrary
	default:
		return nil, false
	}
	return bytes.Clone(b), true
}

func readDiagram(src Sources) ([]byte, error) {
	if src.Diagram == fileutil.StdinPath {
		r := src.Stdin
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadDiagram, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(src.Diagram) // #nosec G304 -- diagram path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDiagram, err)
	}

	if fileutil.HasExtension(src.Diagram, ".md", ".markdown") {
		block, err := markdown.ExtractDiagram(data, src.Block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Diagram, err)
		}
		return block, nil
	}
	return data, nil
}

func readOverride(logger *log.Logger, name, path string, def []byte) []byte {
	data, err := fileutil.ReadOrDefault(path, def)
	if err != nil {
		logger.Debug("override unreadable, using default", "resource", name, "path", path, "err", err)
	}
	return data
}
