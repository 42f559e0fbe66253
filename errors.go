package mmdc

import (
	"errors"

	"github.com/alnah/go-mmdc/internal/markdown"
)

// Sentinel errors for conversion operations.
var (
	// Input errors.
	ErrReadDiagram          = errors.New("failed to read diagram source")
	ErrNoDiagramBlock       = markdown.ErrNoDiagramBlock
	ErrRenderLibraryMissing = errors.New("rendering library not embedded")
	ErrInvalidDimensions    = errors.New("invalid image dimensions")

	// Server errors.
	ErrServerListen = errors.New("failed to start asset server")

	// Browser errors.
	ErrBrowserLaunch = errors.New("failed to launch browser")
	ErrPageCreate    = errors.New("failed to create browser page")
	ErrNavigation    = errors.New("failed to load page")
	ErrElementWait   = errors.New("diagram did not render")
	ErrSVGExtraction = errors.New("failed to extract SVG")
	ErrScreenshot    = errors.New("failed to capture screenshot")

	// Output errors.
	ErrWriteOutput   = errors.New("failed to write output file")
	ErrCanonicalPath = errors.New("failed to resolve output path")
)
