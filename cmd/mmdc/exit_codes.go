package main

import (
	"errors"
	"os"

	mmdc "github.com/alnah/go-mmdc"
	"github.com/alnah/go-mmdc/internal/config"
)

// Exit codes for mmdc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, settings, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mmdc.ErrBrowserLaunch) ||
		errors.Is(err, mmdc.ErrPageCreate) ||
		errors.Is(err, mmdc.ErrNavigation) ||
		errors.Is(err, mmdc.ErrElementWait) ||
		errors.Is(err, mmdc.ErrSVGExtraction) ||
		errors.Is(err, mmdc.ErrScreenshot) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mmdc.ErrReadDiagram) ||
		errors.Is(err, mmdc.ErrWriteOutput) ||
		errors.Is(err, mmdc.ErrCanonicalPath) {
		return ExitIO
	}

	// Usage/settings/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidSetting) ||
		errors.Is(err, mmdc.ErrInvalidDimensions) ||
		errors.Is(err, mmdc.ErrNoDiagramBlock) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrMissingOutput) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrUnexpectedArg) {
		return ExitUsage
	}

	return ExitGeneral
}
