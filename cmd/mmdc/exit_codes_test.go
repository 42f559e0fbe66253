package main

// Notes:
// - exitCodeFor: we test the sentinel errors from mmdc, config and this
//   package, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mmdc "github.com/alnah/go-mmdc"
	"github.com/alnah/go-mmdc/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser launch", mmdc.ErrBrowserLaunch, ExitBrowser},
		{"page create", mmdc.ErrPageCreate, ExitBrowser},
		{"navigation", mmdc.ErrNavigation, ExitBrowser},
		{"element wait", mmdc.ErrElementWait, ExitBrowser},
		{"svg extraction", mmdc.ErrSVGExtraction, ExitBrowser},
		{"screenshot", mmdc.ErrScreenshot, ExitBrowser},
		{"wrapped element wait", fmt.Errorf("%w: timeout", mmdc.ErrElementWait), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read diagram", mmdc.ErrReadDiagram, ExitIO},
		{"write output", mmdc.ErrWriteOutput, ExitIO},
		{"canonical path", mmdc.ErrCanonicalPath, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/settings/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"invalid setting", config.ErrInvalidSetting, ExitUsage},
		{"invalid dimensions", mmdc.ErrInvalidDimensions, ExitUsage},
		{"no diagram block", mmdc.ErrNoDiagramBlock, ExitUsage},
		{"missing input", ErrMissingInput, ExitUsage},
		{"missing output", ErrMissingOutput, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"unexpected arg", ErrUnexpectedArg, ExitUsage},
		{"wrapped settings", fmt.Errorf("loading settings: %w", config.ErrConfigNotFound), ExitUsage},

		// General errors (exit 1)
		{"render library missing", mmdc.ErrRenderLibraryMissing, ExitGeneral},
		{"server listen", mmdc.ErrServerListen, ExitGeneral},
		{"unknown error", errors.New("something"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d outside (2, 126)", code)
		}
	}
}
