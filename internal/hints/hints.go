// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mmdc/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// InCI reports whether a common CI environment variable is set.
func InCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserLaunch returns hints for browser launch errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserLaunch() string {
	var hints []string

	if (InCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a local Chrome")
	}

	hints = append(hints, "run 'mmdc doctor' to inspect the browser setup")

	return formatHints(hints)
}

// ForRenderTimeout returns a hint for diagrams that never finished rendering.
func ForRenderTimeout() string {
	return format("check the diagram syntax, or raise --timeout for large diagrams")
}

// ForRenderLibraryMissing returns a hint for builds without the vendored bundle.
func ForRenderLibraryMissing() string {
	return format("run 'go generate ./internal/assets' and rebuild")
}

// ForSettingsNotFound returns hints for settings file not found errors.
// Suggests --settings with a path, or a file in the user config dir.
func ForSettingsNotFound(searchedPaths []string) string {
	hint := "use --settings /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-mmdc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMissingDiagram returns hints for an unreadable diagram source.
func ForMissingDiagram() string {
	return format("pass an existing file, or '-' to read the diagram from stdin")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
