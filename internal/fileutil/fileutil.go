// Package fileutil provides file and path utility functions.
package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StdinPath is the path value that selects standard input.
const StdinPath = "-"

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "mmdc" -> false (name)
//   - "./mmdc.yaml" -> true (relative path)
//   - "/etc/mmdc.yaml" -> true (absolute)
//   - "C:\mmdc.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExtension reports whether path ends in one of exts, ignoring case.
// Each ext includes the leading dot.
func HasExtension(path string, exts ...string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// ReadOrDefault returns the contents of path, or a copy of def when path is
// empty or unreadable. A non-nil error reports why the default was used; the
// returned bytes are valid either way.
func ReadOrDefault(path string, def []byte) ([]byte, error) {
	if path == "" {
		return bytes.Clone(def), nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- override path is user-provided
	if err != nil {
		return bytes.Clone(def), err
	}
	return data, nil
}

// Canonicalize returns the absolute path of an existing file with symlinks
// resolved.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks: %w", err)
	}
	return resolved, nil
}
