package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mmdc/internal/fileutil"
	"github.com/alnah/go-mmdc/internal/yamlutil"
)

// Sentinel errors for settings operations.
var (
	ErrConfigNotFound  = errors.New("settings file not found")
	ErrEmptyConfigName = errors.New("settings name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse settings")
	ErrInvalidSetting  = errors.New("invalid setting")
)

// Built-in render defaults, used when neither flags nor settings set a value.
const (
	DefaultWidth        = 1960
	DefaultHeight       = 2160
	DefaultTimeout      = 30 * time.Second
	DefaultPollInterval = 100 * time.Millisecond
)

// MaxDimension caps width and height. Chrome refuses larger surfaces.
const MaxDimension = 16384

// dirName is the directory under the user config dir searched for settings.
const dirName = "go-mmdc"

// Config holds render settings loaded from a YAML file.
// Zero values mean "not set" and resolve to the built-in defaults.
type Config struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	Timeout       string        `yaml:"timeout"`      // Go duration, e.g. "45s"
	PollInterval  string        `yaml:"pollInterval"` // Go duration, e.g. "250ms"
	CSS           string        `yaml:"css"`          // stylesheet override path
	MermaidConfig string        `yaml:"mermaidConfig"`
	Font          string        `yaml:"font"`
	Browser       BrowserConfig `yaml:"browser"`
}

// BrowserConfig selects and configures the headless browser.
type BrowserConfig struct {
	Bin       string `yaml:"bin"`       // empty = rod lookup / download
	NoSandbox bool   `yaml:"noSandbox"` // required in most containers
}

// DefaultConfig returns settings with every field unset.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate rejects out-of-range dimensions and malformed durations.
func (c *Config) Validate() error {
	if err := validateDimension("width", c.Width); err != nil {
		return err
	}
	if err := validateDimension("height", c.Height); err != nil {
		return err
	}
	if _, err := parseDuration("timeout", c.Timeout); err != nil {
		return err
	}
	if _, err := parseDuration("pollInterval", c.PollInterval); err != nil {
		return err
	}
	return nil
}

// ResolvedWidth returns the configured width or DefaultWidth.
func (c *Config) ResolvedWidth() int {
	if c.Width > 0 {
		return c.Width
	}
	return DefaultWidth
}

// ResolvedHeight returns the configured height or DefaultHeight.
func (c *Config) ResolvedHeight() int {
	if c.Height > 0 {
		return c.Height
	}
	return DefaultHeight
}

// ResolvedTimeout returns the element wait timeout. Call Validate first;
// an unparsable value falls back to DefaultTimeout.
func (c *Config) ResolvedTimeout() time.Duration {
	d, err := parseDuration("timeout", c.Timeout)
	if err != nil || d == 0 {
		return DefaultTimeout
	}
	return d
}

// ResolvedPollInterval returns the element poll interval.
func (c *Config) ResolvedPollInterval() time.Duration {
	d, err := parseDuration("pollInterval", c.PollInterval)
	if err != nil || d == 0 {
		return DefaultPollInterval
	}
	return d
}

func validateDimension(field string, v int) error {
	if v < 0 || v > MaxDimension {
		return fmt.Errorf("%w: %s = %d (must be 1-%d)", ErrInvalidSetting, field, v, MaxDimension)
	}
	return nil
}

// parseDuration returns 0 for an empty string.
func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q: %v", ErrInvalidSetting, field, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s = %q (must be positive)", ErrInvalidSetting, field, s)
	}
	return d, nil
}

// LoadConfig loads settings from a file path or a settings name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the working directory and the user config dir.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- settings path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a settings name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, dirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
