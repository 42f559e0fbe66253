package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	mmdc "github.com/alnah/go-mmdc"
	"github.com/alnah/go-mmdc/internal/config"
	"github.com/alnah/go-mmdc/internal/hints"
)

// settings is the result of merging flags, the settings file and the
// built-in defaults.
type settings struct {
	job          mmdc.Job
	timeout      time.Duration
	pollInterval time.Duration
	browserBin   string
	noSandbox    bool
}

// runConvert loads settings, merges them with the flags and runs one
// conversion. It returns the canonical output path.
func runConvert(ctx context.Context, f *cliFlags, env *Environment, logger *log.Logger) (string, error) {
	cfg, err := loadSettings(f.common.settings)
	if err != nil {
		return "", err
	}

	s := mergeSettings(f, cfg)
	s.job.Stdin = env.Stdin
	logger.Debug("settings resolved",
		"width", s.job.Width,
		"height", s.job.Height,
		"timeout", s.timeout,
		"pollInterval", s.pollInterval,
	)

	conv := env.NewConverter(
		mmdc.WithLogger(logger),
		mmdc.WithWaitTimeout(s.timeout),
		mmdc.WithPollInterval(s.pollInterval),
		mmdc.WithBrowserBin(s.browserBin),
		mmdc.WithNoSandbox(s.noSandbox),
	)

	start := time.Now()
	path, err := conv.Convert(ctx, s.job)
	if err != nil {
		return "", err
	}
	logger.Info("converted", "output", path, "format", mmdc.FormatOf(path), "duration", time.Since(start).Round(time.Millisecond))
	return path, nil
}

// loadSettings returns empty settings when no name is given.
func loadSettings(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return cfg, nil
}

// mergeSettings applies the precedence explicit flag > settings file >
// built-in default.
func mergeSettings(f *cliFlags, cfg *config.Config) settings {
	r := f.render
	s := settings{
		job: mmdc.Job{
			Input:  r.input,
			Output: r.output,
			Block:  r.block,
			Width:  r.width,
			Height: r.height,
			Font:   r.font,
			Style:  r.cssFile,
			Config: r.configFile,
		},
		timeout:      r.timeout,
		pollInterval: r.pollInterval,
		browserBin:   cfg.Browser.Bin,
		noSandbox:    cfg.Browser.NoSandbox,
	}

	if !f.changed("width") {
		s.job.Width = cfg.ResolvedWidth()
	}
	if !f.changed("height") {
		s.job.Height = cfg.ResolvedHeight()
	}
	if !f.changed("timeout") {
		s.timeout = cfg.ResolvedTimeout()
	}
	if !f.changed("poll-interval") {
		s.pollInterval = cfg.ResolvedPollInterval()
	}
	if !f.changed("cssFile") && cfg.CSS != "" {
		s.job.Style = cfg.CSS
	}
	if !f.changed("configFile") && cfg.MermaidConfig != "" {
		s.job.Config = cfg.MermaidConfig
	}
	if !f.changed("font") && cfg.Font != "" {
		s.job.Font = cfg.Font
	}
	return s
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, settingsName string) string {
	switch {
	case errors.Is(err, mmdc.ErrBrowserLaunch):
		return hints.ForBrowserLaunch()
	case errors.Is(err, mmdc.ErrElementWait):
		return hints.ForRenderTimeout()
	case errors.Is(err, mmdc.ErrRenderLibraryMissing):
		return hints.ForRenderLibraryMissing()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForSettingsNotFound(config.SearchPaths(settingsName))
	case errors.Is(err, mmdc.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, mmdc.ErrReadDiagram):
		return hints.ForMissingDiagram()
	}
	return ""
}
