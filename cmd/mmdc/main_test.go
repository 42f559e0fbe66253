package main

// Notes:
// - run is tested end to end with a fake Converter injected through
//   Environment.NewConverter; no browser is started
// - Real conversions are covered by the root package integration tests

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mmdc "github.com/alnah/go-mmdc"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake converter
// ---------------------------------------------------------------------------

type fakeConverter struct {
	job   mmdc.Job
	opts  int
	stdin string
	path  string
	err   error
}

func (f *fakeConverter) Convert(_ context.Context, job mmdc.Job) (string, error) {
	f.job = job
	if job.Stdin != nil {
		b, _ := io.ReadAll(job.Stdin)
		f.stdin = string(b)
	}
	return f.path, f.err
}

func testEnv(conv *fakeConverter, stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		NewConverter: func(opts ...mmdc.Option) Converter {
			conv.opts = len(opts)
			return conv
		},
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestRun
// ---------------------------------------------------------------------------

func TestRun_Success(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{path: "/abs/out.svg"}
	env, stdout, stderr := testEnv(conv, "graph TD; A-->B;")

	code := run([]string{"-i", "-", "-o", "out.svg", "-w", "800", "-H", "600", "-q"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}

	if got := stdout.String(); got != "/abs/out.svg\n" {
		t.Errorf("stdout = %q, want the output path", got)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want nothing with --quiet", stderr.String())
	}
	if conv.job.Input != "-" || conv.job.Output != "out.svg" || conv.job.Width != 800 || conv.job.Height != 600 {
		t.Errorf("job = %+v", conv.job)
	}
	if conv.stdin != "graph TD; A-->B;" {
		t.Errorf("stdin = %q", conv.stdin)
	}
	if conv.opts == 0 {
		t.Error("no options passed to the converter")
	}
}

func TestRun_ConversionError(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{err: mmdc.ErrBrowserLaunch}
	env, stdout, stderr := testEnv(conv, "")

	code := run([]string{"-i", "in.mmd", "-o", "out.png"}, env)
	if code != ExitBrowser {
		t.Errorf("exit code = %d, want %d", code, ExitBrowser)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "failed to launch browser") || !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want error and hint", stderr.String())
	}
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{}
	env, stdout, stderr := testEnv(conv, "")

	code := run([]string{"-o", "out.png"}, env)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "--input") || !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr = %q, want error and usage", stderr.String())
	}
}

func TestRun_SettingsNotFound(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{}
	env, _, stderr := testEnv(conv, "")

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	code := run([]string{"-i", "in.mmd", "-o", "out.png", "-s", missing}, env)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "settings file not found") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_SettingsApplied(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "mmdc.yaml")
	if err := os.WriteFile(path, []byte("width: 1024\ncss: custom.css\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	conv := &fakeConverter{path: "/abs/out.png"}
	env, _, stderr := testEnv(conv, "")

	code := run([]string{"-i", "in.mmd", "-o", "out.png", "-s", path, "-q"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr.String())
	}
	if conv.job.Width != 1024 || conv.job.Style != "custom.css" {
		t.Errorf("job = %+v, want settings applied", conv.job)
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--help"}, "Usage: mmdc"},
		{[]string{"-h"}, "Usage: mmdc"},
		{[]string{"--version"}, "mmdc " + Version},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv(&fakeConverter{}, "")
			if code := run(tt.args, env); code != ExitSuccess {
				t.Errorf("exit code = %d, want 0", code)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_VerboseLogs(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{path: "/abs/out.png"}
	env, _, stderr := testEnv(conv, "")

	if code := run([]string{"-i", "in.mmd", "-o", "out.png", "-v"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "settings resolved") {
		t.Errorf("stderr = %q, want debug output", stderr.String())
	}
}
