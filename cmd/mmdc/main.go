package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	mmdc "github.com/alnah/go-mmdc"
	"github.com/alnah/go-mmdc/internal/assets"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run executes the command line and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) > 0 && args[0] == "doctor" {
		return runDoctorCmd(args[1:], env)
	}

	f, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if f.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if f.common.version {
		fmt.Fprintf(env.Stdout, "mmdc %s (mermaid %s)\n", Version, assets.MermaidVersion)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, f.common)

	if env.MaxProcs != nil {
		env.MaxProcs(logger)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	path, err := runConvert(ctx, f, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, f.common.settings))
		return exitCodeFor(err)
	}

	fmt.Fprintln(env.Stdout, path)
	return ExitSuccess
}

// newLogger maps --quiet and --verbose onto log levels.
func newLogger(w io.Writer, f commonFlags) *log.Logger {
	level := log.InfoLevel
	switch {
	case f.verbose:
		level = log.DebugLevel
	case f.quiet:
		level = log.ErrorLevel
	}
	return mmdc.NewLogger(w, level)
}

// setMaxProcs sizes GOMAXPROCS to the container CPU quota, logging at debug level.
func setMaxProcs(logger *log.Logger) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))
}
