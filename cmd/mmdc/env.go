package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	mmdc "github.com/alnah/go-mmdc"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, job mmdc.Job) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*mmdc.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(opts ...mmdc.Option) Converter

	// MaxProcs configures the runtime once the logger exists. Nil skips it.
	MaxProcs func(logger *log.Logger)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(opts ...mmdc.Option) Converter {
			return mmdc.NewConverter(opts...)
		},
		MaxProcs: setMaxProcs,
	}
}
