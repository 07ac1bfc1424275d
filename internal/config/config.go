// Package config provides runtime configuration for ajedrez.
package config

import (
	"io"
	"os"
	"runtime"
)

// Config holds program configuration.
type Config struct {
	// Rendering
	Unicode   bool // figurine symbols instead of FEN letters
	Highlight bool // paint recently moved squares

	// Processing state
	Verbosity int // 0=results only, 1=per-game summary, 2=per-move commentary
	Workers   int // parallel replay workers

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Unicode:    true,
		Highlight:  true,
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}
