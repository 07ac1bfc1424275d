// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/ajedrez-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Load the position from a FEN string instead of the initial position")
	moveList  = flag.String("moves", "", "Coordinate moves to apply before printing (e.g. 'e2e4 e7e5')")
	showFEN   = flag.Bool("F", false, "Print the FEN string of the final position")

	// Rendering options
	asciiPieces = flag.Bool("ascii", false, "Use FEN letters instead of figurine symbols")
	noHighlight = flag.Bool("no-highlight", false, "Don't highlight recently moved squares")
	noBoard     = flag.Bool("no-board", false, "Don't print the board after replaying")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=results only, 1=per-game summary, 2=per-move commentary")
	quiet      = flag.Bool("q", false, "Quiet mode, same as -v 0")

	// Processing options
	numWorkers = flag.Int("workers", 0, "Number of parallel replay workers (0 = all CPUs)")

	help    = flag.Bool("h", false, "Show usage information")
	version = flag.Bool("version", false, "Show version information")
)

// applyFlags transfers flag values onto the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Unicode = !*asciiPieces
	cfg.Highlight = !*noHighlight
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	if *numWorkers > 0 {
		cfg.Workers = *numWorkers
	}
}
