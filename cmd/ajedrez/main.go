// ajedrez is a chess rules engine: it validates positions, applies moves,
// replays PGN games, and renders boards to the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/ajedrez-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("ajedrez-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if flag.NArg() == 0 {
		if err := runPosition(cfg); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	failed := 0
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			failed++
			continue
		}

		failed += replayFile(cfg, file, filename)
		file.Close()
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ajedrez [options] [pgn-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A chess rules engine and PGN replayer.\n\n")
	fmt.Fprintf(os.Stderr, "With no file arguments, prints the position given by -fen (or the\n")
	fmt.Fprintf(os.Stderr, "initial position) after applying any -moves. With file arguments,\n")
	fmt.Fprintf(os.Stderr, "replays every game in each PGN file and reports illegal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
