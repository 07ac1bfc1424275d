// processor.go - Position and game replay driving the engine packages.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/config"
	"github.com/lgbarn/ajedrez-go/internal/engine"
	"github.com/lgbarn/ajedrez-go/internal/fen"
	"github.com/lgbarn/ajedrez-go/internal/pgn"
	"github.com/lgbarn/ajedrez-go/internal/render"
	"github.com/lgbarn/ajedrez-go/internal/worker"
)

// runPosition loads the requested position, applies any coordinate moves,
// and prints the result.
func runPosition(cfg *config.Config) error {
	board, err := loadBoard()
	if err != nil {
		return err
	}

	log, err := applyMoves(board, *moveList)
	if cfg.Verbosity >= 2 {
		for _, line := range log {
			fmt.Fprintln(cfg.OutputFile, line)
		}
	}
	if err != nil {
		return err
	}

	printPosition(cfg, board)
	return nil
}

// loadBoard builds the starting board from -fen, or the initial position.
func loadBoard() (*chess.Board, error) {
	if *fenString == "" {
		return fen.InitialBoard(), nil
	}
	return fen.Decode(*fenString)
}

// applyMoves applies whitespace- or comma-separated coordinate moves such
// as "e2e4 e7e5". It returns the move descriptions committed before any
// failure.
func applyMoves(board *chess.Board, list string) ([]string, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	var log []string
	for _, text := range fields {
		mv, err := chess.ParseMove(text)
		if err != nil {
			return log, fmt.Errorf("move %q: %w", text, err)
		}
		desc, err := engine.MovePiece(board, mv)
		if err != nil {
			return log, fmt.Errorf("move %q: %w", text, err)
		}
		log = append(log, desc)
	}
	return log, nil
}

// replayFile replays every game in one PGN stream and returns the number
// of games that failed.
func replayFile(cfg *config.Config, r io.Reader, source string) int {
	games, err := pgn.ParseAll(r)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error parsing %s: %v\n", source, err)
		return 1
	}

	results := worker.ReplayAll(games, source, cfg.Workers, replayGame)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		reportGame(cfg, res)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%s: %d game(s) replayed, %d failed.\n",
			source, len(results), failed)
	}
	return failed
}

// replayGame replays one game from the initial position.
func replayGame(item worker.WorkItem) worker.ReplayResult {
	board := fen.InitialBoard()
	log, err := pgn.Replay(board, item.Game)
	return worker.ReplayResult{
		Game:   item.Game,
		Source: item.Source,
		Index:  item.Index,
		Board:  board,
		Log:    log,
		Err:    err,
	}
}

// reportGame writes the outcome of one replayed game.
func reportGame(cfg *config.Config, res worker.ReplayResult) {
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.OutputFile, "Game %d: %s\n", res.Index+1, gameHeadline(res.Game))
	}
	if cfg.Verbosity >= 2 {
		for _, line := range res.Log {
			fmt.Fprintf(cfg.OutputFile, "  %s\n", line)
		}
	}
	if res.Err != nil {
		fmt.Fprintf(cfg.LogFile, "Game %d (%s): %v\n", res.Index+1, res.Source, res.Err)
		return
	}
	if cfg.Verbosity > 0 {
		printPosition(cfg, res.Board)
	}
}

// gameHeadline summarizes a game from its tag pairs.
func gameHeadline(game *pgn.Game) string {
	white := game.Tag("White")
	black := game.Tag("Black")
	if white == "" && black == "" {
		return fmt.Sprintf("%d plies", len(game.Moves))
	}
	headline := fmt.Sprintf("%s vs %s", white, black)
	if result := game.Result; result != "" {
		headline += " " + result
	}
	return headline
}

// printPosition renders the final board per the configured options.
func printPosition(cfg *config.Config, board *chess.Board) {
	opts := render.Options{Unicode: cfg.Unicode, Highlight: cfg.Highlight}
	if !*noBoard {
		fmt.Fprint(cfg.OutputFile, render.Position(board, opts))
	}
	if *showFEN {
		fmt.Fprintln(cfg.OutputFile, fen.Encode(board))
	}
}
