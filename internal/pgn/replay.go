package pgn

import (
	"fmt"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/engine"
	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// Replay applies every ply of a parsed game to the board in order and
// returns one description line per ply. The first failing ply stops the
// replay; the error carries the ply number and move text, and the board is
// left in the state reached before that ply.
func Replay(board *chess.Board, game *Game) ([]string, error) {
	var log []string
	for i, mv := range game.Moves {
		desc, err := applyPly(board, mv)
		if err != nil {
			return log, &errors.MoveError{Err: err, Ply: i + 1, MoveText: mv.Text}
		}
		log = append(log, fmt.Sprintf("%s: %s", mv.Text, desc))
	}
	return log, nil
}

// applyPly commits one descriptor for the side to move.
func applyPly(board *chess.Board, mv SANMove) (string, error) {
	switch mv.Class {
	case KingsideCastle:
		return engine.Castle(board, board.ActiveColor, chess.CastleKingside)
	case QueensideCastle:
		return engine.Castle(board, board.ActiveColor, chess.CastleQueenside)
	}

	m, err := Resolve(board, mv, board.ActiveColor)
	if err != nil {
		return "", err
	}
	return engine.MovePiece(board, m)
}
