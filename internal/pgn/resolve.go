package pgn

import (
	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/engine"
	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// Resolve narrows a move descriptor down to the one concrete move it names
// for the given color: every piece of the descriptor's type is a candidate,
// disambiguators discard mismatched rows and columns, and each survivor's
// intrinsic moves are filtered to those reaching the destination. Exactly
// one move must remain: none is ErrStartPieceMissing, several is
// ErrTooManyPossibleMoves.
func Resolve(board *chess.Board, mv SANMove, color chess.Color) (chess.Move, error) {
	candidates := board.FindPieces(mv.Piece, color)

	var matches []chess.Move
	for _, sq := range candidates {
		if mv.FromRow >= 0 && sq.Row != mv.FromRow {
			continue
		}
		if mv.FromCol >= 0 && sq.Col != mv.FromCol {
			continue
		}
		for _, m := range engine.Moves(board, sq.Pos()) {
			if m.To == mv.To {
				matches = append(matches, m)
			}
		}
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, errors.ErrStartPieceMissing
	case 1:
		return matches[0], nil
	}
	return chess.Move{}, errors.ErrTooManyPossibleMoves
}
