package engine

import (
	"fmt"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// MovePiece validates and commits a move for the active side, returning a
// human-readable description of what happened. On failure the board is left
// untouched. On success the piece relocates, its move counter increments,
// the halfmove clock resets on captures and pawn moves and increments
// otherwise, the fullmove counter increments after a Black move, highlight
// state is refreshed (and wiped first whenever White moves), and the turn
// flips.
func MovePiece(board *chess.Board, mv chess.Move) (string, error) {
	from := board.AtPos(mv.From)
	to := board.AtPos(mv.To)
	if from == nil || to == nil {
		return "", errors.ErrOutOfBounds
	}

	piece := from.Piece
	if piece == nil {
		return "", errors.ErrStartPieceMissing
	}
	if piece.Color != board.ActiveColor {
		return "", errors.ErrWrongPieceColor
	}

	captured := to.Piece
	var desc string
	if captured != nil {
		desc = fmt.Sprintf("%s %s captures %s at %s", piece, from.Algebraic(), captured, to.Algebraic())
	} else {
		desc = fmt.Sprintf("%s %s moves to %s", piece, from.Algebraic(), to.Algebraic())
	}

	to.Piece = piece
	from.Piece = nil
	piece.Moves++

	if piece.Color == chess.White {
		board.ClearHighlights()
	}
	board.Highlight(mv.From, piece.Color)
	board.Highlight(mv.To, piece.Color)

	if captured != nil || piece.Type == chess.Pawn {
		board.HalfMoves = 0
	} else {
		board.HalfMoves++
	}
	if piece.Color == chess.Black {
		board.FullMoves++
	}
	board.ActiveColor = piece.Color.Opposite()

	return desc, nil
}

// Castle validates and commits a castling move for the given color, which
// must be the side to move. The full precondition is rechecked at commit
// time, blocked squares included, and a violation fails with
// ErrCastlingForbidden before any mutation. On success king and rook
// relocate together, both move counters increment, all four touched squares
// are highlighted, and the same counter and turn policy as a normal move
// applies.
func Castle(board *chess.Board, color chess.Color, side chess.CastleSide) (string, error) {
	if color != board.ActiveColor {
		return "", errors.ErrWrongPieceColor
	}
	if !CanCastle(board, color, side, true) {
		return "", errors.ErrCastlingForbidden
	}

	row := homeRow(color)
	kingTo, rookFrom, rookTo := 6, chess.DefaultKingsideRookCol, 5
	if side == chess.CastleQueenside {
		kingTo, rookFrom, rookTo = 2, chess.DefaultQueensideRookCol, 3
	}

	king := board.Piece(row, chess.DefaultKingCol)
	rook := board.Piece(row, rookFrom)
	board.SetPiece(row, kingTo, king).SetPiece(row, chess.DefaultKingCol, nil)
	board.SetPiece(row, rookTo, rook).SetPiece(row, rookFrom, nil)
	king.Moves++
	rook.Moves++

	if color == chess.White {
		board.ClearHighlights()
	}
	for _, col := range []int{chess.DefaultKingCol, kingTo, rookFrom, rookTo} {
		board.Highlight(chess.Pos{Row: row, Col: col}, color)
	}

	board.HalfMoves++
	if color == chess.Black {
		board.FullMoves++
	}
	board.ActiveColor = color.Opposite()

	return fmt.Sprintf("%s castles %s", color, side), nil
}
