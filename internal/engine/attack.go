package engine

import "github.com/lgbarn/ajedrez-go/internal/chess"

// AttackedSquares returns the pseudo-legal attack set of a color: the union,
// over every piece of that color, of its generated destination squares. The
// set is not itself filtered for check; it is the input to that filtering.
func AttackedSquares(board *chess.Board, color chess.Color) map[chess.Pos]bool {
	attacked := make(map[chess.Pos]bool)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Piece(row, col)
			if piece == nil || piece.Color != color {
				continue
			}
			for _, mv := range Moves(board, chess.Pos{Row: row, Col: col}) {
				attacked[mv.To] = true
			}
		}
	}
	return attacked
}

// IsKingInCheck reports whether the piece at pos is a king standing on a
// square attacked by the opposing color. A non-king occupant (or an empty
// square) is never in check.
func IsKingInCheck(board *chess.Board, pos chess.Pos) bool {
	king := pieceAt(board, pos, chess.King)
	if king == nil {
		return false
	}
	return AttackedSquares(board, king.Color.Opposite())[pos]
}
