package engine

import "github.com/lgbarn/ajedrez-go/internal/chess"

// ConstrainedKingMoves generates the legal moves of the king at pos: its
// intrinsic moves minus every destination the opponent attacks, each
// surviving candidate confirmed by simulating the relocation on a cloned
// board and requiring the king's new square to remain unattacked. Castling
// moves (king to column 6 kingside, column 2 queenside) are appended when
// eligible. An empty result means checkmate if the king is in check and
// stalemate otherwise.
func ConstrainedKingMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	king := pieceAt(board, pos, chess.King)
	if king == nil {
		return nil
	}

	attacked := AttackedSquares(board, king.Color.Opposite())

	var legal []chess.Move
	for _, mv := range KingMoves(board, pos) {
		if attacked[mv.To] {
			continue
		}
		if kingSafeAfter(board, mv) {
			legal = append(legal, mv)
		}
	}

	if CanCastle(board, king.Color, chess.CastleKingside, true) {
		legal = append(legal, chess.Move{
			From:     pos,
			To:       chess.Pos{Row: pos.Row, Col: 6},
			Castling: true,
		})
	}
	if CanCastle(board, king.Color, chess.CastleQueenside, true) {
		legal = append(legal, chess.Move{
			From:     pos,
			To:       chess.Pos{Row: pos.Row, Col: 2},
			Castling: true,
		})
	}

	return legal
}

// kingSafeAfter simulates the king move on a clone and reports whether the
// king's resting square stays unattacked once it has actually relocated.
// The clone is discarded, so the real board is never left half-mutated.
func kingSafeAfter(board *chess.Board, mv chess.Move) bool {
	sim := board.Clone()
	king := sim.AtPos(mv.From).Piece
	sim.AtPos(mv.To).Piece = king
	sim.AtPos(mv.From).Piece = nil
	return !AttackedSquares(sim, king.Color.Opposite())[mv.To]
}

// IsCheckmate reports whether the king at pos is in check with no legal
// move left.
func IsCheckmate(board *chess.Board, pos chess.Pos) bool {
	return IsKingInCheck(board, pos) && len(ConstrainedKingMoves(board, pos)) == 0
}

// IsStalemate reports whether the king at pos has no legal move while not
// being in check.
func IsStalemate(board *chess.Board, pos chess.Pos) bool {
	if pieceAt(board, pos, chess.King) == nil {
		return false
	}
	return !IsKingInCheck(board, pos) && len(ConstrainedKingMoves(board, pos)) == 0
}
