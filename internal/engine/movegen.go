// Package engine implements the chess rules: per-piece move generation,
// attacked-square computation, check and checkmate detection, castling
// eligibility, and move application. Generation functions are pure; the
// only board mutators are MovePiece and Castle.
package engine

import "github.com/lgbarn/ajedrez-go/internal/chess"

// Fixed generation orders. They are part of the observable contract: tests
// assert on indexed positions within the generated move lists.
var (
	knightOffsets = []chess.Pos{
		{Row: 1, Col: 2}, {Row: 2, Col: 1},
		{Row: -1, Col: 2}, {Row: -2, Col: 1},
		{Row: 1, Col: -2}, {Row: 2, Col: -1},
		{Row: -1, Col: -2}, {Row: -2, Col: -1},
	}

	straightDirs = []chess.Pos{
		{Row: -1, Col: 0}, {Row: 1, Col: 0},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
	}

	diagonalDirs = []chess.Pos{
		{Row: -1, Col: -1}, {Row: -1, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 1},
	}

	kingOffsets = []chess.Pos{
		{Row: -1, Col: -1}, {Row: 0, Col: -1}, {Row: 1, Col: -1},
		{Row: -1, Col: 0}, {Row: 1, Col: 0},
		{Row: -1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 1},
	}
)

// generateFunc enumerates the intrinsic moves of one piece type.
type generateFunc func(*chess.Board, chess.Pos) []chess.Move

// generators dispatches generation by piece type.
var generators map[chess.PieceType]generateFunc

func init() {
	generators = map[chess.PieceType]generateFunc{
		chess.Pawn:   PawnMoves,
		chess.Knight: KnightMoves,
		chess.Bishop: BishopMoves,
		chess.Rook:   RookMoves,
		chess.Queen:  QueenMoves,
		chess.King:   KingMoves,
	}
}

// Moves generates the intrinsic moves of whatever piece sits at pos,
// dispatching through the per-type generator table. An empty or off-board
// square yields no moves, so callers can sweep all 64 squares uniformly.
func Moves(board *chess.Board, pos chess.Pos) []chess.Move {
	sq := board.AtPos(pos)
	if sq == nil || sq.Piece == nil {
		return nil
	}
	return generators[sq.Piece.Type](board, pos)
}

// pieceAt returns the piece at pos only when it is of the wanted type.
func pieceAt(board *chess.Board, pos chess.Pos, want chess.PieceType) *chess.Piece {
	sq := board.AtPos(pos)
	if sq == nil || sq.Piece == nil || sq.Piece.Type != want {
		return nil
	}
	return sq.Piece
}

// PawnMoves generates intrinsic pawn moves: the single forward step onto an
// empty square, the double step from the home row for an unmoved pawn with
// both squares clear, then the left and right diagonal captures. White pawns
// advance toward row 0, Black toward row 7. En passant is not generated.
func PawnMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	pawn := pieceAt(board, pos, chess.Pawn)
	if pawn == nil {
		return nil
	}

	dir := -1
	homeRow := 6
	if pawn.Color == chess.Black {
		dir = 1
		homeRow = 1
	}

	var moves []chess.Move

	one := chess.Pos{Row: pos.Row + dir, Col: pos.Col}
	if one.InBounds() && board.AtPos(one).IsEmpty() {
		moves = append(moves, chess.Move{From: pos, To: one})

		two := chess.Pos{Row: pos.Row + 2*dir, Col: pos.Col}
		if pawn.Moves == 0 && pos.Row == homeRow && two.InBounds() && board.AtPos(two).IsEmpty() {
			moves = append(moves, chess.Move{From: pos, To: two})
		}
	}

	// Captures, left then right. InBounds keeps column 0 pawns from wrapping.
	for _, dc := range []int{-1, 1} {
		to := chess.Pos{Row: pos.Row + dir, Col: pos.Col + dc}
		if !to.InBounds() {
			continue
		}
		if target := board.AtPos(to).Piece; target != nil && target.Color != pawn.Color {
			moves = append(moves, chess.Move{From: pos, To: to})
		}
	}

	return moves
}

// KnightMoves generates the eight L-shaped knight moves onto in-bounds
// squares that are empty or hold an opposing piece.
func KnightMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	knight := pieceAt(board, pos, chess.Knight)
	if knight == nil {
		return nil
	}
	return offsetMoves(board, pos, knight.Color, knightOffsets)
}

// BishopMoves generates diagonal ray moves.
func BishopMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	bishop := pieceAt(board, pos, chess.Bishop)
	if bishop == nil {
		return nil
	}
	return rayMoves(board, pos, bishop.Color, diagonalDirs)
}

// RookMoves generates orthogonal ray moves.
func RookMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	rook := pieceAt(board, pos, chess.Rook)
	if rook == nil {
		return nil
	}
	return rayMoves(board, pos, rook.Color, straightDirs)
}

// QueenMoves generates orthogonal rays followed by diagonal rays.
func QueenMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	queen := pieceAt(board, pos, chess.Queen)
	if queen == nil {
		return nil
	}
	moves := rayMoves(board, pos, queen.Color, straightDirs)
	return append(moves, rayMoves(board, pos, queen.Color, diagonalDirs)...)
}

// KingMoves generates the eight adjacent king steps. Self-check filtering is
// the legality layer's job, not this one's.
func KingMoves(board *chess.Board, pos chess.Pos) []chess.Move {
	king := pieceAt(board, pos, chess.King)
	if king == nil {
		return nil
	}
	return offsetMoves(board, pos, king.Color, kingOffsets)
}

// offsetMoves admits each offset destination that is in bounds and either
// empty or occupied by the opposite color.
func offsetMoves(board *chess.Board, pos chess.Pos, color chess.Color, offsets []chess.Pos) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to := chess.Pos{Row: pos.Row + off.Row, Col: pos.Col + off.Col}
		if !to.InBounds() {
			continue
		}
		if target := board.AtPos(to).Piece; target == nil || target.Color != color {
			moves = append(moves, chess.Move{From: pos, To: to})
		}
	}
	return moves
}

// rayMoves walks each direction until it leaves the board, stops short of an
// own-color piece, or captures an opposing piece and stops.
func rayMoves(board *chess.Board, pos chess.Pos, color chess.Color, dirs []chess.Pos) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := chess.Pos{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for to.InBounds() {
			target := board.AtPos(to).Piece
			if target != nil {
				if target.Color != color {
					moves = append(moves, chess.Move{From: pos, To: to})
				}
				break
			}
			moves = append(moves, chess.Move{From: pos, To: to})
			to = chess.Pos{Row: to.Row + dir.Row, Col: to.Col + dir.Col}
		}
	}
	return moves
}
