package engine_test

import (
	"testing"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/engine"
	"github.com/lgbarn/ajedrez-go/internal/fen"
)

func TestIsKingInCheck(t *testing.T) {
	// The black king on d4 faces the white rook on d1.
	board := mustDecode(t, "5r2/7q/6N1/8/1P1k4/5Q2/B7/3R2K1 w - - 0 0")
	kingPos := chess.Pos{Row: 4, Col: 3}

	if !engine.IsKingInCheck(board, kingPos) {
		t.Error("the d4 king should be in check from the d1 rook")
	}

	// A non-king occupant is never in check.
	if engine.IsKingInCheck(board, chess.Pos{Row: 1, Col: 7}) {
		t.Error("the h7 queen must not report check")
	}
	if engine.IsKingInCheck(board, chess.Pos{Row: 3, Col: 3}) {
		t.Error("an empty square must not report check")
	}
}

func TestCheckmate(t *testing.T) {
	board := mustDecode(t, "5r2/7q/6N1/8/1P1k4/5Q2/B7/3R2K1 w - - 0 0")
	kingPos := chess.Pos{Row: 4, Col: 3}

	// The king still has its eight intrinsic steps.
	intrinsic := engine.KingMoves(board, kingPos)
	if len(intrinsic) != 8 {
		t.Errorf("intrinsic king moves = %d; want 8", len(intrinsic))
	}

	// Every one of them lands on an attacked square, so the position is
	// checkmate.
	constrained := engine.ConstrainedKingMoves(board, kingPos)
	if len(constrained) != 0 {
		t.Errorf("constrained king moves = %v; want none", constrained)
	}

	if !engine.IsCheckmate(board, kingPos) {
		t.Error("the position should be checkmate")
	}
	if engine.IsStalemate(board, kingPos) {
		t.Error("a checkmated king is not stalemated")
	}
}

func TestNotCheckmate(t *testing.T) {
	board := fen.InitialBoard()
	for _, coord := range []string{"e1", "e8"} {
		pos := board.SquareA(coord).Pos()
		if engine.IsCheckmate(board, pos) {
			t.Errorf("the %s king is not checkmated on the initial board", coord)
		}
	}
}

func TestStalemate(t *testing.T) {
	// Classic corner stalemate: the black king on h8 has no legal move
	// but is not in check.
	board := mustDecode(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 0")
	kingPos := chess.Pos{Row: 0, Col: 7}

	if engine.IsKingInCheck(board, kingPos) {
		t.Fatal("the h8 king must not be in check")
	}
	if got := engine.ConstrainedKingMoves(board, kingPos); len(got) != 0 {
		t.Errorf("constrained king moves = %v; want none", got)
	}
	if !engine.IsStalemate(board, kingPos) {
		t.Error("the position should be stalemate")
	}
	if engine.IsCheckmate(board, kingPos) {
		t.Error("a stalemated king is not checkmated")
	}
}

func TestConstrainedKingMovesSimulation(t *testing.T) {
	// The white king on c4 may not step to c5: the b6 pawn's capture
	// diagonal only appears in the attack set once a capture target is
	// present, which the relocated king itself becomes. The simulation
	// pass catches it. The push square b5 is rejected by the plain
	// attack-set filter.
	board := mustDecode(t, "8/8/1p6/8/2K5/8/8/7k w - - 0 0")
	kingPos := chess.Pos{Row: 4, Col: 2}

	moves := engine.ConstrainedKingMoves(board, kingPos)
	for _, mv := range moves {
		if mv.To == (chess.Pos{Row: 3, Col: 1}) || mv.To == (chess.Pos{Row: 3, Col: 2}) {
			t.Errorf("king may not step onto covered square %v", mv.To)
		}
	}

	// d5 is not covered by anything and stays legal.
	found := false
	for _, mv := range moves {
		if mv.To == (chess.Pos{Row: 3, Col: 3}) {
			found = true
		}
	}
	if !found {
		t.Error("the king should still be able to step to d5")
	}
}

func TestConstrainedKingMovesIncludeCastling(t *testing.T) {
	board := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 0")

	moves := engine.ConstrainedKingMoves(board, chess.Pos{Row: 7, Col: 4})

	var castles []chess.Move
	for _, mv := range moves {
		if mv.Castling {
			castles = append(castles, mv)
		}
	}
	if len(castles) != 2 {
		t.Fatalf("castling moves = %d; want 2", len(castles))
	}
	if castles[0].To != (chess.Pos{Row: 7, Col: 6}) {
		t.Errorf("kingside castle lands on %v; want (7,6)", castles[0].To)
	}
	if castles[1].To != (chess.Pos{Row: 7, Col: 2}) {
		t.Errorf("queenside castle lands on %v; want (7,2)", castles[1].To)
	}
}

func TestAttackedSquares(t *testing.T) {
	board := mustDecode(t, "8/8/8/8/8/8/8/R6k w - - 0 0")

	attacked := engine.AttackedSquares(board, chess.White)

	// The rook sweeps its rank and file.
	for _, pos := range []chess.Pos{{Row: 0, Col: 0}, {Row: 3, Col: 0}, {Row: 7, Col: 4}} {
		if !attacked[pos] {
			t.Errorf("%v should be attacked by the a1 rook", pos)
		}
	}
	if attacked[chess.Pos{Row: 6, Col: 6}] {
		t.Error("(6,6) is not reachable by the rook")
	}
}
