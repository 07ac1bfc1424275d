package chess

import (
	"testing"

	"github.com/lgbarn/ajedrez-go/internal/testutil"
)

func TestNewBoardCoordinates(t *testing.T) {
	board := NewBoard()

	tests := []struct {
		row, col int
		rank     int
		file     byte
	}{
		{0, 0, 8, 'a'},
		{0, 7, 8, 'h'},
		{7, 0, 1, 'a'},
		{7, 7, 1, 'h'},
		{4, 4, 4, 'e'},
	}

	for _, tt := range tests {
		sq := board.At(tt.row, tt.col)
		if sq.Rank != tt.rank || sq.File != tt.file {
			t.Errorf("At(%d,%d) = rank %d file %c; want rank %d file %c",
				tt.row, tt.col, sq.Rank, sq.File, tt.rank, tt.file)
		}
		if !sq.IsEmpty() {
			t.Errorf("At(%d,%d) should be empty on a new board", tt.row, tt.col)
		}
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	board := NewBoard()

	for _, pos := range []Pos{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 11}} {
		if sq := board.AtPos(pos); sq != nil {
			t.Errorf("AtPos(%v) = %v; want nil", pos, sq)
		}
		if p := board.Piece(pos.Row, pos.Col); p != nil {
			t.Errorf("Piece(%d,%d) = %v; want nil", pos.Row, pos.Col, p)
		}
	}

	// Out-of-bounds placement is a no-op, not a panic.
	board.SetPiece(9, 9, NewPiece(White, Pawn))
}

func TestSquareStrings(t *testing.T) {
	board := NewBoard()

	if got := board.SquareA("a8").String(); got != "8a" {
		t.Errorf("a8 String() = %q; want %q", got, "8a")
	}
	if got := board.SquareA("c2").String(); got != "2c" {
		t.Errorf("c2 String() = %q; want %q", got, "2c")
	}
	if got := board.SquareA("e4").Algebraic(); got != "e4" {
		t.Errorf("e4 Algebraic() = %q; want %q", got, "e4")
	}

	var zero Square
	if got := zero.String(); got != "-" {
		t.Errorf("zero Square String() = %q; want %q", got, "-")
	}
}

func TestPlacePiece(t *testing.T) {
	board := NewBoard().
		PlacePiece(1, 'e', White, King).
		PlacePiece(8, 'e', Black, King).
		PlacePiece(4, 'd', White, Queen)

	testutil.AssertTrue(t, board.PieceA("e1").Equal(NewPiece(White, King)))
	testutil.AssertTrue(t, board.PieceA("e8").Equal(NewPiece(Black, King)))
	testutil.AssertTrue(t, board.PieceA("d4").Equal(NewPiece(White, Queen)))
	testutil.AssertNil(t, board.PieceA("a1"))

	// Invalid coordinates are ignored.
	board.PlacePiece(9, 'e', White, Pawn)
	board.PlacePiece(1, 'z', White, Pawn)
}

func TestFindPieces(t *testing.T) {
	board := NewBoard().
		PlacePiece(1, 'a', White, Rook).
		PlacePiece(1, 'h', White, Rook).
		PlacePiece(8, 'a', Black, Rook).
		PlacePiece(4, 'e', White, King)

	rooks := board.FindPieces(Rook, White)
	if len(rooks) != 2 {
		t.Fatalf("FindPieces(Rook, White) returned %d squares; want 2", len(rooks))
	}
	// Scan order is top-to-bottom, left-to-right.
	if rooks[0].Algebraic() != "a1" || rooks[1].Algebraic() != "h1" {
		t.Errorf("rooks at %s, %s; want a1, h1", rooks[0].Algebraic(), rooks[1].Algebraic())
	}

	kings := board.FindPieces(King, White)
	if len(kings) != 1 || kings[0].Algebraic() != "e4" {
		t.Errorf("FindPieces(King, White) = %v; want one square e4", kings)
	}

	if got := board.FindPieces(Queen, Black); len(got) != 0 {
		t.Errorf("FindPieces(Queen, Black) returned %d squares; want 0", len(got))
	}
}

func TestHighlights(t *testing.T) {
	board := NewBoard()

	board.Highlight(Pos{Row: 6, Col: 4}, White)
	board.Highlight(Pos{Row: 4, Col: 4}, White)

	h := board.Highlighted()
	if len(h) != 2 {
		t.Fatalf("highlighted %d squares; want 2", len(h))
	}
	if h[Pos{Row: 4, Col: 4}] != White {
		t.Error("e4 should be highlighted for White")
	}

	board.ClearHighlights()
	if len(board.Highlighted()) != 0 {
		t.Error("ClearHighlights should empty the map")
	}
}

func TestClone(t *testing.T) {
	board := NewBoard().PlacePiece(2, 'e', White, Pawn)
	board.HalfMoves = 3
	board.FullMoves = 7
	board.ActiveColor = Black
	board.PassantSquare = board.SquareA("d6")
	board.Highlight(Pos{Row: 6, Col: 4}, White)

	clone := board.Clone()

	testutil.AssertEqual(t, clone.HalfMoves, 3)
	testutil.AssertEqual(t, clone.FullMoves, 7)
	testutil.AssertEqual(t, clone.ActiveColor, Black)
	testutil.AssertTrue(t, clone.PieceA("e2").Equal(NewPiece(White, Pawn)))
	testutil.AssertEqual(t, clone.PassantSquare.Algebraic(), "d6")
	testutil.AssertEqual(t, clone.Highlighted()[Pos{Row: 6, Col: 4}], White)

	// Mutating the clone must not touch the original.
	clone.SetPiece(6, 4, nil)
	testutil.AssertNotNil(t, board.PieceA("e2"))

	clone2 := board.Clone()
	clone2.PieceA("e2").Moves = 9
	if board.PieceA("e2").Moves != 0 {
		t.Error("clone shares piece instances with the original")
	}

	if clone.PassantSquare == board.PassantSquare {
		t.Error("clone shares the en-passant square reference with the original")
	}
}
