package chess

// BoardSize is the board edge length.
const BoardSize = 8

// Standard home columns used by castling.
const (
	DefaultKingCol          = 4
	DefaultKingsideRookCol  = 7
	DefaultQueensideRookCol = 0
)

// Board owns the 8x8 grid of squares and the game metadata that travels
// with it. Squares are stored row-major with row 0 = rank 8, so the grid
// reads in the same order as a FEN placement field. Mutation goes through
// the engine package; everything here is occupancy get/set plus bookkeeping.
type Board struct {
	squares [BoardSize][BoardSize]Square

	// ActiveColor is the side to move.
	ActiveColor Color

	// HalfMoves counts plies since the last capture or pawn move, for the
	// fifty-move rule.
	HalfMoves int

	// FullMoves increments after each Black move.
	FullMoves int

	// PassantSquare is the en-passant target decoded from FEN. Move logic
	// never sets it; en passant is not generated.
	PassantSquare *Square

	highlighted map[Pos]Color
}

// NewBoard creates an empty board whose squares carry their permanent
// coordinates.
func NewBoard() *Board {
	b := &Board{
		ActiveColor: White,
		highlighted: make(map[Pos]Color),
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.squares[row][col] = Square{
				Rank: RowToRank(row),
				File: ColToFile(col),
				Row:  row,
				Col:  col,
			}
		}
	}
	return b
}

// At returns the square at the given zero-based indices, or nil when the
// indices fall outside the board.
func (b *Board) At(row, col int) *Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return &b.squares[row][col]
}

// AtPos returns the square at the given position, or nil when off-board.
func (b *Board) AtPos(p Pos) *Square {
	return b.At(p.Row, p.Col)
}

// Piece returns the piece at the given indices, or nil for an empty square
// or out-of-bounds indices.
func (b *Board) Piece(row, col int) *Piece {
	sq := b.At(row, col)
	if sq == nil {
		return nil
	}
	return sq.Piece
}

// SetPiece places a piece (or nil, clearing the square) at the given
// zero-based indices. Out-of-bounds indices are ignored. It returns the
// board so placements chain.
func (b *Board) SetPiece(row, col int, p *Piece) *Board {
	if sq := b.At(row, col); sq != nil {
		sq.Piece = p
	}
	return b
}

// PlacePiece places a new unmoved piece using algebraic coordinates,
// rank 1..8 and file 'a'..'h'. Invalid coordinates are ignored.
func (b *Board) PlacePiece(rank int, file byte, color Color, pieceType PieceType) *Board {
	row, err := RankToRow(rank)
	if err != nil {
		return b
	}
	col, err := FileToCol(file)
	if err != nil {
		return b
	}
	return b.SetPiece(row, col, NewPiece(color, pieceType))
}

// SquareA returns the square named by an algebraic coordinate such as "e4",
// or nil when the coordinate does not parse.
func (b *Board) SquareA(coord string) *Square {
	pos, err := ParseSquare(coord)
	if err != nil {
		return nil
	}
	return b.AtPos(pos)
}

// PieceA returns the piece on the square named by an algebraic coordinate,
// or nil when the square is empty or the coordinate does not parse.
func (b *Board) PieceA(coord string) *Piece {
	sq := b.SquareA(coord)
	if sq == nil {
		return nil
	}
	return sq.Piece
}

// FindPieces returns the squares holding every piece of the given type and
// color, scanning rows top to bottom and columns left to right.
func (b *Board) FindPieces(pieceType PieceType, color Color) []*Square {
	var found []*Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := &b.squares[row][col]
			if sq.Piece != nil && sq.Piece.Type == pieceType && sq.Piece.Color == color {
				found = append(found, sq)
			}
		}
	}
	return found
}

// Highlighted returns the highlight map: the squares touched by the most
// recent moves, keyed by position, valued with the mover's color. The map
// is live display state; callers must treat it as read-only.
func (b *Board) Highlighted() map[Pos]Color {
	return b.highlighted
}

// Highlight marks a square as touched by a move of the given color.
func (b *Board) Highlight(p Pos, c Color) {
	b.highlighted[p] = c
}

// ClearHighlights resets the highlight state.
func (b *Board) ClearHighlights() {
	b.highlighted = make(map[Pos]Color)
}

// Clone returns a deep copy of the board: piece instances, highlight state,
// and the en-passant reference are all duplicated, so mutating the copy
// never touches the original. The legality layer simulates candidate moves
// on clones and discards them.
func (b *Board) Clone() *Board {
	c := &Board{
		squares:     b.squares,
		ActiveColor: b.ActiveColor,
		HalfMoves:   b.HalfMoves,
		FullMoves:   b.FullMoves,
		highlighted: make(map[Pos]Color, len(b.highlighted)),
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col].Piece; p != nil {
				dup := *p
				c.squares[row][col].Piece = &dup
			}
		}
	}
	if b.PassantSquare != nil {
		c.PassantSquare = c.At(b.PassantSquare.Row, b.PassantSquare.Col)
	}
	for pos, color := range b.highlighted {
		c.highlighted[pos] = color
	}
	return c
}
