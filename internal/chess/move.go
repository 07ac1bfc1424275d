package chess

import "fmt"

// Pos is a zero-based board position. Row 0 is rank 8 (Black's back rank),
// matching FEN's top-to-bottom scan order.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// String returns the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a source-destination pair in grid coordinates. Castling marks the
// compound king+rook moves injected by the legality layer; plain generated
// moves always carry Castling=false.
type Move struct {
	From     Pos
	To       Pos
	Castling bool
}

// CastleSide selects a castling direction.
type CastleSide int

const (
	CastleKingside CastleSide = iota
	CastleQueenside
)

// String returns the side name.
func (s CastleSide) String() string {
	if s == CastleKingside {
		return "kingside"
	}
	return "queenside"
}
