package chess

import "fmt"

// Square is one board cell: an optional occupant plus the cell's own
// coordinates in both algebraic (Rank 1..8, File 'a'..'h') and zero-based
// grid (Row, Col) form. Coordinates are set once at board construction and
// never change; only Piece does.
type Square struct {
	Piece *Piece
	Rank  int
	File  byte
	Row   int
	Col   int
}

// IsEmpty reports whether the square has no occupant.
func (s *Square) IsEmpty() bool {
	return s.Piece == nil
}

// Pos returns the square's zero-based grid position.
func (s *Square) Pos() Pos {
	return Pos{Row: s.Row, Col: s.Col}
}

// Algebraic returns the square's coordinate in file-rank order, e.g. "e4".
func (s *Square) Algebraic() string {
	return fmt.Sprintf("%c%d", s.File, s.Rank)
}

// String renders the square in rank-file order, e.g. "8a", or "-" for a
// zero-valued square.
func (s *Square) String() string {
	if s.Rank == 0 && s.File == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%c", s.Rank, s.File)
}
