package chess

import "github.com/lgbarn/ajedrez-go/internal/errors"

// RankToRow converts a rank 1..8 to its zero-based row (rank 8 is row 0).
func RankToRow(rank int) (int, error) {
	if rank < 1 || rank > BoardSize {
		return 0, errors.ErrInvalidPositionRank
	}
	return BoardSize - rank, nil
}

// FileToCol converts a file letter 'a'..'h' to its zero-based column.
func FileToCol(file byte) (int, error) {
	if file < 'a' || file > 'h' {
		return 0, errors.ErrInvalidPositionFile
	}
	return int(file - 'a'), nil
}

// RowToRank converts a zero-based row back to its rank 1..8.
func RowToRank(row int) int {
	return BoardSize - row
}

// ColToFile converts a zero-based column back to its file letter.
func ColToFile(col int) byte {
	return byte('a' + col)
}

// ParseSquare converts a two-byte algebraic coordinate such as "e4" into a
// grid position. The file letter is validated before the rank digit, and
// each failure identifies the constraint that was violated.
func ParseSquare(s string) (Pos, error) {
	if len(s) < 2 {
		return Pos{}, errors.ErrStringTooShort
	}
	col, err := FileToCol(s[0])
	if err != nil {
		return Pos{}, err
	}
	rank := int(s[1] - '0')
	row, err := RankToRow(rank)
	if err != nil {
		return Pos{}, err
	}
	return Pos{Row: row, Col: col}, nil
}

// ParseMove converts a four-byte coordinate move such as "e2e4" into a Move.
// Both coordinates are validated left to right, and a zero-displacement move
// is rejected as useless.
func ParseMove(s string) (Move, error) {
	if len(s) < 4 {
		return Move{}, errors.ErrStringTooShort
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	if from == to {
		return Move{}, errors.ErrUselessMove
	}
	return Move{From: from, To: to}, nil
}
