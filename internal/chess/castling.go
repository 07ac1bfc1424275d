package chess

// CastlingRights summarizes, per side and direction, whether castling is
// currently available. CheckEmptySquares records whether the squares
// between king and rook were required to be empty when the summary was
// computed; board-level queries report rights independent of momentary
// blockage, so they use false.
type CastlingRights struct {
	WhiteKingside     bool
	WhiteQueenside    bool
	BlackKingside     bool
	BlackQueenside    bool
	CheckEmptySquares bool
}

// String renders the rights as a FEN castling field: "KQkq" down to "-".
func (r CastlingRights) String() string {
	var buf []byte
	if r.WhiteKingside {
		buf = append(buf, 'K')
	}
	if r.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if r.BlackKingside {
		buf = append(buf, 'k')
	}
	if r.BlackQueenside {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}
