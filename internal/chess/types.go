// Package chess provides the core board model: colors, pieces, squares,
// moves, and the 8x8 board with its game metadata. All rule logic lives in
// the engine package; this package only owns state and simple queries.
package chess

import (
	"strings"

	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a color.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// FENLetter returns the FEN active-color letter, 'w' or 'b'.
func (c Color) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// ParseColor converts a color name to a Color. Any string starting with
// 'w' or 'W' is White and any starting with 'b' or 'B' is Black, so the
// FEN letters "w"/"b" and the names "white"/"black" all parse.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return White, errors.Wrap(errors.ErrParseFailure, "empty color")
	}
	switch {
	case strings.HasPrefix(s, "w"), strings.HasPrefix(s, "W"):
		return White, nil
	case strings.HasPrefix(s, "b"), strings.HasPrefix(s, "B"):
		return Black, nil
	}
	return White, errors.Wrapf(errors.ErrParseFailure, "unknown color %q", s)
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single uppercase FEN letter for the piece type.
func (t PieceType) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// Piece is a chess piece on the board. Moves counts how many times this
// piece instance has relocated; it drives castling eligibility and the
// pawn double-step. It is deliberately excluded from equality.
type Piece struct {
	Color Color
	Type  PieceType
	Moves int
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(color Color, pieceType PieceType) *Piece {
	return &Piece{Color: color, Type: pieceType}
}

// FENLetter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p *Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Color == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Symbol returns the Unicode figurine for the piece.
func (p *Piece) Symbol() string {
	white := []string{"♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"♟", "♞", "♝", "♜", "♛", "♚"}
	if int(p.Type) >= len(white) {
		return "?"
	}
	if p.Color == White {
		return white[p.Type]
	}
	return black[p.Type]
}

// Equal reports whether two pieces have the same color and type. The move
// counter is not part of piece identity.
func (p *Piece) Equal(other *Piece) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Color == other.Color && p.Type == other.Type
}

// String returns e.g. "White Pawn".
func (p *Piece) String() string {
	return p.Color.String() + " " + p.Type.String()
}
