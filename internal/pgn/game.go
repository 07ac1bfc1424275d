// Package pgn is the thin notation adapter between PGN/SAN game text and
// the engine: it lexes a game into structured move descriptors and resolves
// each descriptor to a concrete move against the current board.
package pgn

import "github.com/lgbarn/ajedrez-go/internal/chess"

// MoveClass categorizes a SAN token.
type MoveClass int

const (
	NormalMove MoveClass = iota
	KingsideCastle
	QueensideCastle
)

// SANMove is the structured descriptor produced by parsing one SAN token:
// the moving piece type, any disambiguating row or column, and the
// destination square. A value of -1 means the disambiguator is absent.
type SANMove struct {
	Text    string
	Class   MoveClass
	Piece   chess.PieceType
	FromRow int
	FromCol int
	To      chess.Pos
	Capture bool
	Check   byte // '+', '#', or 0
}

// Game is one parsed PGN game: its tag pairs, the move descriptors in ply
// order, and the game result.
type Game struct {
	Tags   map[string]string
	Moves  []SANMove
	Result string
}

// NewGame creates an empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// Tag returns a tag value, or the empty string when absent.
func (g *Game) Tag(name string) string {
	return g.Tags[name]
}
