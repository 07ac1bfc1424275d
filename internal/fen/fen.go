// Package fen maps board state to and from Forsyth-Edwards Notation, the
// engine's persisted and interchange format.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/engine"
	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// Initial is the FEN string for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 0"

// grammar validates a whole FEN string before any field is interpreted:
// eight '/'-separated placement runs, a turn letter, a castling field, an
// en-passant square or '-', and the two move counters.
var grammar = regexp.MustCompile(
	`^([pnbrqkPNBRQK1-8]+(?:/[pnbrqkPNBRQK1-8]+){7}) ([wb]) (-|[KQkq]+) (-|[a-h][1-8]) ([0-9]+) ([0-9]+)$`)

// Decode parses a FEN string into a board. Input that does not match the
// grammar, or whose placement field overruns a rank, fails with
// ErrInvalidFENString. The castling field is accepted but not stored:
// rights are derived from piece move counters, which a freshly decoded
// placement leaves at zero.
func Decode(s string) (*chess.Board, error) {
	m := grammar.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, errors.ErrInvalidFENString
	}

	board := chess.NewBoard()
	if err := decodePlacement(board, m[1]); err != nil {
		return nil, err
	}

	color, err := chess.ParseColor(m[2])
	if err != nil {
		return nil, errors.ErrInvalidFENString
	}
	board.ActiveColor = color

	if m[4] != "-" {
		board.PassantSquare = board.SquareA(m[4])
	}

	// The grammar guarantees both counters are decimal.
	board.HalfMoves, _ = strconv.Atoi(m[5])
	board.FullMoves, _ = strconv.Atoi(m[6])

	return board, nil
}

// decodePlacement walks the placement field with a wrapping file cursor:
// digits advance the cursor over empty squares, '/' drops to the next rank.
func decodePlacement(board *chess.Board, field string) error {
	row, col := 0, 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if col != chess.BoardSize || row >= chess.BoardSize-1 {
				return errors.ErrInvalidFENString
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			if col >= chess.BoardSize {
				return errors.ErrInvalidFENString
			}
			piece := pieceFromLetter(c)
			if piece == nil {
				return errors.ErrInvalidFENString
			}
			board.SetPiece(row, col, piece)
			col++
		}
		if col > chess.BoardSize {
			return errors.ErrInvalidFENString
		}
	}
	if col != chess.BoardSize || row != chess.BoardSize-1 {
		return errors.ErrInvalidFENString
	}
	return nil
}

// pieceFromLetter converts a FEN piece letter to a new unmoved piece, or
// nil for an unknown letter. Uppercase is White, lowercase Black; the
// knight letter is 'N'/'n'.
func pieceFromLetter(c byte) *chess.Piece {
	color := chess.White
	if c >= 'a' && c <= 'z' {
		color = chess.Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return chess.NewPiece(color, chess.Pawn)
	case 'N':
		return chess.NewPiece(color, chess.Knight)
	case 'B':
		return chess.NewPiece(color, chess.Bishop)
	case 'R':
		return chess.NewPiece(color, chess.Rook)
	case 'Q':
		return chess.NewPiece(color, chess.Queen)
	case 'K':
		return chess.NewPiece(color, chess.King)
	}
	return nil
}

// Encode renders a board as a FEN string: run-length-encoded placement rows
// scanned top to bottom, then turn, castling availability (derived, with
// blockage ignored), en-passant target, and the move counters.
//
// Decode(Encode(b)) reproduces placement, turn, and counters. The castling
// and en-passant fields are derived state and are not guaranteed stable
// across a round trip.
func Encode(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Piece(row, col)
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	passant := "-"
	if board.PassantSquare != nil {
		passant = board.PassantSquare.Algebraic()
	}

	fmt.Fprintf(&sb, " %c %s %s %d %d",
		board.ActiveColor.FENLetter(),
		engine.Rights(board, false),
		passant,
		board.HalfMoves,
		board.FullMoves)

	return sb.String()
}

// InitialBoard returns a board set up in the standard starting position.
func InitialBoard() *chess.Board {
	board, err := Decode(Initial)
	if err != nil {
		// The constant is known-good; failing to parse it is an engine bug.
		panic(err)
	}
	return board
}
