// Package render draws board positions for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/ajedrez-go/internal/chess"
)

// Options controls how a board is drawn.
type Options struct {
	// Unicode selects figurine symbols instead of FEN letters.
	Unicode bool
	// Highlight paints the squares touched by the most recent moves.
	Highlight bool
}

// DefaultOptions returns the rendering defaults used by the CLI.
func DefaultOptions() Options {
	return Options{Unicode: true, Highlight: true}
}

var (
	whiteHighlight = color.New(color.FgBlack, color.BgHiGreen)
	blackHighlight = color.New(color.FgBlack, color.BgHiYellow)
)

// Board renders the position as box-drawn rows, rank 8 at the top.
// Each square is three cells wide; highlighted squares are painted with
// a background color keyed to the side that moved through them.
func Board(b *chess.Board, opts Options) string {
	var builder strings.Builder

	rule := strings.Repeat("─", chess.BoardSize*4-1)
	_, _ = builder.WriteString(fmt.Sprintf("╭%s╮\n", rule))
	for row := 0; row < chess.BoardSize; row++ {
		_, _ = builder.WriteString("│")
		for col := 0; col < chess.BoardSize; col++ {
			_, _ = builder.WriteString(cell(b, chess.Pos{Row: row, Col: col}, opts))
			_, _ = builder.WriteString("│")
		}
		if row < chess.BoardSize-1 {
			_, _ = builder.WriteString(fmt.Sprintf(" %d\n├%s┤\n", chess.RowToRank(row), rule))
		} else {
			_, _ = builder.WriteString(fmt.Sprintf(" %d\n", chess.RowToRank(row)))
		}
	}
	_, _ = builder.WriteString(fmt.Sprintf("╰%s╯\n", rule))
	_, _ = builder.WriteString("  a   b   c   d   e   f   g   h\n")
	return builder.String()
}

// Position renders the board followed by the side to move and the
// move counters, for verbose output.
func Position(b *chess.Board, opts Options) string {
	var builder strings.Builder
	_, _ = builder.WriteString(Board(b, opts))
	_, _ = builder.WriteString(fmt.Sprintf("%s to move, halfmove %d, fullmove %d\n",
		b.ActiveColor, b.HalfMoves, b.FullMoves))
	return builder.String()
}

func cell(b *chess.Board, pos chess.Pos, opts Options) string {
	text := "   "
	if piece := b.Piece(pos.Row, pos.Col); piece != nil {
		if opts.Unicode {
			text = fmt.Sprintf(" %s ", piece.Symbol())
		} else {
			text = fmt.Sprintf(" %c ", piece.FENLetter())
		}
	}
	if !opts.Highlight {
		return text
	}
	mover, ok := b.Highlighted()[pos]
	if !ok {
		return text
	}
	if mover == chess.White {
		return whiteHighlight.Sprint(text)
	}
	return blackHighlight.Sprint(text)
}
