package pgn

import (
	"io"
	"regexp"
	"strings"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// sanGrammar matches one SAN token: castles, or an optional piece letter,
// optional file/rank disambiguators, optional capture marker, destination
// square, optional promotion suffix, optional check suffix.
var sanGrammar = regexp.MustCompile(
	`^(?:(O-O-O|0-0-0)|(O-O|0-0)|([KQRBN])?([a-h])?([1-8])?(x)?([a-h])([1-8])(=[QRBN])?)([+#])?$`)

// moveNumber matches move-number indicators such as "1." and "3...".
var moveNumber = regexp.MustCompile(`^[0-9]+\.*$`)

// gameResult matches the PGN result markers.
var gameResult = regexp.MustCompile(`^(1-0|0-1|1/2-1/2|\*)$`)

// Parse reads one PGN game from r: its tag pairs followed by movetext up to
// the game result or end of input.
func Parse(r io.Reader) (*Game, error) {
	p := &parser{lexer: NewLexer(r)}
	return p.parseGame()
}

// ParseAll reads every game from r until end of input.
func ParseAll(r io.Reader) ([]*Game, error) {
	p := &parser{lexer: NewLexer(r)}
	var games []*Game
	for {
		game, err := p.parseGame()
		if err != nil {
			return games, err
		}
		if len(game.Tags) == 0 && len(game.Moves) == 0 && game.Result == "" {
			return games, nil
		}
		games = append(games, game)
	}
}

// parser wraps the lexer with a one-token pushback, so a game boundary
// detected mid-stream can hand the token back to the next game.
type parser struct {
	lexer   *Lexer
	pending *Token
}

func (p *parser) next() (Token, error) {
	if p.pending != nil {
		tok := *p.pending
		p.pending = nil
		return tok, nil
	}
	return p.lexer.NextToken()
}

func (p *parser) parseGame() (*Game, error) {
	game := NewGame()

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case EOFToken:
			return game, nil
		case TagToken:
			// A tag pair after movetext starts the next game; games in
			// the wild often omit the result marker.
			if len(game.Moves) > 0 {
				p.pending = &tok
				return game, nil
			}
			game.Tags[tok.Key] = tok.Value
		case SymbolToken:
			if moveNumber.MatchString(tok.Text) {
				continue
			}
			if gameResult.MatchString(tok.Text) {
				game.Result = tok.Text
				return game, nil
			}
			mv, err := ParseSAN(tok.Text)
			if err != nil {
				return nil, &errors.ParseError{
					Err:      err,
					Line:     tok.Line,
					Expected: "a SAN move",
					Got:      tok.Text,
				}
			}
			game.Moves = append(game.Moves, mv)
		}
	}
}

// ParseString parses one PGN game from a string.
func ParseString(s string) (*Game, error) {
	return Parse(strings.NewReader(s))
}

// ParseSAN converts a single SAN token into a move descriptor. Promotion
// suffixes are rejected: pawn promotion is outside this engine's rules.
func ParseSAN(text string) (SANMove, error) {
	m := sanGrammar.FindStringSubmatch(text)
	if m == nil {
		return SANMove{}, errors.Wrapf(errors.ErrParseFailure, "malformed SAN move %q", text)
	}

	mv := SANMove{Text: text, FromRow: -1, FromCol: -1}
	if m[10] != "" {
		mv.Check = m[10][0]
	}

	switch {
	case m[1] != "":
		mv.Class = QueensideCastle
		mv.Piece = chess.King
		return mv, nil
	case m[2] != "":
		mv.Class = KingsideCastle
		mv.Piece = chess.King
		return mv, nil
	}

	if m[9] != "" {
		return SANMove{}, errors.Wrapf(errors.ErrParseFailure, "promotion is not supported: %q", text)
	}

	mv.Piece = pieceFromSANLetter(m[3])
	mv.Capture = m[6] == "x"

	if m[4] != "" {
		col, err := chess.FileToCol(m[4][0])
		if err != nil {
			return SANMove{}, err
		}
		mv.FromCol = col
	}
	if m[5] != "" {
		row, err := chess.RankToRow(int(m[5][0] - '0'))
		if err != nil {
			return SANMove{}, err
		}
		mv.FromRow = row
	}

	col, err := chess.FileToCol(m[7][0])
	if err != nil {
		return SANMove{}, err
	}
	row, err := chess.RankToRow(int(m[8][0] - '0'))
	if err != nil {
		return SANMove{}, err
	}
	mv.To = chess.Pos{Row: row, Col: col}

	return mv, nil
}

// pieceFromSANLetter maps a SAN piece letter to its type; the empty letter
// is a pawn move.
func pieceFromSANLetter(letter string) chess.PieceType {
	switch letter {
	case "K":
		return chess.King
	case "Q":
		return chess.Queen
	case "R":
		return chess.Rook
	case "B":
		return chess.Bishop
	case "N":
		return chess.Knight
	}
	return chess.Pawn
}
