package pgn

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/ajedrez-go/internal/errors"
)

// TokenType identifies a lexical token in PGN input.
type TokenType int

const (
	// TagToken is a tag pair such as [Event "Casual Game"].
	TagToken TokenType = iota
	// SymbolToken is a movetext symbol: a SAN move, a move number, or a
	// game result.
	SymbolToken
	// EOFToken marks the end of input.
	EOFToken
)

// Token is one lexical unit. Tag tokens carry Key and Value; symbol tokens
// carry Text.
type Token struct {
	Type  TokenType
	Text  string
	Key   string
	Value string
	Line  int
}

// Lexer tokenizes PGN input. Comments (brace and line), variations, and
// numeric annotation glyphs are consumed and discarded; the parser only
// ever sees tags and symbols.
type Lexer struct {
	r    *bufio.Reader
	line int
}

// NewLexer creates a lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), line: 1}
}

// Line returns the current 1-based line number.
func (l *Lexer) Line() int {
	return l.line
}

// NextToken returns the next tag or symbol token, or an EOF token when the
// input is exhausted.
func (l *Lexer) NextToken() (Token, error) {
	for {
		c, err := l.readByte()
		if err != nil {
			return Token{Type: EOFToken, Line: l.line}, nil
		}

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c == '[':
			return l.lexTag()
		case c == '{':
			if err := l.skipBraceComment(); err != nil {
				return Token{}, err
			}
		case c == ';':
			l.skipLineComment()
		case c == '(':
			if err := l.skipVariation(); err != nil {
				return Token{}, err
			}
		case c == '$':
			l.skipWhile(isDigit)
		case c == '*':
			return Token{Type: SymbolToken, Text: "*", Line: l.line}, nil
		default:
			return l.lexSymbol(c)
		}
	}
}

func (l *Lexer) readByte() (byte, error) {
	c, err := l.r.ReadByte()
	if err == nil && c == '\n' {
		l.line++
	}
	return c, err
}

func (l *Lexer) unreadByte(c byte) {
	if c == '\n' {
		l.line--
	}
	_ = l.r.UnreadByte()
}

// lexTag reads a tag pair: a symbol key, a quoted value, then ']'.
func (l *Lexer) lexTag() (Token, error) {
	startLine := l.line
	var raw strings.Builder
	for {
		c, err := l.readByte()
		if err != nil {
			return Token{}, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Line:     startLine,
				Expected: "']' closing a tag pair",
				Got:      "end of input",
			}
		}
		if c == ']' {
			break
		}
		raw.WriteByte(c)
	}

	text := strings.TrimSpace(raw.String())
	open := strings.IndexByte(text, '"')
	end := strings.LastIndexByte(text, '"')
	if open < 0 || end <= open {
		return Token{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Line:     startLine,
			Expected: "quoted tag value",
			Got:      text,
		}
	}

	return Token{
		Type:  TagToken,
		Key:   strings.TrimSpace(text[:open]),
		Value: text[open+1 : end],
		Line:  startLine,
	}, nil
}

// lexSymbol reads a run of symbol characters starting with c.
func (l *Lexer) lexSymbol(c byte) (Token, error) {
	startLine := l.line
	var sb strings.Builder
	sb.WriteByte(c)
	for {
		c, err := l.readByte()
		if err != nil {
			break
		}
		if !isSymbolChar(c) {
			l.unreadByte(c)
			break
		}
		sb.WriteByte(c)
	}
	return Token{Type: SymbolToken, Text: sb.String(), Line: startLine}, nil
}

// skipBraceComment consumes input up to the closing '}'.
func (l *Lexer) skipBraceComment() error {
	for {
		c, err := l.readByte()
		if err != nil {
			return &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Line:     l.line,
				Expected: "'}' closing a comment",
				Got:      "end of input",
			}
		}
		if c == '}' {
			return nil
		}
	}
}

// skipLineComment consumes input up to the end of the line.
func (l *Lexer) skipLineComment() {
	for {
		c, err := l.readByte()
		if err != nil || c == '\n' {
			return
		}
	}
}

// skipVariation consumes a parenthesized variation, nesting included. The
// engine replays the main line only.
func (l *Lexer) skipVariation() error {
	depth := 1
	for depth > 0 {
		c, err := l.readByte()
		if err != nil {
			return &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Line:     l.line,
				Expected: "')' closing a variation",
				Got:      "end of input",
			}
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return nil
}

func (l *Lexer) skipWhile(pred func(byte) bool) {
	for {
		c, err := l.readByte()
		if err != nil {
			return
		}
		if !pred(c) {
			l.unreadByte(c)
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSymbolChar reports whether c may appear inside a movetext symbol.
func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		return true
	case c == '-' || c == '=' || c == '+' || c == '#' || c == '.' || c == '/':
		return true
	}
	return false
}
