// Package errors provides sentinel errors and error types for the ajedrez
// engine. It defines the recoverable failure conditions of parsing and move
// application as values that callers inspect with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parse failures.
var (
	// ErrStringTooShort indicates a coordinate or move string with too few bytes.
	ErrStringTooShort = errors.New("string too short")

	// ErrInvalidPositionFile indicates a file letter outside 'a'..'h'.
	ErrInvalidPositionFile = errors.New("invalid position file")

	// ErrInvalidPositionRank indicates a rank digit outside '1'..'8'.
	ErrInvalidPositionRank = errors.New("invalid position rank")

	// ErrInvalidFENString indicates a FEN string that does not match the grammar.
	ErrInvalidFENString = errors.New("invalid FEN string")

	// ErrUselessMove indicates a parsed move whose source equals its destination.
	ErrUselessMove = errors.New("useless move")

	// ErrParseFailure indicates a general PGN parsing error.
	ErrParseFailure = errors.New("parse failure")
)

// Sentinel errors for move-legality failures.
var (
	// ErrOutOfBounds indicates move coordinates outside the board.
	ErrOutOfBounds = errors.New("move out of bounds")

	// ErrStartPieceMissing indicates an empty source square, or a notation
	// move with no candidate piece able to reach the destination.
	ErrStartPieceMissing = errors.New("no piece on the start square")

	// ErrWrongPieceColor indicates a source piece that does not belong to
	// the active side.
	ErrWrongPieceColor = errors.New("piece does not belong to the active side")

	// ErrCastlingForbidden indicates castling preconditions were not met.
	ErrCastlingForbidden = errors.New("castling forbidden")

	// ErrTooManyPossibleMoves indicates an ambiguous notation move with
	// several candidate pieces able to reach the destination.
	ErrTooManyPossibleMoves = errors.New("too many possible moves")
)

// MoveError wraps a move failure with replay context: which ply failed and
// the move text that caused it. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number where the error occurred
	MoveText string // The move text that caused the error (if applicable)
	Game     string // Game identifier (if known)
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Game != "" {
		parts = append(parts, e.Game)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a text parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted message with location and context.
func (e *ParseError) Error() string {
	var parts []string
	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
