// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidNotation indicates text that is not valid algebraic notation.
	ErrInvalidNotation = errors.New("invalid algebraic notation")

	// ErrAmbiguousMove indicates notation that more than one piece could satisfy.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidState indicates a malformed or unreachable game state.
	ErrInvalidState = errors.New("invalid game state")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square label.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrUnknownPreset indicates a board preset name that is not defined.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError reports a move that is addressable but fails legality.
type MoveError struct {
	Expression string // The attempted move, e.g. "e2e4" or "Nf3"
	Reason     string // Human readable reason
	Err        error  // The underlying error, ErrIllegalMove if nil
}

// Error returns the formatted move error.
func (e *MoveError) Error() string {
	return response(fmt.Sprintf("%q is an invalid move", e.Expression), e.Reason)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	if e.Err == nil {
		return ErrIllegalMove
	}
	return e.Err
}

// NotationError reports text that cannot be interpreted as a move.
type NotationError struct {
	Expression string
	Reason     string
	Err        error // ErrInvalidNotation if nil
}

// Error returns the formatted notation error.
func (e *NotationError) Error() string {
	return response(fmt.Sprintf("%q is invalid algebraic notation", e.Expression), e.Reason)
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidNotation
	}
	return e.Err
}

// StateError reports a game state rejected at construction.
type StateError struct {
	Reason string
	Err    error // ErrInvalidState if nil
}

// Error returns the formatted state error.
func (e *StateError) Error() string {
	return response("the given state is invalid", e.Reason)
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidState
	}
	return e.Err
}

func response(head, reason string) string {
	if reason == "" {
		return head
	}
	return fmt.Sprintf("%s (%s)", head, reason)
}

// GameError wraps errors with game context, including the game id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Identifier of the game session (if known)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
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
