package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrAmbiguousMove", ErrAmbiguousMove, ErrAmbiguousMove},
		{"ErrInvalidState", ErrInvalidState, ErrInvalidState},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrUnknownPreset", ErrUnknownPreset, ErrUnknownPreset},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		sentinel error
		contains []string
	}{
		{
			name:     "default sentinel",
			err:      &MoveError{Expression: "Kf2", Reason: "leaves own king in check"},
			sentinel: ErrIllegalMove,
			contains: []string{`"Kf2"`, "invalid move", "leaves own king in check"},
		},
		{
			name:     "no reason",
			err:      &MoveError{Expression: "e2e5"},
			sentinel: ErrIllegalMove,
			contains: []string{`"e2e5" is an invalid move`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(MoveError, %v) = false, want true", tt.sentinel)
			}
		})
	}

	if msg := (&MoveError{Expression: "e2e5"}).Error(); strings.Contains(msg, "(") {
		t.Errorf("MoveError.Error() = %q, want no reason suffix", msg)
	}
}

func TestNotationError(t *testing.T) {
	err := &NotationError{Expression: "Zz9"}
	if !errors.Is(err, ErrInvalidNotation) {
		t.Error("errors.Is(NotationError, ErrInvalidNotation) = false, want true")
	}
	if errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(NotationError, ErrIllegalMove) = true, want false")
	}

	ambiguous := &NotationError{Expression: "Nd2", Reason: "disambiguate", Err: ErrAmbiguousMove}
	if !errors.Is(ambiguous, ErrAmbiguousMove) {
		t.Error("errors.Is(ambiguous, ErrAmbiguousMove) = false, want true")
	}
	if !strings.Contains(ambiguous.Error(), "disambiguate") {
		t.Errorf("NotationError.Error() = %q, should contain reason", ambiguous.Error())
	}
}

func TestStateError(t *testing.T) {
	err := &StateError{Reason: "White has 2 kings"}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("errors.Is(StateError, ErrInvalidState) = false, want true")
	}
	if !strings.Contains(err.Error(), "2 kings") {
		t.Errorf("StateError.Error() = %q, should contain reason", err.Error())
	}

	fen := &StateError{Reason: "bad rank", Err: ErrInvalidFEN}
	if !errors.Is(fen, ErrInvalidFEN) {
		t.Error("errors.Is(StateError{Err: ErrInvalidFEN}, ErrInvalidFEN) = false, want true")
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameID:   "5e1a",
				PlyNum:   12,
				MoveText: "Nxe5",
			},
			contains: []string{"game 5e1a", "ply 12", "Nxe5", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &GameError{Err: ErrInvalidNotation},
			contains: []string{"invalid algebraic notation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      &MoveError{Expression: "O-O-O"},
		GameID:   "abc",
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("replay failed: %w", gameErr)

	var extracted *GameError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}

	var moveErr *MoveError
	if !errors.As(wrapped, &moveErr) {
		t.Fatal("errors.As() could not extract MoveError through GameError")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of game %s", 15, "x")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
