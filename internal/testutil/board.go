package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Positions used across package tests.
const (
	// CastlingFEN has both kings and all four rooks unmoved with nothing between them.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// PromotionFEN has a white pawn one step from promotion.
	PromotionFEN = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"

	// EnPassantFEN has a black pawn on e5 that may be taken en passant from f5.
	EnPassantFEN = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
)

// MustBoard builds a board from a FEN string, calling t.Fatal on failure.
func MustBoard(t *testing.T, fen string) *engine.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to build board from %q: %v", fen, err)
	}
	return board
}

// MustMoves plays long-algebraic moves such as "e2e4" or "b7b8q" on the
// board, calling t.Fatal on the first rejected move.
func MustMoves(t *testing.T, b *engine.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to, promotion, ok := parseLong(m)
		if !ok {
			t.Fatalf("malformed move %q", m)
		}
		if err := b.Move(from, to, promotion); err != nil {
			t.Fatalf("move %q rejected: %v\n%s", m, err, b)
		}
	}
}

func parseLong(m string) (from, to chess.Square, promotion chess.PieceType, ok bool) {
	if len(m) != 4 && len(m) != 5 {
		return from, to, promotion, false
	}
	var err error
	if from, err = chess.ParseSquare(m[0:2]); err != nil {
		return from, to, promotion, false
	}
	if to, err = chess.ParseSquare(m[2:4]); err != nil {
		return from, to, promotion, false
	}
	if len(m) == 5 {
		promotion = chess.PieceTypeFromLetter(m[4])
		if !promotion.IsPromotionChoice() {
			return from, to, promotion, false
		}
	}
	return from, to, promotion, true
}
