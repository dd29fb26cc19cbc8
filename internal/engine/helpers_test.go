package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// boardComparer compares every piece of board state, including rosters.
var boardComparer = cmp.Options{
	cmp.AllowUnexported(Board{}, enPassantRecord{}),
	cmpopts.EquateEmpty(),
}

func sq(name string) chess.Square {
	return chess.SquareFromName(name)
}

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// mustMoves plays a sequence of long-algebraic moves such as "e2e4" or "b7b8q".
func mustMoves(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		promotion := chess.NoPiece
		if len(m) == 5 {
			promotion = chess.PieceTypeFromLetter(m[4])
		}
		if err := b.Move(sq(m[0:2]), sq(m[2:4]), promotion); err != nil {
			t.Fatalf("Move(%s) error: %v", m, err)
		}
	}
}
