package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func squares(names ...string) []chess.Square {
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = sq(n)
	}
	return out
}

func TestCandidates(t *testing.T) {
	sortSquares := cmpopts.SortSlices(func(a, b chess.Square) bool {
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.File < b.File
	})

	tests := []struct {
		name  string
		piece *Piece
		want  []chess.Square
	}{
		{
			name:  "knight in corner",
			piece: &Piece{Type: chess.Knight, Colour: chess.White, Position: sq("a1")},
			want:  squares("b3", "c2"),
		},
		{
			name:  "king on home square",
			piece: &Piece{Type: chess.King, Colour: chess.White, Position: sq("e1")},
			want:  squares("d1", "f1", "d2", "e2", "f2", "c1", "g1"),
		},
		{
			name:  "white pawn",
			piece: &Piece{Type: chess.Pawn, Colour: chess.White, Position: sq("a2")},
			want:  squares("a3", "a4", "b3"),
		},
		{
			name:  "black pawn",
			piece: &Piece{Type: chess.Pawn, Colour: chess.Black, Position: sq("e7")},
			want:  squares("e6", "e5", "d6", "f6"),
		},
		{
			name:  "rook",
			piece: &Piece{Type: chess.Rook, Colour: chess.Black, Position: sq("h8")},
			want: squares("h1", "h2", "h3", "h4", "h5", "h6", "h7",
				"a8", "b8", "c8", "d8", "e8", "f8", "g8"),
		},
		{
			name:  "bishop",
			piece: &Piece{Type: chess.Bishop, Colour: chess.White, Position: sq("b2")},
			want:  squares("a1", "c3", "d4", "e5", "f6", "g7", "h8", "a3", "c1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.piece)
			if diff := cmp.Diff(tt.want, got, sortSquares); diff != "" {
				t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCandidates_Queen(t *testing.T) {
	q := &Piece{Type: chess.Queen, Colour: chess.White, Position: sq("d4")}
	if got := len(Candidates(q)); got != 27 {
		t.Errorf("len(Candidates(queen on d4)) = %d, want 27", got)
	}
}
