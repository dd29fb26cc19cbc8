package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestIsContested(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		side   chess.Colour
		square string
		want   bool
	}{
		{"pawn attack on empty square", InitialFEN, chess.White, "e3", true},
		{"pawn push does not attack", InitialFEN, chess.White, "e4", false},
		{"knight and pawns defend", InitialFEN, chess.Black, "f6", true},
		{"own occupied square", InitialFEN, chess.White, "d2", true},
		{"enemy occupied square out of reach", InitialFEN, chess.White, "e7", false},
		{"queen ray", "4k3/8/8/8/8/8/7q/4K3 w - - 0 1", chess.Black, "f2", true},
		{"queen ray blocked", "4k3/8/8/8/8/8/5P1q/4K3 w - - 0 1", chess.Black, "e2", false},
		{"pawn onto promotion rank", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.Black, "c1", true},
		{"off board", InitialFEN, chess.White, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			before := b.Copy()

			target := chess.Square{Rank: -1, File: -1}
			if tt.square != "" {
				target = sq(tt.square)
			}
			if got := b.IsContested(tt.side, target); got != tt.want {
				t.Errorf("IsContested(%v, %s) = %v, want %v", tt.side, tt.square, got, tt.want)
			}
			if diff := cmp.Diff(before, b, boardComparer); diff != "" {
				t.Errorf("IsContested changed the board (-want +got):\n%s", diff)
			}
		})
	}
}

// TestInCheck_MatchesAttackers checks InCheck against a direct scan of every
// opposing piece onto the king square.
func TestInCheck_MatchesAttackers(t *testing.T) {
	fens := []string{
		InitialFEN,
		"4k3/8/8/8/8/8/7q/4K3 w - - 0 1",
		"4k3/8/8/8/7q/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/5n2/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1",
		"4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1",
		"4k3/3P4/8/8/8/8/8/4K3 b - - 0 1",
		"r3k2r/pppq1ppp/2n2n2/3pp3/1b2P3/2NP1N2/PPPB1PPP/R3K2R w KQkq - 0 8",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := mustFEN(t, fen)
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				king, _ := b.King(colour)
				want := false
				for _, attacker := range b.Living(colour.Opposite()) {
					promotion := chess.NoPiece
					if attacker.Type == chess.Pawn && king.Position.Rank == chess.PromotionRank(attacker.Colour) {
						promotion = chess.Queen
					}
					if ok, _ := attacker.Validate(b, king.Position, promotion); ok {
						want = true
					}
				}
				if got := b.InCheck(colour); got != want {
					t.Errorf("InCheck(%v) = %v, want %v", colour, got, want)
				}
			}
		})
	}
}

func TestInCheck_KnownPositions(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"start", InitialFEN, chess.White, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"blocked rook", "4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1", chess.White, false},
		{"black by pawn", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := b.InCheck(tt.colour); got != tt.want {
				t.Errorf("InCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}
