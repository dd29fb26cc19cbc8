package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *Board) bool {
				king, _ := b.At(sq("e1"))
				rook, _ := b.At(sq("h8"))
				return king.Type == chess.King && king.Colour == chess.White && !king.HasMoved &&
					rook.Type == chess.Rook && rook.Colour == chess.Black && !rook.HasMoved &&
					b.ToMove() == chess.White &&
					b.MoveNumber() == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *Board) bool {
				pawn, _ := b.At(sq("e4"))
				target, ok := b.EnPassantTarget(chess.White)
				_, occupied := b.At(sq("e2"))
				return pawn.Type == chess.Pawn && pawn.HasMoved && pawn.EnPassant &&
					ok && target == sq("e4") &&
					!occupied &&
					b.ToMove() == chess.Black
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(b *Board) bool {
				_, whiteTarget := b.EnPassantTarget(chess.White)
				target, blackTarget := b.EnPassantTarget(chess.Black)
				return !whiteTarget && blackTarget && target == sq("c5") &&
					b.ToMove() == chess.White &&
					b.MoveNumber() == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *Board) bool {
				for _, name := range []string{"a1", "e1", "h1", "a8", "e8", "h8"} {
					if p, _ := b.At(sq(name)); !p.HasMoved {
						return false
					}
				}
				return true
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b Kq - 0 7",
			checkFn: func(b *Board) bool {
				a1, _ := b.At(sq("a1"))
				h1, _ := b.At(sq("h1"))
				a8, _ := b.At(sq("a8"))
				h8, _ := b.At(sq("h8"))
				e8, _ := b.At(sq("e8"))
				return a1.HasMoved && !h1.HasMoved && !a8.HasMoved && h8.HasMoved && !e8.HasMoved &&
					b.MoveNumber() == 7
			},
		},
		{
			name: "pawn off its start rank has moved",
			fen:  "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			checkFn: func(b *Board) bool {
				return !b.CanMove(sq("e4"), sq("e6"), chess.NoPiece) &&
					b.CanMove(sq("e4"), sq("e5"), chess.NoPiece)
			},
		},
		{
			name: "en passant capture available",
			fen:  "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
			checkFn: func(b *Board) bool {
				if err := b.Move(sq("d5"), sq("e6"), chess.NoPiece); err != nil {
					return false
				}
				_, occupied := b.At(sq("e5"))
				return !occupied && len(b.Captured(chess.Black)) == 1
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *Board) bool {
				return b.ToMove() == chess.White && b.MoveNumber() == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed:\n%s", tt.fen, board)
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantState bool
	}{
		{"empty string", "", false},
		{"too few ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", false},
		{"overfull rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"short rank", "rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"invalid piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"invalid side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", false},
		{"invalid castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", false},
		{"invalid en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", false},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1", false},
		{"invalid move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x", false},
		{"non-ASCII piece", "4k3/8/8/8/8/8/ŐŐŐŐŐŐŐŐ/4K3 w - - 0 1", false},
		{"non-ASCII lower case piece", "4k3/8/8/8/8/8/8/ő2K4 w - - 0 1", false},
		{"en passant square on wrong rank", "4k3/8/8/8/3Pp3/8/8/4K3 w - e5 0 1", false},
		{"en passant square for side to move", "4k3/8/8/3Pp3/8/8/8/4K3 w - d3 0 1", false},
		{"en passant square occupied", "4k3/8/4p3/4p3/8/8/8/4K3 w - e6 0 1", false},
		{"en passant start square occupied", "4k3/4n3/8/4p3/8/8/8/4K3 w - e6 0 1", false},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king can be captured", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Fatalf("NewBoardFromFEN() error = %v, want ErrInvalidFEN", err)
			}
			if got := errors.Is(err, chesserrors.ErrInvalidState); got != tt.wantState {
				t.Errorf("errors.Is(err, ErrInvalidState) = %v, want %v", got, tt.wantState)
			}
		})
	}
}

func TestBoardFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 12",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := board.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestBoardFEN_AfterMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.PieceType
		wantFEN   string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			from:    "e2",
			to:      "e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			from:    "g1",
			to:      "f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1",
		},
		{
			name:    "kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			from:    "e1",
			to:      "g1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 0 1",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			from:    "e8",
			to:      "c8",
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 0 2",
		},
		{
			name:    "en passant capture",
			fen:     "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			from:    "f5",
			to:      "e6",
			wantFEN: "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:      "promotion",
			fen:       "4k3/1P6/8/8/8/8/8/4K3 w - - 0 40",
			from:      "b7",
			to:        "b8",
			promotion: chess.Knight,
			wantFEN:   "1N2k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if err := board.Move(sq(tt.from), sq(tt.to), tt.promotion); err != nil {
				t.Fatalf("Move(%s, %s) error = %v", tt.from, tt.to, err)
			}
			if got := board.FEN(); got != tt.wantFEN {
				t.Errorf("FEN() = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}
