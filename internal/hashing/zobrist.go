package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5eed

type zobristTable struct {
	pieces    [chess.NumColours][chess.King + 1][chess.BoardSize][chess.BoardSize]uint64
	whiteMove uint64
	castling  [chess.NumColours][2]uint64 // kingside, queenside
	enPassant [chess.BoardSize]uint64     // by file
}

var zobrist = newZobristTable(zobristSeed)

func newZobristTable(seed int64) *zobristTable {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: keys need not be secure
	t := &zobristTable{}
	for c := range t.pieces {
		for p := range t.pieces[c] {
			for rank := range t.pieces[c][p] {
				for file := range t.pieces[c][p][rank] {
					t.pieces[c][p][rank][file] = r.Uint64()
				}
			}
		}
	}
	t.whiteMove = r.Uint64()
	for c := range t.castling {
		t.castling[c][0] = r.Uint64()
		t.castling[c][1] = r.Uint64()
	}
	for f := range t.enPassant {
		t.enPassant[f] = r.Uint64()
	}
	return t
}

// GenerateZobristHash hashes the placement, side to move, castling
// availability and en-passant file of a board.
func GenerateZobristHash(b *engine.Board) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, p := range b.Living(colour) {
			hash ^= zobrist.pieces[colour][p.Type][p.Position.Rank][p.Position.File]
		}
		kingside, queenside := castlingAvailable(b, colour)
		if kingside {
			hash ^= zobrist.castling[colour][0]
		}
		if queenside {
			hash ^= zobrist.castling[colour][1]
		}
	}
	if b.ToMove() == chess.White {
		hash ^= zobrist.whiteMove
	}
	if sq, ok := b.EnPassantTarget(b.ToMove().Opposite()); ok {
		hash ^= zobrist.enPassant[sq.File]
	}
	return hash
}

// castlingAvailable reports whether the king and the corner rooks of
// colour are still unmoved on their home squares.
func castlingAvailable(b *engine.Board, colour chess.Colour) (kingside, queenside bool) {
	home := chess.HomeRank(colour)
	if !unmoved(b, chess.Square{Rank: home, File: 4}, chess.King, colour) {
		return false, false
	}
	kingside = unmoved(b, chess.Square{Rank: home, File: 7}, chess.Rook, colour)
	queenside = unmoved(b, chess.Square{Rank: home, File: 0}, chess.Rook, colour)
	return kingside, queenside
}

func unmoved(b *engine.Board, sq chess.Square, pieceType chess.PieceType, colour chess.Colour) bool {
	p, ok := b.At(sq)
	return ok && p.Type == pieceType && p.Colour == colour && !p.HasMoved
}

// WeakHash is a cheap order-independent checksum of the placement used as
// a second opinion on Zobrist collisions.
func WeakHash(b *engine.Board) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, p := range b.Living(colour) {
			sq := uint64(p.Position.Rank*chess.BoardSize + p.Position.File + 1)
			hash += sq * uint64(int(p.Type)+int(colour)*8)
		}
	}
	return hash
}
