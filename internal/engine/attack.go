package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsContested reports whether any living piece of side could legally move
// onto sq in an isolated sense, ignoring whether its own king would be left
// in check.
//
// Unless sq already holds a piece of the other colour, a neutral marker of
// that colour is left there while probing so pawn captures count and side's
// own pieces do not block. The square is restored before returning.
func (b *Board) IsContested(side chess.Colour, sq chess.Square) bool {
	if !sq.Valid() {
		return false
	}

	original := b.cell(sq)
	if original == nil || original.Colour == side {
		b.cells[sq.Rank][sq.File] = &Piece{Type: chess.NoPiece, Colour: side.Opposite(), Position: sq}
		defer func() { b.cells[sq.Rank][sq.File] = original }()
	}

	for _, p := range b.living[side] {
		if p.Position == sq {
			continue
		}
		promotion := chess.NoPiece
		if p.Type == chess.Pawn && sq.Rank == chess.PromotionRank(p.Colour) {
			promotion = chess.Queen
		}
		if ok, _ := p.Validate(b, sq, promotion); ok {
			return true
		}
	}
	return false
}

// InCheck reports whether the king of the given colour is attacked.
// A side without a king is never in check.
func (b *Board) InCheck(colour chess.Colour) bool {
	king := b.kings[colour]
	if king == nil {
		return false
	}
	return b.IsContested(colour.Opposite(), king.Position)
}
