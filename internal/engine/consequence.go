package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// EffectKind categorizes the secondary effects a move can have.
type EffectKind int

const (
	Capture       EffectKind = iota // Remove the piece on Square
	DoubleAdvance                   // Pawn on From advances two squares to To
	MarkMoved                       // Set HasMoved on the piece on Square
	Promote                         // Replace the pawn on Square with a Promotion piece
	Relocate                        // Swap the contents of From and To
)

// String returns the string representation of an effect kind.
func (k EffectKind) String() string {
	names := []string{"Capture", "DoubleAdvance", "MarkMoved", "Promote", "Relocate"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Consequence is a side effect of a move beyond the primary relocation of the
// moving piece. Which fields are used depends on Kind.
type Consequence struct {
	Kind      EffectKind
	Square    chess.Square
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// undo holds what is needed to revert one applied consequence.
type undo struct {
	c     Consequence
	piece *Piece // captured, marked or double-advanced piece; the pawn for Promote
	index int    // roster index of the captured or promoted piece
	flag  bool   // previous HasMoved / EnPassant value
	ep    enPassantRecord
}

// apply executes the consequence on the board and returns its undo data.
func (c Consequence) apply(b *Board) undo {
	u := undo{c: c}
	switch c.Kind {
	case Capture:
		victim := b.cell(c.Square)
		u.piece = victim
		u.index = b.removeLiving(victim)
		b.captured[victim.Colour] = append(b.captured[victim.Colour], victim)
		b.setCell(c.Square, nil)

	case DoubleAdvance:
		pawn := b.cell(c.From)
		u.piece = pawn
		u.flag = pawn.EnPassant
		u.ep = b.enPassant[pawn.Colour]
		pawn.EnPassant = true
		b.enPassant[pawn.Colour] = enPassantRecord{pawn: pawn, square: c.To}

	case MarkMoved:
		p := b.cell(c.Square)
		u.piece = p
		u.flag = p.HasMoved
		p.HasMoved = true

	case Promote:
		pawn := b.cell(c.Square)
		promoted := &Piece{Type: c.Promotion, Colour: pawn.Colour, Position: c.Square, HasMoved: true}
		u.piece = pawn
		u.index = b.replaceLiving(pawn, promoted)
		b.setCell(c.Square, promoted)

	case Relocate:
		b.swap(c.From, c.To)
	}
	return u
}

// revert reverses an applied consequence using its paired undo data.
func (u undo) revert(b *Board) {
	switch u.c.Kind {
	case Capture:
		victim := u.piece
		captured := b.captured[victim.Colour]
		b.captured[victim.Colour] = captured[:len(captured)-1]
		b.insertLiving(victim, u.index)
		b.setCell(u.c.Square, victim)

	case DoubleAdvance:
		u.piece.EnPassant = u.flag
		b.enPassant[u.piece.Colour] = u.ep

	case MarkMoved:
		u.piece.HasMoved = u.flag

	case Promote:
		b.living[u.piece.Colour][u.index] = u.piece
		b.setCell(u.c.Square, u.piece)

	case Relocate:
		b.swap(u.c.From, u.c.To)
	}
}
