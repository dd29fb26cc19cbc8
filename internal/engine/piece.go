package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Piece is a single chess piece. The Type field selects the movement rules;
// HasMoved is meaningful for kings, rooks and pawns, EnPassant for pawns only.
//
// Position caches the square of the board cell that holds the piece and is
// updated together with that cell on every relocation.
type Piece struct {
	Type      chess.PieceType
	Colour    chess.Colour
	Position  chess.Square
	HasMoved  bool
	EnPassant bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour chess.Colour, pieceType chess.PieceType) *Piece {
	return &Piece{Type: pieceType, Colour: colour}
}

// Direction returns the rank direction a pawn of this colour advances in.
func (p *Piece) Direction() int {
	return chess.ColourOffset(p.Colour)
}

// Letter returns the FEN letter of the piece: upper case for White.
func (p *Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// clone returns an independent copy of the piece.
func (p *Piece) clone() *Piece {
	c := *p
	return &c
}

// Validate reports whether moving the piece to target is legal in an isolated
// sense (ignoring whether the mover's king is left in check) and returns the
// ordered consequences the move would have beyond the primary relocation.
// Validate never mutates the board.
func (p *Piece) Validate(b *Board, target chess.Square, promotion chess.PieceType) (bool, []Consequence) {
	if !isCandidate(p, target) {
		return false, nil
	}
	if p.Type != chess.Pawn && promotion != chess.NoPiece {
		return false, nil
	}

	switch p.Type {
	case chess.King:
		return p.validateKing(b, target)
	case chess.Queen, chess.Rook, chess.Bishop:
		return p.validateRay(b, target)
	case chess.Knight:
		return p.validateStep(b, target)
	case chess.Pawn:
		return p.validatePawn(b, target, promotion)
	}
	return false, nil
}

// isEnemy reports whether other is a piece of the opposing colour.
func (p *Piece) isEnemy(other *Piece) bool {
	return other != nil && other.Colour != p.Colour
}

// markMoved appends a MarkMoved consequence for pieces that track it.
func (p *Piece) markMoved(cs []Consequence) []Consequence {
	if p.HasMoved {
		return cs
	}
	switch p.Type {
	case chess.King, chess.Rook, chess.Pawn:
		return append(cs, Consequence{Kind: MarkMoved, Square: p.Position})
	}
	return cs
}

// validateStep handles a move onto a square that only needs to be empty or
// enemy-occupied.
func (p *Piece) validateStep(b *Board, target chess.Square) (bool, []Consequence) {
	occupant := b.cell(target)
	var cs []Consequence
	switch {
	case occupant == nil:
	case p.isEnemy(occupant):
		cs = append(cs, Consequence{Kind: Capture, Square: target})
	default:
		return false, nil
	}
	return true, p.markMoved(cs)
}

func (p *Piece) validateRay(b *Board, target chess.Square) (bool, []Consequence) {
	if !isPathClear(b, p.Position, target) {
		return false, nil
	}
	return p.validateStep(b, target)
}

func (p *Piece) validateKing(b *Board, target chess.Square) (bool, []Consequence) {
	df := target.File - p.Position.File
	if abs(df) != 2 {
		return p.validateStep(b, target)
	}

	// Castling. Attacks on the squares the king passes are not checked here;
	// only the final position is tested by the board.
	if p.HasMoved || p.Position.Rank != chess.HomeRank(p.Colour) || target.Rank != p.Position.Rank {
		return false, nil
	}
	dir := sign(df)
	sq := p.Position.Offset(0, dir)
	for sq.Valid() {
		occupant := b.cell(sq)
		if occupant == nil {
			sq = sq.Offset(0, dir)
			continue
		}
		if occupant.Type != chess.Rook || occupant.Colour != p.Colour || occupant.HasMoved {
			return false, nil
		}
		// The rook must stand beyond the king's destination.
		if (sq.File-target.File)*dir <= 0 {
			return false, nil
		}
		rookTo := target.Offset(0, -dir)
		return true, []Consequence{
			{Kind: MarkMoved, Square: p.Position},
			{Kind: MarkMoved, Square: sq},
			{Kind: Relocate, From: sq, To: rookTo},
		}
	}
	return false, nil
}

func (p *Piece) validatePawn(b *Board, target chess.Square, promotion chess.PieceType) (bool, []Consequence) {
	dir := p.Direction()
	dr := target.Rank - p.Position.Rank
	df := target.File - p.Position.File
	var cs []Consequence

	switch {
	case df == 0 && dr == dir:
		if b.cell(target) != nil {
			return false, nil
		}
	case df == 0 && dr == 2*dir:
		if p.HasMoved || b.cell(p.Position.Offset(dir, 0)) != nil || b.cell(target) != nil {
			return false, nil
		}
	case abs(df) == 1 && dr == dir:
		occupant := b.cell(target)
		if occupant != nil {
			if !p.isEnemy(occupant) {
				return false, nil
			}
			cs = append(cs, Consequence{Kind: Capture, Square: target})
			break
		}
		behind := target.Offset(-dir, 0)
		victim := b.cell(behind)
		if victim == nil || !p.isEnemy(victim) || victim.Type != chess.Pawn || !victim.EnPassant {
			return false, nil
		}
		cs = append(cs, Consequence{Kind: Capture, Square: behind})
	default:
		return false, nil
	}

	cs = p.markMoved(cs)
	if dr == 2*dir {
		cs = append(cs, Consequence{Kind: DoubleAdvance, From: p.Position, To: target})
	}

	if target.Rank == chess.PromotionRank(p.Colour) {
		if !promotion.IsPromotionChoice() {
			return false, nil
		}
		cs = append(cs, Consequence{Kind: Promote, Square: p.Position, Promotion: promotion})
	} else if promotion != chess.NoPiece {
		return false, nil
	}
	return true, cs
}
