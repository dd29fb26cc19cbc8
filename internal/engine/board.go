// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// enPassantRecord remembers the pawn that just advanced two squares.
type enPassantRecord struct {
	pawn   *Piece
	square chess.Square
}

// Board represents a chess position with all state needed to apply moves.
//
// A Board is not safe for concurrent use.
type Board struct {
	// cells[rank][file] owns the piece standing on that square.
	cells [chess.BoardSize][chess.BoardSize]*Piece

	// Per-colour rosters. Every piece is in exactly one of living or captured.
	living   [chess.NumColours][]*Piece
	captured [chess.NumColours][]*Piece
	kings    [chess.NumColours]*Piece

	// Who has the next move.
	toMove chess.Colour

	// The pawn of each colour that may be captured en passant, if any.
	enPassant [chess.NumColours]enPassantRecord

	// The current full-move number.
	moveNumber int
}

// NewBoard creates a board with the standard starting position.
func NewBoard() *Board {
	board, _ := NewBoardFromPreset(PresetDefault)
	return board
}

// NewBoardFromPreset creates a board from a named preset.
// The default preset is fully validated; the empty preset only structurally.
func NewBoardFromPreset(name string) (*Board, error) {
	state, err := Preset(name)
	if err != nil {
		return nil, err
	}
	return NewBoardFromState(state, name != PresetEmpty)
}

// NewBoardFromState creates a board from a deep copy of the given state.
func NewBoardFromState(state Gamestate, fullCheck bool) (*Board, error) {
	board := &Board{}
	if err := board.Populate(state, fullCheck); err != nil {
		return nil, err
	}
	return board, nil
}

// Populate verifies the given state and replaces the board contents with a
// deep copy of it. The board is left untouched if the state is rejected.
func (b *Board) Populate(state Gamestate, fullCheck bool) error {
	if err := validateShape(state); err != nil {
		return err
	}
	fresh := &Board{}
	fresh.load(state)
	if fullCheck {
		if err := fresh.validateRules(); err != nil {
			return err
		}
	}
	*b = *fresh
	return nil
}

// load fills an empty board from a structurally valid state.
func (b *Board) load(state Gamestate) {
	b.toMove = state.ToMove
	b.moveNumber = 1
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			src := state.Grid[rank][file]
			if src == nil {
				continue
			}
			p := src.clone()
			b.setCell(chess.Square{Rank: rank, File: file}, p)
			b.living[p.Colour] = append(b.living[p.Colour], p)
			if p.Type == chess.King && b.kings[p.Colour] == nil {
				b.kings[p.Colour] = p
			}
			if p.Type != chess.Pawn {
				p.EnPassant = false
				continue
			}
			// Only the side that just moved can own a capturable pawn.
			if p.EnPassant && (p.Colour == b.toMove || b.enPassant[p.Colour].pawn != nil) {
				p.EnPassant = false
			}
			if p.EnPassant {
				b.enPassant[p.Colour] = enPassantRecord{pawn: p, square: p.Position}
			}
		}
	}
}

// Copy creates a deep copy of the board, including captured pieces.
func (b *Board) Copy() *Board {
	c := &Board{toMove: b.toMove, moveNumber: b.moveNumber}
	clones := make(map[*Piece]*Piece)
	dup := func(p *Piece) *Piece {
		if p == nil {
			return nil
		}
		if q, ok := clones[p]; ok {
			return q
		}
		q := p.clone()
		clones[p] = q
		return q
	}

	for rank := range b.cells {
		for file := range b.cells[rank] {
			c.cells[rank][file] = dup(b.cells[rank][file])
		}
	}
	for colour := 0; colour < chess.NumColours; colour++ {
		for _, p := range b.living[colour] {
			c.living[colour] = append(c.living[colour], dup(p))
		}
		for _, p := range b.captured[colour] {
			c.captured[colour] = append(c.captured[colour], dup(p))
		}
		c.kings[colour] = dup(b.kings[colour])
		c.enPassant[colour] = enPassantRecord{
			pawn:   dup(b.enPassant[colour].pawn),
			square: b.enPassant[colour].square,
		}
	}
	return c
}

// cell returns the piece on sq, or nil if sq is empty or off the board.
func (b *Board) cell(sq chess.Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.cells[sq.Rank][sq.File]
}

// setCell places p (which may be nil) on sq and updates its cached position.
func (b *Board) setCell(sq chess.Square, p *Piece) {
	b.cells[sq.Rank][sq.File] = p
	if p != nil {
		p.Position = sq
	}
}

// swap exchanges the contents of two squares.
func (b *Board) swap(x, y chess.Square) {
	px, py := b.cell(x), b.cell(y)
	b.setCell(x, py)
	b.setCell(y, px)
}

// removeLiving takes p out of its living roster and returns its former index.
func (b *Board) removeLiving(p *Piece) int {
	roster := b.living[p.Colour]
	for i, q := range roster {
		if q == p {
			b.living[p.Colour] = append(roster[:i:i], roster[i+1:]...)
			return i
		}
	}
	return len(roster)
}

// insertLiving puts p back into its living roster at index.
func (b *Board) insertLiving(p *Piece, index int) {
	roster := b.living[p.Colour]
	out := make([]*Piece, 0, len(roster)+1)
	out = append(out, roster[:index]...)
	out = append(out, p)
	out = append(out, roster[index:]...)
	b.living[p.Colour] = out
}

// replaceLiving swaps old for replacement in the roster and returns the index.
func (b *Board) replaceLiving(old, replacement *Piece) int {
	roster := b.living[old.Colour]
	for i, q := range roster {
		if q == old {
			roster[i] = replacement
			return i
		}
	}
	return -1
}

// At returns a copy of the piece on sq. ok is false for empty or off-board squares.
func (b *Board) At(sq chess.Square) (piece Piece, ok bool) {
	p := b.cell(sq)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// ToMove returns the side to move.
func (b *Board) ToMove() chess.Colour {
	return b.toMove
}

// MoveNumber returns the full-move number, starting at 1 and incremented
// after every Black move.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// King returns a copy of the king of the given colour.
func (b *Board) King(colour chess.Colour) (piece Piece, ok bool) {
	k := b.kings[colour]
	if k == nil {
		return Piece{}, false
	}
	return *k, true
}

// Living returns copies of the pieces of the given colour still on the board.
func (b *Board) Living(colour chess.Colour) []Piece {
	return copyPieces(b.living[colour])
}

// Captured returns copies of the pieces of the given colour that have been captured.
func (b *Board) Captured(colour chess.Colour) []Piece {
	return copyPieces(b.captured[colour])
}

func copyPieces(pieces []*Piece) []Piece {
	out := make([]Piece, len(pieces))
	for i, p := range pieces {
		out[i] = *p
	}
	return out
}

// EnPassantTarget returns the square of the pawn of the given colour that
// may be captured en passant on the current half-move.
func (b *Board) EnPassantTarget(colour chess.Colour) (chess.Square, bool) {
	rec := b.enPassant[colour]
	if rec.pawn == nil {
		return chess.Square{}, false
	}
	return rec.square, true
}

// Move applies a move from one square to another for the side to move.
// promotion must name the new piece type when a pawn reaches its last rank
// and be chess.NoPiece otherwise. On error the board is unchanged.
func (b *Board) Move(from, to chess.Square, promotion chess.PieceType) error {
	return b.move(from, to, promotion, false)
}

// CanMove reports whether Move would succeed, without changing the board.
func (b *Board) CanMove(from, to chess.Square, promotion chess.PieceType) bool {
	return b.move(from, to, promotion, true) == nil
}

// move validates the move, applies its consequences, tests whether the
// mover's own king is left in check and then either commits or rolls back.
func (b *Board) move(from, to chess.Square, promotion chess.PieceType, validateOnly bool) error {
	expr := moveExpression(from, to, promotion)
	if !from.Valid() || !to.Valid() {
		return &errors.MoveError{Expression: expr, Reason: "square is off the board"}
	}

	piece := b.cell(from)
	if piece == nil {
		return &errors.MoveError{Expression: expr, Reason: fmt.Sprintf("no piece on %s", from)}
	}
	if piece.Colour != b.toMove {
		return &errors.MoveError{
			Expression: expr,
			Reason:     fmt.Sprintf("the %s on %s does not belong to %s", strings.ToLower(piece.Type.String()), from, b.toMove),
		}
	}

	ok, consequences := piece.Validate(b, to, promotion)
	if !ok {
		return &errors.MoveError{
			Expression: expr,
			Reason:     fmt.Sprintf("%s cannot move from %s to %s", strings.ToLower(piece.Type.String()), from, to),
		}
	}

	undos := make([]undo, 0, len(consequences))
	for _, c := range consequences {
		undos = append(undos, c.apply(b))
	}
	b.swap(from, to)

	if b.InCheck(b.toMove) {
		b.rollback(from, to, undos)
		return &errors.MoveError{Expression: expr, Reason: "leaves own king in check"}
	}
	if validateOnly {
		b.rollback(from, to, undos)
		return nil
	}

	b.commit()
	return nil
}

// rollback reverts the primary relocation and then every consequence in
// reverse application order.
func (b *Board) rollback(from, to chess.Square, undos []undo) {
	b.swap(to, from)
	for i := len(undos) - 1; i >= 0; i-- {
		undos[i].revert(b)
	}
}

// commit finishes an accepted move: the turn passes and the new mover's own
// en passant privilege, granted one half-move ago, expires.
func (b *Board) commit() {
	if b.toMove == chess.Black {
		b.moveNumber++
	}
	b.toMove = b.toMove.Opposite()

	if rec := b.enPassant[b.toMove]; rec.pawn != nil {
		rec.pawn.EnPassant = false
		b.enPassant[b.toMove] = enPassantRecord{}
	}
}

// moveExpression renders a move in long algebraic form, e.g. "e7e8q".
func moveExpression(from, to chess.Square, promotion chess.PieceType) string {
	expr := from.String() + to.String()
	if promotion != chess.NoPiece {
		expr += strings.ToLower(string(promotion.Letter()))
	}
	return expr
}
