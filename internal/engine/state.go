package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Preset names.
const (
	PresetDefault = "default"
	PresetEmpty   = "empty"
)

// Gamestate is the construction input of a board: an 8x8 grid indexed
// [rank][file] of optional pieces plus the side to move.
// Piece positions in the grid are ignored; the grid index is authoritative.
type Gamestate struct {
	Grid   [][]*Piece
	ToMove chess.Colour
}

// backRank lists the piece types of the home rank from file a to file h.
var backRank = [chess.BoardSize]chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// EmptyGrid returns an 8x8 grid with no pieces.
func EmptyGrid() [][]*Piece {
	grid := make([][]*Piece, chess.BoardSize)
	for rank := range grid {
		grid[rank] = make([]*Piece, chess.BoardSize)
	}
	return grid
}

// Preset returns a fresh copy of a named starting state.
func Preset(name string) (Gamestate, error) {
	switch name {
	case PresetEmpty:
		return Gamestate{Grid: EmptyGrid(), ToMove: chess.White}, nil
	case PresetDefault:
		grid := EmptyGrid()
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			home := chess.HomeRank(colour)
			pawns := home + chess.ColourOffset(colour)
			for file := 0; file < chess.BoardSize; file++ {
				grid[home][file] = NewPiece(colour, backRank[file])
				grid[pawns][file] = NewPiece(colour, chess.Pawn)
			}
		}
		return Gamestate{Grid: grid, ToMove: chess.White}, nil
	}
	return Gamestate{}, errors.Wrapf(errors.ErrUnknownPreset, "%q", name)
}

// State exports a deep copy of the board as a Gamestate.
func (b *Board) State() Gamestate {
	grid := EmptyGrid()
	for rank := range b.cells {
		for file, p := range b.cells[rank] {
			if p != nil {
				grid[rank][file] = p.clone()
			}
		}
	}
	return Gamestate{Grid: grid, ToMove: b.toMove}
}

// ValidateState checks that a state is well formed: an 8x8 grid whose cells
// are empty or hold a valid piece. With fullCheck it also requires exactly one
// king per colour and that the side not to move is not in check.
func ValidateState(state Gamestate, fullCheck bool) error {
	if err := validateShape(state); err != nil {
		return err
	}
	if !fullCheck {
		return nil
	}
	b := &Board{}
	b.load(state)
	return b.validateRules()
}

func validateShape(state Gamestate) error {
	if !state.ToMove.Valid() {
		return &errors.StateError{Reason: fmt.Sprintf("side to move %d is not a colour", int(state.ToMove))}
	}
	if len(state.Grid) != chess.BoardSize {
		return &errors.StateError{Reason: fmt.Sprintf("expected %d ranks, got %d", chess.BoardSize, len(state.Grid))}
	}
	for rank, row := range state.Grid {
		if len(row) != chess.BoardSize {
			return &errors.StateError{
				Reason: fmt.Sprintf("rank %s has %d files, expected %d", chess.RankName(rank), len(row), chess.BoardSize),
			}
		}
		for file, p := range row {
			if p == nil {
				continue
			}
			if !p.Type.Valid() || !p.Colour.Valid() {
				sq := chess.Square{Rank: rank, File: file}
				return &errors.StateError{Reason: fmt.Sprintf("%s does not hold a valid piece", sq)}
			}
		}
	}
	return nil
}

// validateRules applies the whole-position checks to a loaded board.
func (b *Board) validateRules() error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, p := range b.living[colour] {
			if p.Type == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return &errors.StateError{Reason: fmt.Sprintf("%s has %d kings", colour, kings)}
		}
	}
	waiting := b.toMove.Opposite()
	if b.InCheck(waiting) {
		return &errors.StateError{Reason: fmt.Sprintf("%s king can be captured", waiting)}
	}
	return nil
}
