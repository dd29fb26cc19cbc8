// Package notation interprets moves written in standard algebraic notation
// against a board position.
package notation

import (
	"regexp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// moveRegex matches a single SAN token. Submatches:
// 1 piece, 2 departure file, 3 departure rank, 4 capture marker,
// 5 arrival file, 6 arrival rank, 7 promotion, 8 long castle suffix.
var moveRegex = regexp.MustCompile(
	`^(?:([KQRBN]?)([a-h]?)([1-8]?)(x?)([a-h])([1-8])(?:=([KQRBN]))?|O-O(-O)?)[#+]?$`)

const (
	groupPiece = iota + 1
	groupFromFile
	groupFromRank
	groupCapture
	groupToFile
	groupToRank
	groupPromotion
	groupLongCastle
)

// Interpretation is a move resolved to board coordinates.
type Interpretation struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// String returns the move in long algebraic form, e.g. "e7e8q".
func (i Interpretation) String() string {
	s := i.From.String() + i.To.String()
	if i.Promotion != chess.NoPiece {
		s += string(rune(i.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// Interpret resolves text to the unique move of the side to move that it
// describes. The board is not changed.
//
// Text that does not match the grammar yields a *errors.NotationError; text
// that several pieces could satisfy yields a *errors.NotationError wrapping
// errors.ErrAmbiguousMove; text no piece can satisfy yields a *errors.MoveError.
func Interpret(b *engine.Board, text string) (Interpretation, error) {
	m := moveRegex.FindStringSubmatch(text)
	if m == nil {
		return Interpretation{}, &errors.NotationError{Expression: text}
	}

	if m[groupToFile] == "" {
		return interpretCastle(b, text, m[groupLongCastle] != "")
	}

	pieceType := chess.Pawn
	if m[groupPiece] != "" {
		pieceType = chess.PieceTypeFromLetter(m[groupPiece][0])
	}
	promotion := chess.NoPiece
	if m[groupPromotion] != "" {
		promotion = chess.PieceTypeFromLetter(m[groupPromotion][0])
	}
	target := chess.SquareFromName(m[groupToFile] + m[groupToRank])

	var found []engine.Piece
	for _, p := range b.Living(b.ToMove()) {
		if p.Type != pieceType {
			continue
		}
		if f := m[groupFromFile]; f != "" && chess.FileName(p.Position.File) != f {
			continue
		}
		if r := m[groupFromRank]; r != "" && chess.RankName(p.Position.Rank) != r {
			continue
		}
		if b.CanMove(p.Position, target, promotion) {
			found = append(found, p)
		}
	}

	switch len(found) {
	case 0:
		return Interpretation{}, &errors.MoveError{Expression: text, Reason: "no piece can make that move"}
	case 1:
		return Interpretation{From: found[0].Position, To: target, Promotion: promotion}, nil
	}
	return Interpretation{}, &errors.NotationError{
		Expression: text,
		Reason:     "ambiguous, disambiguate by giving a departure file or rank",
		Err:        errors.ErrAmbiguousMove,
	}
}

// interpretCastle maps a castling token to the king's two-file move.
func interpretCastle(b *engine.Board, text string, long bool) (Interpretation, error) {
	king, ok := b.King(b.ToMove())
	if !ok {
		return Interpretation{}, &errors.MoveError{Expression: text, Reason: "no piece can make that move"}
	}
	df := 2
	if long {
		df = -2
	}
	move := Interpretation{From: king.Position, To: king.Position.Offset(0, df)}
	if !b.CanMove(move.From, move.To, chess.NoPiece) {
		return Interpretation{}, &errors.MoveError{Expression: text, Reason: "castling is not possible"}
	}
	return move, nil
}

// Play interprets text and applies the move to the board.
func Play(b *engine.Board, text string) (Interpretation, error) {
	move, err := Interpret(b, text)
	if err != nil {
		return Interpretation{}, err
	}
	if err := b.Move(move.From, move.To, move.Promotion); err != nil {
		return Interpretation{}, err
	}
	return move, nil
}
