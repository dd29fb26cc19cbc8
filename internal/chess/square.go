package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a zero-based board coordinate. Rank 0 is rank "1", file 0 is file "a".
type Square struct {
	Rank int
	File int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away. The result may be off the board.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String returns the human label of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return FileName(s.File) + RankName(s.Rank)
}

// FileName converts a file index to its letter.
func FileName(file int) string {
	return string(rune(FileBase + file))
}

// RankName converts a rank index to its digit.
func RankName(rank int) string {
	return string(rune(RankBase + rank))
}

// SquareFromName converts a label such as "e4" to a square. Files are lower
// case only, as in FEN and algebraic notation. The input is assumed to be well
// formed: it panics if name is shorter than two bytes and returns an off-board
// square for other bad labels. Use ParseSquare for untrusted input.
func SquareFromName(name string) Square {
	return Square{
		Rank: int(name[1]) - RankBase,
		File: int(name[0]) - FileBase,
	}
}

// ParseSquare converts a label such as "e4" to a square, rejecting malformed labels.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	sq := SquareFromName(name)
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return sq, nil
}
