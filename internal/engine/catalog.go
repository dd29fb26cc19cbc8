package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// offset is a relative (rank, file) displacement.
type offset struct {
	dr, df int
}

// maxRay is the longest distance a ray piece can travel on the board.
const maxRay = chess.BoardSize - 1

var (
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}, {0, -2}, {0, 2}}
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	// Pawn offsets are for White; the rank component is scaled by direction.
	pawnOffsets = []offset{{1, 0}, {2, 0}, {1, 1}, {1, -1}}

	straightDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	rookOffsets   = rays(straightDirs)
	bishopOffsets = rays(diagonalDirs)
	queenOffsets  = append(rays(straightDirs), rays(diagonalDirs)...)
)

// rays expands unit directions out to board-edge distance.
func rays(dirs []offset) []offset {
	out := make([]offset, 0, len(dirs)*maxRay)
	for _, d := range dirs {
		for n := 1; n <= maxRay; n++ {
			out = append(out, offset{d.dr * n, d.df * n})
		}
	}
	return out
}

// movementOffsets returns the relative reachability pattern of a piece.
func movementOffsets(p *Piece) []offset {
	switch p.Type {
	case chess.King:
		return kingOffsets
	case chess.Queen:
		return queenOffsets
	case chess.Rook:
		return rookOffsets
	case chess.Bishop:
		return bishopOffsets
	case chess.Knight:
		return knightOffsets
	case chess.Pawn:
		dir := p.Direction()
		out := make([]offset, len(pawnOffsets))
		for i, o := range pawnOffsets {
			out[i] = offset{o.dr * dir, o.df}
		}
		return out
	}
	return nil
}

// Candidates returns the squares the piece could reach on an empty board,
// ignoring blocking pieces and check.
func Candidates(p *Piece) []chess.Square {
	offsets := movementOffsets(p)
	out := make([]chess.Square, 0, len(offsets))
	for _, o := range offsets {
		sq := p.Position.Offset(o.dr, o.df)
		if sq.Valid() {
			out = append(out, sq)
		}
	}
	return out
}

// isCandidate reports whether target is in the piece's candidate set.
func isCandidate(p *Piece, target chess.Square) bool {
	dr := target.Rank - p.Position.Rank
	df := target.File - p.Position.File
	if !target.Valid() {
		return false
	}
	for _, o := range movementOffsets(p) {
		if o.dr == dr && o.df == df {
			return true
		}
	}
	return false
}
