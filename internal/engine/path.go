package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
// from and to must lie on a common rank, file or diagonal.
func isPathClear(b *Board, from, to chess.Square) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	sq := from.Offset(rankDir, fileDir)
	for sq != to {
		if b.cell(sq) != nil {
			return false
		}
		sq = sq.Offset(rankDir, fileDir)
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
