package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Render draws the board as text from the given colour's side. White pieces
// are upper case, Black lower case and empty squares '.'. The view from
// Black's side lists rank 1 first; files always run a to h.
func (b *Board) Render(perspective chess.Colour) string {
	var sb strings.Builder

	ranks := make([]int, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		ranks = append(ranks, rank)
	}
	if perspective == chess.Black {
		for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
			ranks[i], ranks[j] = ranks[j], ranks[i]
		}
	}

	for _, rank := range ranks {
		sb.WriteString(chess.RankName(rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			if p := b.cells[rank][file]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(" ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteString(chess.FileName(file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// String renders the board from White's side.
func (b *Board) String() string {
	return b.Render(chess.White)
}
