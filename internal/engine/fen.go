package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Files of the king and rooks on which FEN castling rights are recorded.
const (
	kingFile      = 4
	kingsideFile  = chess.BoardSize - 1
	queensideFile = 0
)

// NewBoardFromFEN creates a fully validated board from a FEN string.
// The halfmove clock is accepted but not tracked.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	state := Gamestate{Grid: EmptyGrid(), ToMove: chess.White}
	if err := parsePiecePositions(state.Grid, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(&state, parts); err != nil {
		return nil, err
	}

	board := &Board{}
	if err := board.Populate(state, true); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseMoveNumber(board, parts); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field into grid.
func parsePiecePositions(grid [][]*Piece, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "expected %d ranks in %q", chess.BoardSize, positions)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
			default:
				pieceType := chess.PieceTypeFromLetter(byte(c))
				if pieceType == chess.NoPiece {
					return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
				}
				if file >= chess.BoardSize {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %s overflows", chess.RankName(rank))
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				p := NewPiece(colour, pieceType)
				startRank := chess.HomeRank(colour) + chess.ColourOffset(colour)
				if pieceType == chess.Pawn && rank != startRank {
					p.HasMoved = true
				}
				grid[rank][file] = p
				file++
			}
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %s has %d files", chess.RankName(rank), file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *Gamestate, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.ToMove = chess.White
	case "b":
		state.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseCastlingRights maps the castling field onto has-moved flags. Kings and
// rooks keep their unmoved status only when a right names them.
func parseCastlingRights(board *Board, parts []string) error {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	unmoved := make(map[chess.Square]bool)
	if rights != "-" {
		for _, c := range rights {
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			home := chess.HomeRank(colour)
			switch unicode.ToUpper(c) {
			case 'K':
				unmoved[chess.Square{Rank: home, File: kingsideFile}] = true
			case 'Q':
				unmoved[chess.Square{Rank: home, File: queensideFile}] = true
			default:
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid castling rights: %s", rights)
			}
			unmoved[chess.Square{Rank: home, File: kingFile}] = true
		}
	}

	for colour := range board.living {
		for _, p := range board.living[colour] {
			if p.Type == chess.King || p.Type == chess.Rook {
				p.HasMoved = !unmoved[p.Position]
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field and marks the
// pawn standing in front of it. The square must be the one a pawn of the side
// that just moved skipped over with a double advance: rank 3 for White, rank
// 6 for Black, with it and the pawn's start square both empty.
func parseEnPassant(board *Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid en passant square: %v", err)
	}

	colour := board.toMove.Opposite()
	offset := chess.ColourOffset(colour)
	if target.Rank != chess.HomeRank(colour)+2*offset {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant square %s not on %s's third rank", target, colour)
	}
	if board.cell(target) != nil || board.cell(target.Offset(-offset, 0)) != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant square %s or the square behind it is occupied", target)
	}
	pawn := board.cell(target.Offset(offset, 0))
	if pawn == nil || pawn.Type != chess.Pawn || pawn.Colour != colour {
		return errors.Wrapf(errors.ErrInvalidFEN, "no pawn behind en passant square %s", target)
	}
	pawn.EnPassant = true
	board.enPassant[colour] = enPassantRecord{pawn: pawn, square: pawn.Position}
	return nil
}

// parseMoveNumber parses the fullmove number. The halfmove clock is skipped.
func parseMoveNumber(board *Board, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid move number: %s", parts[5])
	}
	board.moveNumber = n
	return nil
}

// FEN converts the board to a FEN string. The halfmove clock is always 0.
func (b *Board) FEN() string {
	var sb strings.Builder

	b.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if b.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	b.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	b.writeEnPassant(&sb)
	fmt.Fprintf(&sb, " 0 %d", b.moveNumber)

	return sb.String()
}

// Placement returns only the piece placement field of the FEN string.
func (b *Board) Placement() string {
	var sb strings.Builder
	b.writePiecePositions(&sb)
	return sb.String()
}

func (b *Board) writePiecePositions(sb *strings.Builder) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := b.cells[rank][file]
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func (b *Board) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		if !b.unmoved(chess.Square{Rank: home, File: kingFile}, chess.King, colour) {
			continue
		}
		sides := []struct {
			file   int
			letter byte
		}{{kingsideFile, 'K'}, {queensideFile, 'Q'}}
		for _, side := range sides {
			if !b.unmoved(chess.Square{Rank: home, File: side.file}, chess.Rook, colour) {
				continue
			}
			letter := side.letter
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// unmoved reports whether sq holds an unmoved piece of the given kind.
func (b *Board) unmoved(sq chess.Square, pieceType chess.PieceType, colour chess.Colour) bool {
	p := b.cell(sq)
	return p != nil && p.Type == pieceType && p.Colour == colour && !p.HasMoved
}

func (b *Board) writeEnPassant(sb *strings.Builder) {
	colour := b.toMove.Opposite()
	rec := b.enPassant[colour]
	if rec.pawn == nil {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(rec.square.Offset(-chess.ColourOffset(colour), 0).String())
}
