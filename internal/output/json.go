package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	InitialFEN string     `json:"initialFEN"`
	Movetext   string     `json:"movetext,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
	PlyCount   int        `json:"plyCount"`
	ToMove     string     `json:"toMove"`
	FinalFEN   string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Capture    bool   `json:"capture,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game in JSON format.
func OutputGameJSON(g *game.Game, w io.Writer, includeFEN bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g, includeFEN))
}

// GameToJSON converts a game to JSON format. includeFEN adds the position
// after every move.
func GameToJSON(g *game.Game, includeFEN bool) *JSONGame {
	jg := &JSONGame{
		ID:         g.ID.String(),
		InitialFEN: g.InitialFEN(),
		Movetext:   Movetext(g),
		PlyCount:   g.Plies(),
		ToMove:     colorName(g.Board().ToMove()),
		FinalFEN:   g.Board().FEN(),
	}

	for _, r := range g.Records() {
		jm := JSONMove{
			Color:   colorName(r.Colour),
			SAN:     r.Text,
			UCI:     r.Move.String(),
			From:    r.Move.From.String(),
			To:      r.Move.To.String(),
			Piece:   pieceTypeName(r.Piece),
			Capture: r.Capture,
		}
		if r.Colour == chess.White {
			jm.MoveNumber = r.MoveNumber
		}
		if r.Move.Promotion != chess.NoPiece {
			jm.Promotion = pieceTypeName(r.Move.Promotion)
		}
		if includeFEN {
			jm.FEN = r.FEN
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.PieceType) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
