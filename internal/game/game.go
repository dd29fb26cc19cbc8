// Package game tracks a single game session: a board, the moves accepted
// on it so far, and the diagnostics written while they are played.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Game is one game session. It is not safe for concurrent use.
type Game struct {
	ID uuid.UUID

	board   *engine.Board
	start   string
	records []Record
	cfg     *config.Config
}

// Record is one accepted move.
type Record struct {
	Text       string // as written by the player
	Move       notation.Interpretation
	Colour     chess.Colour
	MoveNumber int
	Piece      chess.PieceType // the piece that moved, Pawn for promotions
	Capture    bool
	FEN        string // position after the move
}

type options struct {
	id    uuid.UUID
	board *engine.Board
	moves []string
}

// Option customises New.
type Option func(*options)

// WithID fixes the game id instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// WithBoard starts the game from an existing board instead of the
// configured starting position. The board is copied.
func WithBoard(b *engine.Board) Option {
	return func(o *options) { o.board = b }
}

// WithMoves replays moves in algebraic notation after the board is set up.
func WithMoves(moves ...string) Option {
	return func(o *options) { o.moves = append(o.moves, moves...) }
}

// New starts a game. A nil cfg uses config.NewConfig().
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	g := &Game{ID: o.id, cfg: cfg}
	if o.board != nil {
		g.board = o.board.Copy()
	} else {
		board, err := cfg.Board.NewBoard()
		if err != nil {
			return nil, &errors.GameError{Err: err, GameID: g.ID.String()}
		}
		g.board = board
	}

	g.start = g.board.FEN()
	cfg.Logf(config.Commentary, "game %s: start %s", g.ID, g.start)
	if err := g.PlayAll(o.moves...); err != nil {
		return nil, err
	}
	return g, nil
}

// Play interprets text as a move of the side to move and applies it.
// A rejected move leaves the game unchanged and is returned as a
// *errors.GameError carrying the ply it was tried at.
func (g *Game) Play(text string) (notation.Interpretation, error) {
	ply := len(g.records) + 1
	mover, number := g.board.ToMove(), g.board.MoveNumber()
	taken := len(g.board.Captured(mover.Opposite()))

	move, err := notation.Play(g.board, text)
	if err != nil {
		g.cfg.Logf(config.Commentary, "game %s: ply %d: %s rejected: %v", g.ID, ply, text, err)
		return notation.Interpretation{}, &errors.GameError{
			Err:      err,
			GameID:   g.ID.String(),
			PlyNum:   ply,
			MoveText: text,
		}
	}
	piece := chess.Pawn
	if move.Promotion == chess.NoPiece {
		p, _ := g.board.At(move.To)
		piece = p.Type
	}
	g.records = append(g.records, Record{
		Text:       text,
		Move:       move,
		Colour:     mover,
		MoveNumber: number,
		Piece:      piece,
		Capture:    len(g.board.Captured(mover.Opposite())) > taken,
		FEN:        g.board.FEN(),
	})
	g.cfg.Logf(config.Commentary, "game %s: ply %d: %s (%s)", g.ID, ply, text, move)
	g.echo()
	return move, nil
}

// PlayAll plays moves in order and stops at the first rejected one.
func (g *Game) PlayAll(moves ...string) error {
	for _, m := range moves {
		if _, err := g.Play(m); err != nil {
			return err
		}
	}
	return nil
}

// echo prints the position after a move if configured to.
func (g *Game) echo() {
	out := g.cfg.OutputFile
	if out == nil {
		return
	}
	if g.cfg.Output.EchoBoard {
		fmt.Fprint(out, g.board.Render(g.cfg.Output.Perspective))
	}
	if g.cfg.Output.EchoFEN {
		fmt.Fprintln(out, g.board.FEN())
	}
}

// Board returns the game's board. Moves should be made through Play so
// that the history stays in step.
func (g *Game) Board() *engine.Board {
	return g.board
}

// InitialFEN is the position the game started from.
func (g *Game) InitialFEN() string {
	return g.start
}

// History returns the accepted moves as they were written.
func (g *Game) History() []string {
	var texts []string
	for _, r := range g.records {
		texts = append(texts, r.Text)
	}
	return texts
}

// Records returns the accepted moves with their resolved squares.
func (g *Game) Records() []Record {
	return append([]Record(nil), g.records...)
}

// Plies returns the number of accepted moves.
func (g *Game) Plies() int {
	return len(g.records)
}

// Summary is a one-line description of the game so far.
func (g *Game) Summary() string {
	return fmt.Sprintf("game %s: %d plies, %s to move, %s",
		g.ID, len(g.records), g.board.ToMove(), g.board.FEN())
}
