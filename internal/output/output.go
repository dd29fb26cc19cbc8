// Package output formats finished games as movetext or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes the game's moves as numbered movetext followed by the
// final FEN on its own line.
func OutputGame(g *game.Game, cfg *config.Config) {
	w := cfg.OutputFile
	outputMoves(g, cfg, w)
	fmt.Fprintln(w, g.Board().FEN())
}

// Movetext returns the game's moves as a single numbered line,
// e.g. "1. e4 e5 2. Nf3".
func Movetext(g *game.Game) string {
	var sb strings.Builder
	ow := NewOutputWriter(&sb, int(^uint(0)>>1))
	writeMoves(g, ow)
	return sb.String()
}

func outputMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	writeMoves(g, ow)
	if ow.needsSpace {
		ow.NewLine()
	}
}

func writeMoves(g *game.Game, ow *OutputWriter) {
	for i, r := range g.Records() {
		switch {
		case r.Colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", r.MoveNumber))
		case i == 0:
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", r.MoveNumber))
		}
		ow.Write(r.Text)
	}
}
