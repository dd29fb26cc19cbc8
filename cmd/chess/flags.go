// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Starting position
	fenString = flag.String("fen", "", "Start from this FEN position")
	preset    = flag.String("preset", "default", "Start from a named position: default, empty")

	// Moves
	moveList  = flag.String("moves", "", "Space separated moves to play instead of reading stdin")
	gamesFile = flag.String("games", "", "File with one game per line, replayed in parallel")

	// Performance options
	workers     = flag.Int("workers", 0, "Number of worker threads for -games (0 = auto-detect based on CPU cores)")
	stopOnError = flag.Bool("stop-on-error", false, "With -games, stop at the first game with a rejected move")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	blackView  = flag.Bool("black", false, "Draw the board from Black's side")
	echoBoard  = flag.Bool("board", false, "Print the board after every move")
	echoFEN    = flag.Bool("echofen", false, "Print the FEN string after every move")
	jsonOut    = flag.Bool("J", false, "Output finished games in JSON format")
	lineLen    = flag.Int("w", 80, "Maximum movetext line length")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "With -games, drop games whose final position was already reached")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0=silent, 1=summary, 2=every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Board.Preset = *preset
	cfg.Board.FEN = *fenString

	if *blackView {
		cfg.Output.Perspective = chess.Black
	}
	cfg.Output.EchoBoard = *echoBoard
	cfg.Output.EchoFEN = *echoFEN
	cfg.Output.JSONFormat = *jsonOut
	if *lineLen > 0 {
		cfg.Output.MaxLineLength = uint(*lineLen)
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}
