// chess plays moves in algebraic notation against a rules-checked board.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

// Commands accepted in place of a move when reading stdin.
const (
	cmdBoard = "board"
	cmdFEN   = "fen"
	cmdQuit  = "quit"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var err error
	switch {
	case *gamesFile != "":
		err = runGamesFile(cfg, *gamesFile, batchOptions{
			workers:     numWorkers(),
			dedupe:      *suppressDuplicates,
			stopOnError: *stopOnError,
		})
	case *moveList != "":
		err = runMoves(cfg, strings.Fields(*moveList))
	default:
		err = runInteractive(cfg, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile redirects boards, FEN strings and finished games to the -o file.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// numWorkers resolves the -workers flag.
func numWorkers() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}

// runMoves plays a fixed move list and prints the finished game. The first
// rejected move ends the run with an error.
func runMoves(cfg *config.Config, moves []string) error {
	g, err := game.New(cfg, game.WithMoves(moves...))
	if err != nil {
		return err
	}
	if !cfg.Output.JSONFormat {
		printBoard(cfg, g)
	}
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	cfg.Logf(config.Summary, "%s", g.Summary())
	return nil
}

// runInteractive reads whitespace separated moves and commands from in until
// it is exhausted or "quit" is read. Rejected moves are reported and skipped.
func runInteractive(cfg *config.Config, in io.Reader) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

loop:
	for scanner.Scan() {
		switch token := scanner.Text(); token {
		case cmdQuit:
			break loop
		case cmdBoard:
			printBoard(cfg, g)
		case cmdFEN:
			fmt.Fprintln(cfg.OutputFile, g.Board().FEN())
		default:
			if _, err := g.Play(token); err != nil {
				cfg.Logf(config.Summary, "%v", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading moves")
	}

	cfg.Logf(config.Summary, "%s", g.Summary())
	return nil
}

// batchOptions controls how -games replays its input.
type batchOptions struct {
	workers     int
	dedupe      bool // Report games ending on an already seen position instead of printing them
	stopOnError bool // Skip games not yet started once one fails
}

func runGamesFile(cfg *config.Config, path string, opts batchOptions) error {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return err
	}
	defer file.Close()
	return runBatch(cfg, file, opts)
}

// runBatch replays one game per input line and prints each game's final FEN,
// or one JSON object per game, in input order. Blank lines and lines starting
// with '#' are skipped.
func runBatch(cfg *config.Config, in io.Reader, opts batchOptions) error {
	var games [][]string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		games = append(games, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading games")
	}

	detector := hashing.NewDuplicateDetector(false)
	jsonWriter := output.NewJSONWriterSingle(cfg.OutputFile, cfg)

	results := worker.ReplayAll(cfg, games, opts.workers, opts.stopOnError)
	failed := 0
	for _, r := range results {
		fmt.Fprint(cfg.OutputFile, r.Output)
		if cfg.LogFile != nil {
			fmt.Fprint(cfg.LogFile, r.Log)
		}
		if r.Err != nil {
			failed++
			cfg.Logf(config.Summary, "game %d: %v", r.Index+1, r.Err)
			continue
		}
		if opts.dedupe {
			sig := hashing.Signature(r.Index, r.Game.Board(), r.Plies)
			if first, dup := detector.CheckAndAdd(sig); dup {
				cfg.Logf(config.Summary, "game %d: same final position as game %d", r.Index+1, first+1)
				continue
			}
		}
		if cfg.Output.JSONFormat {
			if err := jsonWriter.WriteGame(r.Game); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(cfg.OutputFile, "%d: %s\n", r.Index+1, r.FEN)
	}
	if err := jsonWriter.Close(); err != nil {
		return err
	}

	cfg.Logf(config.Summary, "%d games, %d rejected, %d duplicates",
		len(games), failed, detector.DuplicateCount())
	if skipped := len(games) - len(results); skipped > 0 {
		cfg.Logf(config.Summary, "%d games skipped after the first failure", skipped)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d games contain a rejected move", failed, len(games))
	}
	return nil
}

func printBoard(cfg *config.Config, g *game.Game) {
	fmt.Fprint(cfg.OutputFile, g.Board().Render(cfg.Output.Perspective))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess moves in algebraic notation (e4, Nxf3, O-O, e8=Q).\n")
	fmt.Fprintf(os.Stderr, "Without -moves or -games, moves are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands (stdin):\n")
	fmt.Fprintf(os.Stderr, "  %-6s print the board\n", cmdBoard)
	fmt.Fprintf(os.Stderr, "  %-6s print the FEN string\n", cmdFEN)
	fmt.Fprintf(os.Stderr, "  %-6s stop reading\n", cmdQuit)
}
