package worker

import (
	"bytes"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Replayer returns a ReplayFunc that plays each job as a new game set up
// from cfg. Every game gets its own output and log buffers so that workers
// never share a writer.
func Replayer(cfg *config.Config) ReplayFunc {
	return func(job Job) Result {
		var out, log bytes.Buffer
		jobCfg := *cfg
		jobCfg.OutputFile = &out
		jobCfg.LogFile = &log

		res := Result{Index: job.Index}
		g, err := game.New(&jobCfg)
		if err == nil {
			err = g.PlayAll(job.Moves...)
			res.Game = g
			res.Plies = g.Plies()
			res.FEN = g.Board().FEN()
			jobCfg.Logf(config.Summary, "%s", g.Summary())
		}
		res.Err = err
		res.Output = out.String()
		res.Log = log.String()
		return res
	}
}

// ReplayAll replays every game on the given number of workers and returns
// the results in input order. With stopOnError the first failed game stops
// the pool; games not started by then are left out of the results.
func ReplayAll(cfg *config.Config, games [][]string, workers int, stopOnError bool) []Result {
	pool := NewPool(Replayer(cfg), WithWorkers(workers))
	pool.Start()

	go func() {
		for i, moves := range games {
			pool.Submit(Job{Index: i, Moves: moves})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(games))
	for r := range pool.Results() {
		if r.Err != nil && stopOnError {
			pool.Stop()
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
