// internal/app/run.go
package app

import (
	"context"
	"io"
	"sync"

	"fzrank/internal/engine"
	"fzrank/internal/pool"
	"fzrank/internal/rank"
	"fzrank/internal/scan"
)

// runPipeline scores every line of in against eng and returns the ranking.
//
// threads == 1 runs sequentially with a single process-wide scratch and no
// pool. Otherwise a worker pool scores lines concurrently; workers insert
// positive results into one shared, mutex-guarded list so the global rank
// is preserved, and the feed thread waits for quiescence before the
// ranking is read.
func runPipeline(ctx context.Context, eng engine.Engine, threads, minScore int, in io.Reader) (*rank.List, error) {
	list := rank.New()

	if threads == 1 {
		scratch := eng.NewScratch()
		err := scan.EachLine(in, func(line string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s := scratch.Score(line); s >= minScore {
				list.Insert(line, s)
			}
			return nil
		})
		return list, err
	}

	var mu sync.Mutex
	score := func(text string, scratch engine.Scratch) {
		if s := scratch.Score(text); s >= minScore {
			mu.Lock()
			list.Insert(text, s)
			mu.Unlock()
		}
	}

	p := pool.New(threads, eng.NewScratch)
	err := scan.EachLine(in, func(line string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return p.Submit(score, line)
	})
	if err != nil {
		// Discard undone work; whatever already scored stays ranked.
		p.Close()
		return list, err
	}

	p.Wait()
	p.Close()
	return list, nil
}
