package tui

import (
	"fmt"
	"sync"
	"time"
)

const flickerInterval = 400 * time.Millisecond

// flicker redraws the board on its own goroutine while the destination
// prompt is open, alternately hiding the selected square. It only ever reads
// engine snapshots, so it can never observe a half-simulated move.
type flicker struct {
	stop chan struct{}
	done sync.WaitGroup
}

func (g *Game) startFlicker(src string) *flicker {
	f := &flicker{stop: make(chan struct{})}
	square := g.mustParse(src)
	f.done.Add(1)
	go func() {
		defer f.done.Done()
		ticker := time.NewTicker(flickerInterval)
		defer ticker.Stop()
		hide := false
		for {
			board := g.engine.Snapshot()
			target := &square
			if !hide {
				target = nil
			}
			fmt.Fprint(g.out, renderBoard(board, target))
			fmt.Fprint(g.out, "\nMove to ('x' cancels): ")
			select {
			case <-f.stop:
				return
			case <-ticker.C:
				hide = !hide
			}
		}
	}()
	return f
}

// halt stops the flicker loop and waits for it, so the caller owns the
// output stream again once halt returns.
func (f *flicker) halt() {
	close(f.stop)
	f.done.Wait()
}
