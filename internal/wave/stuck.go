package wave

import "github.com/CodexForgeBR/can-exit/internal/grid"

// Risen reports whether every Regular cell owned by the wave has finished
// its rise timer.
func (w *Wave) Risen(g *grid.Grid) bool {
	risen := true
	g.Each(func(_ grid.Coord, c *grid.Cell) {
		if c.OwnedBy(w.id) && c.Mode == grid.Regular && c.Stage != grid.MaxRegularStage {
			risen = false
		}
	})
	return risen
}

// Exhausted reports whether the wave can no longer spread. With
// waitForRise the wave's Regular cells must also have fully risen.
func (w *Wave) Exhausted(g *grid.Grid, waitForRise bool) bool {
	if w.madeProgress {
		return false
	}
	return !waitForRise || w.Risen(g)
}

// MarkStuck switches the wave into stuck mode. It returns true only on the
// first call.
func (w *Wave) MarkStuck() bool {
	if w.stuck {
		return false
	}
	w.stuck = true
	return true
}

// Stuck reports whether MarkStuck has been called.
func (w *Wave) Stuck() bool { return w.stuck }

// StuckProgress reports how far the stuck sweep has gone.
func (w *Wave) StuckProgress() grid.Progress { return w.stuckProgress }

// AdvanceStuck runs one tick of the stuck sweep: Regular cells at the current
// phase shell become Stuck at stage 0, every Stuck cell below its cap rises
// by one, and the shell moves one phase towards the source. The sweep is
// Done after the first tick in which no stuck cell rose.
func (w *Wave) AdvanceStuck(g *grid.Grid) {
	if !w.stuck {
		return
	}

	advanced := false
	g.Each(func(_ grid.Coord, c *grid.Cell) {
		if !c.OwnedBy(w.id) {
			return
		}
		if c.Mode == grid.Regular && c.Phase == w.currentPhase {
			c.Mode = grid.Stuck
			c.Stage = 0
		}
		if c.Mode == grid.Stuck && c.Stage < grid.MaxStuckStage {
			c.Stage++
			advanced = true
			if w.stuckProgress == grid.NotStarted {
				w.stuckProgress = grid.InProgress
			}
		}
	})

	if w.currentPhase > 0 {
		w.currentPhase--
	}
	if w.stuckProgress == grid.InProgress && !advanced {
		w.stuckProgress = grid.Done
	}
}
