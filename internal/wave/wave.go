// Package wave implements the two breadth-first agents that flood the maze
// from opposite corners, and the stuck sweep applied to a wave that can no
// longer spread.
package wave

import "github.com/CodexForgeBR/can-exit/internal/grid"

// Meeting is a pair of adjacent cells owned by different waves. From belongs
// to the wave that detected the contact.
type Meeting struct {
	From grid.Coord
	To   grid.Coord
}

// Wave is one propagating search agent. It holds coordinates only; every
// cell lookup goes through the grid passed to its methods.
type Wave struct {
	id            grid.WaveID
	frontier      []grid.Coord
	currentPhase  int
	madeProgress  bool
	foundPath     bool
	stuck         bool
	stuckProgress grid.Progress
	claimed       int
}

// New claims source for id with phase 1 and returns the wave anchored there.
func New(g *grid.Grid, id grid.WaveID, source grid.Coord) *Wave {
	g.Set(source, grid.ClaimedCell(id, 1))
	return &Wave{
		id:           id,
		frontier:     []grid.Coord{source},
		currentPhase: 2,
		claimed:      1,
	}
}

// ID returns the wave identifier.
func (w *Wave) ID() grid.WaveID { return w.id }

// Frontier returns a copy of the cells claimed in the last successful step.
func (w *Wave) Frontier() []grid.Coord {
	out := make([]grid.Coord, len(w.frontier))
	copy(out, w.frontier)
	return out
}

// CurrentPhase is the phase the next claim will receive. During the stuck
// sweep it counts down through the layers already claimed.
func (w *Wave) CurrentPhase() int { return w.currentPhase }

// MadeProgress reports whether the last Expand claimed at least one cell.
func (w *Wave) MadeProgress() bool { return w.madeProgress }

// FoundPath reports whether the wave ever touched the other wave.
func (w *Wave) FoundPath() bool { return w.foundPath }

// Claimed returns the number of cells this wave owns.
func (w *Wave) Claimed() int { return w.claimed }

// Expand performs one BFS layer. Open neighbours of the frontier are claimed
// in left, right, down, up order. Contact with the other wave sets FoundPath;
// the first contact of this pass is returned with met=true.
func (w *Wave) Expand(g *grid.Grid) (meet Meeting, met bool) {
	w.madeProgress = false
	var next []grid.Coord
	other := w.id.Other()

	for _, cur := range w.frontier {
		for _, n := range g.Neighbors(cur) {
			cell := g.Ref(n)
			switch cell.Kind {
			case grid.Open:
				*cell = grid.ClaimedCell(w.id, w.currentPhase)
				w.madeProgress = true
				w.claimed++
				next = append(next, n)
			case grid.Claimed:
				if cell.Owner != other {
					continue
				}
				w.foundPath = true
				if !met {
					meet, met = Meeting{From: cur, To: n}, true
				}
			case grid.Wall:
			}
		}
	}

	if w.madeProgress {
		w.frontier = next
		w.currentPhase++
	}
	return meet, met
}
