// Package trace reconstructs one shortest path after the two waves meet and
// paces its reveal.
//
// Two cursors start at the meeting pair and walk back to their sources by
// following strictly decreasing phase numbers within their own wave. When
// several neighbours carry the predecessor phase, the first one in the grid's
// fixed scan order wins.
package trace

import (
	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/wave"
)

// Tracer walks back from a meeting point to both sources.
type Tracer struct {
	cursors  [2]grid.Coord
	progress grid.Progress
	path     []grid.Coord
}

// New returns a Tracer whose cursors sit on the meeting pair.
func New(m wave.Meeting) *Tracer {
	return &Tracer{cursors: [2]grid.Coord{m.From, m.To}}
}

// Step converts each cursor cell that has fully risen to OnPath and moves the
// cursor to its predecessor. A cursor whose cell is still rising waits. It
// reports whether any cell was converted.
func (t *Tracer) Step(g *grid.Grid) bool {
	stepped := false
	for i, cur := range t.cursors {
		cell := g.Ref(cur)
		if cell.Kind != grid.Claimed || cell.Mode != grid.Regular || cell.Stage != grid.MaxRegularStage {
			continue
		}
		cell.Mode = grid.OnPath
		cell.Stage = 0
		t.path = append(t.path, cur)
		stepped = true

		if prev, ok := predecessor(g, cur, *cell); ok {
			t.cursors[i] = prev
		}
	}
	return stepped
}

// predecessor finds the first neighbour of c owned by the same wave with a
// phase exactly one lower.
func predecessor(g *grid.Grid, c grid.Coord, cell grid.Cell) (grid.Coord, bool) {
	for _, n := range g.Neighbors(c) {
		nc := g.At(n)
		if nc.OwnedBy(cell.Owner) && nc.Phase == cell.Phase-1 {
			return n, true
		}
	}
	return grid.Coord{}, false
}

// Reveal advances every OnPath cell below its cap by one stage. Drawing is
// done after the reveal has started and a tick passes with nothing to raise.
func (t *Tracer) Reveal(g *grid.Grid) {
	advanced := false
	g.Each(func(_ grid.Coord, c *grid.Cell) {
		if c.Kind == grid.Claimed && c.Mode == grid.OnPath && c.Stage < grid.MaxPathStage {
			c.Stage++
			advanced = true
			if t.progress == grid.NotStarted {
				t.progress = grid.InProgress
			}
		}
	})
	if t.progress == grid.InProgress && !advanced {
		t.progress = grid.Done
	}
}

// Progress reports the state of the reveal.
func (t *Tracer) Progress() grid.Progress { return t.progress }

// Done reports whether the whole path has been revealed.
func (t *Tracer) Done() bool { return t.progress == grid.Done }

// Path returns the path cells in the order they were converted.
func (t *Tracer) Path() []grid.Coord {
	out := make([]grid.Coord, len(t.path))
	copy(out, t.path)
	return out
}
