package session

import (
	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/wave"
)

// CheckReachable reports whether the goal can be reached from the start. It
// runs both waves without reveal timers and stops at the first contact or as
// soon as either wave stops spreading. Invalid mazes are unreachable.
func CheckReachable(rows [][]int) bool {
	g, err := grid.New(rows)
	if err != nil {
		return false
	}
	if g.IsSingleCell() {
		return true
	}

	w1 := wave.New(g, grid.First, g.Start())
	w2 := wave.New(g, grid.Second, g.Goal())
	for {
		w1.Expand(g)
		w2.Expand(g)
		if w1.FoundPath() || w2.FoundPath() {
			return true
		}
		if !w1.MadeProgress() || !w2.MadeProgress() {
			return false
		}
	}
}
