package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/can-exit/internal/grid"
)

func TestRisenWaitsForRegularCells(t *testing.T) {
	g := newGrid(t, [][]int{{0, 1, 0}})
	w := New(g, grid.First, g.Start())

	assert.False(t, w.Risen(g))
	for i := 0; i < grid.MaxRegularStage-1; i++ {
		g.Rise()
	}
	assert.False(t, w.Risen(g))
	g.Rise()
	assert.True(t, w.Risen(g))
}

func TestExhausted(t *testing.T) {
	g := newGrid(t, [][]int{{0, 1, 0}})
	w := New(g, grid.First, g.Start())
	w.Expand(g)

	assert.True(t, w.Exhausted(g, false), "immediate detection ignores the rise timer")
	assert.False(t, w.Exhausted(g, true))

	for i := 0; i < grid.MaxRegularStage; i++ {
		g.Rise()
	}
	assert.True(t, w.Exhausted(g, true))
}

func TestExhaustedFalseWhileSpreading(t *testing.T) {
	g := newGrid(t, [][]int{{0, 0, 0}})
	w := New(g, grid.First, g.Start())
	w.Expand(g)
	for i := 0; i < grid.MaxRegularStage; i++ {
		g.Rise()
	}
	assert.False(t, w.Exhausted(g, true))
	assert.False(t, w.Exhausted(g, false))
}

func TestMarkStuckOnce(t *testing.T) {
	g := newGrid(t, [][]int{{0, 1, 0}})
	w := New(g, grid.First, g.Start())

	assert.False(t, w.Stuck())
	assert.True(t, w.MarkStuck())
	assert.False(t, w.MarkStuck())
	assert.True(t, w.Stuck())
}

func TestAdvanceStuckNoopUntilMarked(t *testing.T) {
	g := newGrid(t, [][]int{{0, 1, 0}})
	w := New(g, grid.First, g.Start())

	w.AdvanceStuck(g)
	assert.Equal(t, grid.NotStarted, w.StuckProgress())
	assert.Equal(t, grid.Regular, g.At(g.Start()).Mode)
	assert.Equal(t, 2, w.CurrentPhase())
}

// A lone source: the sweep first visits the empty shell at phase 2, then
// converts the source at phase 1 and raises it to the stuck cap.
func TestAdvanceStuckSingleCell(t *testing.T) {
	g := newGrid(t, [][]int{{0, 1, 0}})
	w := New(g, grid.First, g.Start())
	w.Expand(g)
	require.True(t, w.MarkStuck())

	w.AdvanceStuck(g)
	assert.Equal(t, grid.NotStarted, w.StuckProgress())
	assert.Equal(t, 1, w.CurrentPhase())

	w.AdvanceStuck(g)
	assert.Equal(t, grid.InProgress, w.StuckProgress())
	src := g.At(g.Start())
	assert.Equal(t, grid.Stuck, src.Mode)
	assert.Equal(t, 1, src.Stage)

	ticks := 2
	for w.StuckProgress() != grid.Done {
		w.AdvanceStuck(g)
		ticks++
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, 14, ticks)
	assert.Equal(t, grid.MaxStuckStage, g.At(g.Start()).Stage)
	assert.Equal(t, 0, w.CurrentPhase())
}

// The sweep walks backwards through every phase shell the wave claimed.
func TestAdvanceStuckSweepsAllShells(t *testing.T) {
	g := newGrid(t, [][]int{
		{0, 0, 0, 1, 0},
	})
	w := New(g, grid.First, g.Start())
	for w.Expand(g); w.MadeProgress(); w.Expand(g) {
	}
	require.Equal(t, 4, w.CurrentPhase())
	require.True(t, w.MarkStuck())

	// First tick: empty shell at phase 4.
	w.AdvanceStuck(g)
	assert.Equal(t, grid.Regular, g.At(grid.Coord{X: 2}).Mode)

	// Second tick: the outermost cell turns.
	w.AdvanceStuck(g)
	assert.Equal(t, grid.Stuck, g.At(grid.Coord{X: 2}).Mode)
	assert.Equal(t, grid.Regular, g.At(grid.Coord{X: 1}).Mode)

	w.AdvanceStuck(g)
	assert.Equal(t, grid.Stuck, g.At(grid.Coord{X: 1}).Mode)
	assert.Equal(t, 2, g.At(grid.Coord{X: 2}).Stage)

	for i := 0; w.StuckProgress() != grid.Done; i++ {
		w.AdvanceStuck(g)
		require.Less(t, i, 100)
	}
	for x := 0; x < 3; x++ {
		c := g.At(grid.Coord{X: x})
		assert.Equal(t, grid.Stuck, c.Mode, "x=%d", x)
		assert.Equal(t, grid.MaxStuckStage, c.Stage, "x=%d", x)
	}
	// The other wave's source is untouched.
	assert.Equal(t, grid.Open, g.At(grid.Coord{X: 4}).Kind)
}
