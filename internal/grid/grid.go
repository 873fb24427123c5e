// Package grid holds the maze surface searched by the two waves.
//
// A Grid is a fixed-size, row-major array of Cell values. The start cell is
// (0,0) and the goal cell is (Width-1, Height-1). Grids are built from a
// caller's [][]int (0 = open, anything else = wall) and always deep-copy
// their input, so the caller's slice is never observed as modified.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidMaze is returned for empty or ragged input, or when the start or
// goal cell is a wall.
var ErrInvalidMaze = errors.New("invalid maze")

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Neighborhood is the fixed scan order used by expansion and back-trace:
// left, right, down, up.
var Neighborhood = [4]Coord{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Grid is the maze surface.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// Validate checks rows without building a Grid. It returns an error wrapping
// ErrInvalidMaze when the rows cannot be searched.
func Validate(rows [][]int) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("%w: maze has zero height or width", ErrInvalidMaze)
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidMaze, y, len(row), w)
		}
	}
	if rows[0][0] != 0 {
		return fmt.Errorf("%w: start cell (0,0) is a wall", ErrInvalidMaze)
	}
	h := len(rows)
	if rows[h-1][w-1] != 0 {
		return fmt.Errorf("%w: goal cell (%d,%d) is a wall", ErrInvalidMaze, w-1, h-1)
	}
	return nil
}

// New validates rows and returns a private Grid built from them.
func New(rows [][]int) (*Grid, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{width: w, height: h, cells: make([]Cell, w*h)}
	for y, row := range rows {
		for x, v := range row {
			if v == 0 {
				g.cells[y*w+x] = OpenCell()
			} else {
				g.cells[y*w+x] = WallCell()
			}
		}
	}
	return g, nil
}

// IsSingleCell reports the degenerate 1×1 maze.
func (g *Grid) IsSingleCell() bool { return g.width == 1 && g.height == 1 }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the top-left source.
func (g *Grid) Start() Coord { return Coord{0, 0} }

// Goal returns the bottom-right source.
func (g *Grid) Goal() Coord { return Coord{g.width - 1, g.height - 1} }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the cell at c. c must be in bounds.
func (g *Grid) At(c Coord) Cell { return g.cells[c.Y*g.width+c.X] }

// Ref returns a pointer to the cell at c for in-place updates.
func (g *Grid) Ref(c Coord) *Cell { return &g.cells[c.Y*g.width+c.X] }

// Set replaces the cell at c.
func (g *Grid) Set(c Coord, cell Cell) { g.cells[c.Y*g.width+c.X] = cell }

// Neighbors returns the in-bounds neighbours of c in Neighborhood order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Neighborhood))
	for _, d := range Neighborhood {
		n := Coord{c.X + d.X, c.Y + d.Y}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, cell *Cell)) {
	for i := range g.cells {
		fn(Coord{i % g.width, i / g.width}, &g.cells[i])
	}
}

// Rows returns a deep copy of the cells as a [row][column] slice.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = make([]Cell, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Rise advances every Regular cell below its cap by one stage and reports
// whether any cell moved.
func (g *Grid) Rise() bool {
	raised := false
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind == Claimed && c.Mode == Regular && c.Stage < MaxRegularStage {
			c.Stage++
			raised = true
		}
	}
	return raised
}
