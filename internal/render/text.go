package render

import (
	"fmt"
	"strings"

	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/session"
)

// Glyph is the plain-text symbol for a cell.
func Glyph(c grid.Cell) byte {
	switch c.Kind {
	case grid.Wall:
		return '#'
	case grid.Open:
		return '.'
	}
	switch c.Mode {
	case grid.Stuck:
		return 'x'
	case grid.OnPath:
		return '*'
	}
	if c.Owner == grid.Second {
		return '2'
	}
	return '1'
}

// Grid renders the cells one row per line.
func Grid(snap session.Snapshot) string {
	var b strings.Builder
	for y, row := range snap.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteByte(Glyph(c))
		}
	}
	return b.String()
}

// StatusLine summarises the frame in one line.
func StatusLine(snap session.Snapshot) string {
	return fmt.Sprintf("tick %d | %s | speed %d | %s",
		snap.Tick, snap.Status, snap.Speed, snap.Status.Conclusion())
}

// Text renders a complete plain-text frame: the grid followed by the status
// line. Snapshots without cells show their message instead.
func Text(snap session.Snapshot) string {
	var b strings.Builder
	if len(snap.Cells) == 0 {
		for _, line := range snap.Message {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString(Grid(snap))
		b.WriteByte('\n')
	}
	b.WriteString(StatusLine(snap))
	if snap.Status.Terminal() && len(snap.Path) > 0 {
		fmt.Fprintf(&b, "\npath: %d cells, %d steps", len(snap.Path), snap.PathSteps())
	}
	return b.String()
}
