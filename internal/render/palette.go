// Package render draws session snapshots as plain text, as a lipgloss styled
// terminal frame, and as a PNG image.
package render

import (
	"fmt"
	"image/color"

	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/session"
)

var (
	floorColor  = color.RGBA{0x26, 0x26, 0x26, 0xff}
	wallColor   = color.RGBA{0x4d, 0x7c, 0x2f, 0xff}
	waterColor  = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	pathColor   = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	markerColor = color.RGBA{0xf8, 0xfa, 0xfc, 0xff}

	stuckColors = map[grid.WaveID]color.RGBA{
		grid.First:  {0xef, 0x44, 0x44, 0xff},
		grid.Second: {0x22, 0xc5, 0x5e, 0xff},
	}
)

// cellColor shades a cell by its reveal stage. Regular water is hidden
// before the search starts.
func cellColor(c grid.Cell, st session.Status) color.RGBA {
	switch c.Kind {
	case grid.Wall:
		return wallColor
	case grid.Open:
		return floorColor
	}

	switch c.Mode {
	case grid.Stuck:
		return blend(waterColor, stuckColors[c.Owner], c.Stage, grid.MaxStuckStage)
	case grid.OnPath:
		return blend(waterColor, pathColor, c.Stage, grid.MaxPathStage)
	default:
		if st == session.StatusWaitingForInput {
			return floorColor
		}
		return blend(floorColor, waterColor, c.Stage, grid.MaxRegularStage)
	}
}

// blend mixes from and to in proportion stage/limit.
func blend(from, to color.RGBA, stage, limit int) color.RGBA {
	if stage < 0 {
		stage = 0
	}
	if stage > limit {
		stage = limit
	}
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*(limit-stage) + int(b)*stage) / limit)
	}
	return color.RGBA{mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B), 0xff}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// showMarkers reports whether the start and goal markers are drawn.
func showMarkers(st session.Status) bool {
	return st == session.StatusWaitingForInput || st == session.StatusSpecial
}
