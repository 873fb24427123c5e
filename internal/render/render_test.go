package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/session"
)

func newSession(t *testing.T, rows [][]int) *session.Session {
	t.Helper()
	s, err := session.New(rows, session.DefaultSpeed)
	require.NoError(t, err)
	return s
}

func finished(t *testing.T, rows [][]int) session.Snapshot {
	t.Helper()
	snap, err := newSession(t, rows).Run(0)
	require.NoError(t, err)
	return snap
}

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

func TestGlyph(t *testing.T) {
	stuck := grid.ClaimedCell(grid.First, 1)
	stuck.Mode = grid.Stuck
	path := grid.ClaimedCell(grid.Second, 1)
	path.Mode = grid.OnPath

	assert.Equal(t, byte('#'), Glyph(grid.WallCell()))
	assert.Equal(t, byte('.'), Glyph(grid.OpenCell()))
	assert.Equal(t, byte('1'), Glyph(grid.ClaimedCell(grid.First, 3)))
	assert.Equal(t, byte('2'), Glyph(grid.ClaimedCell(grid.Second, 3)))
	assert.Equal(t, byte('x'), Glyph(stuck))
	assert.Equal(t, byte('*'), Glyph(path))
}

func TestTextWaiting(t *testing.T) {
	snap := newSession(t, [][]int{{0, 0}, {1, 0}}).Snapshot()
	assert.Equal(t, "1.\n#2\ntick 0 | waiting_for_input | speed 25 | UNKNOWN", Text(snap))
}

func TestTextReachable(t *testing.T) {
	snap := finished(t, [][]int{{0, 0}, {1, 0}})
	out := Text(snap)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "**", lines[0])
	assert.Equal(t, "#*", lines[1])
	assert.Contains(t, lines[2], "done_success")
	assert.Contains(t, lines[2], "PATH FOUND")
	assert.Equal(t, "path: 3 cells, 2 steps", lines[3])
}

func TestTextUnreachable(t *testing.T) {
	snap := finished(t, [][]int{{0, 1}, {1, 0}})
	out := Text(snap)
	assert.True(t, strings.HasPrefix(out, "x#\n#x\n"))
	assert.Contains(t, out, "THERE IS NO PATH")
	assert.NotContains(t, out, "path:")
}

func TestTextInvalidShowsMessage(t *testing.T) {
	s, err := session.New([][]int{{1, 0}}, session.DefaultSpeed)
	require.Error(t, err)
	out := Text(s.Snapshot())
	assert.Contains(t, out, "The maze cannot be searched")
	assert.Contains(t, out, "done_fail")
}

// ---------------------------------------------------------------------------
// Styled
// ---------------------------------------------------------------------------

func TestStyledPanel(t *testing.T) {
	snap := newSession(t, [][]int{{0, 0}, {1, 0}}).Snapshot()
	out := Styled(snap)

	assert.Contains(t, out, "LOG")
	assert.Contains(t, out, "> Waiting for start")
	assert.Contains(t, out, "Current speed (steps/sec): 25")
	assert.Contains(t, out, "adjust animation speed (2..60)")
	assert.Contains(t, out, "Conclusion:")
	assert.Contains(t, out, "UNKNOWN")
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "F")
}

func TestStyledConclusion(t *testing.T) {
	assert.Contains(t, Styled(finished(t, [][]int{{0, 0}, {1, 0}})), "PATH FOUND")
	assert.Contains(t, Styled(finished(t, [][]int{{0, 1}, {1, 0}})), "THERE IS NO PATH")
}

func TestStyledBlinksKeyPrompts(t *testing.T) {
	snap := newSession(t, [][]int{{0, 0}}).Snapshot()
	require.Equal(t, []string{"Press [Space] to start"}, snap.Message)

	snap.Tick = 0
	assert.NotContains(t, Styled(snap), "Press [Space] to start")
	snap.Tick = 10
	assert.Contains(t, Styled(snap), "Press [Space] to start")
}

func TestBlinkOn(t *testing.T) {
	// At 25 steps per second the cycle is 13 ticks, lit for the last 6.
	var lit int
	for tick := 0; tick < 13; tick++ {
		if blinkOn(25, tick) {
			lit++
		}
	}
	assert.Equal(t, 6, lit)
	assert.False(t, blinkOn(25, 6))
	assert.True(t, blinkOn(25, 7))
	assert.True(t, blinkOn(2, 1))
}

// ---------------------------------------------------------------------------
// Palette
// ---------------------------------------------------------------------------

func TestBlend(t *testing.T) {
	from := color.RGBA{0, 0, 0, 0xff}
	to := color.RGBA{200, 100, 50, 0xff}
	assert.Equal(t, from, blend(from, to, 0, 10))
	assert.Equal(t, to, blend(from, to, 10, 10))
	assert.Equal(t, to, blend(from, to, 99, 10))
	assert.Equal(t, color.RGBA{100, 50, 25, 0xff}, blend(from, to, 5, 10))
}

func TestCellColorHidesWaterWhileWaiting(t *testing.T) {
	c := grid.ClaimedCell(grid.First, 1)
	c.Stage = grid.MaxRegularStage
	assert.Equal(t, floorColor, cellColor(c, session.StatusWaitingForInput))
	assert.Equal(t, waterColor, cellColor(c, session.StatusSearching))
	assert.Equal(t, "#3b82f6", hexColor(waterColor))
}

// ---------------------------------------------------------------------------
// PNG
// ---------------------------------------------------------------------------

func TestImage(t *testing.T) {
	snap := finished(t, [][]int{{0, 0, 0}, {1, 1, 0}})
	img, err := Image(snap, 10)
	require.NoError(t, err)

	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	// Wall cell (0,1) and path cell (1,0), sampled at their centres.
	assert.Equal(t, wallColor, img.RGBAAt(5, 15))
	assert.Equal(t, pathColor, img.RGBAAt(15, 5))
}

func TestImageDefaultsCellSize(t *testing.T) {
	snap := finished(t, [][]int{{0, 0}})
	img, err := Image(snap, 0)
	require.NoError(t, err)
	assert.Equal(t, 2*DefaultCellPixels, img.Bounds().Dx())
}

func TestImageWithoutGrid(t *testing.T) {
	_, err := Image(session.Snapshot{}, 8)
	assert.ErrorIs(t, err, ErrNoGrid)
}

func TestSavePNG(t *testing.T) {
	snap := finished(t, [][]int{{0, 1}, {1, 0}})
	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, SavePNG(path, snap, 8))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestSavePNGBadPath(t *testing.T) {
	snap := finished(t, [][]int{{0, 0}})
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "maze.png"), snap, 8)
	assert.Error(t, err)
}
