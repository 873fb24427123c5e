package banner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// capture collects banner output written during fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	fn()
	return buf.String()
}

func TestPrintStartupBanner(t *testing.T) {
	output := capture(t, func() {
		PrintStartupBanner("run-123", "mazes/spiral.txt", "text", 21, 15, "visual")
	})

	for _, want := range []string{
		"can-exit - Two-wave maze reachability",
		"Run:        run-123",
		"Maze:       mazes/spiral.txt (text)",
		"Size:       21 x 15",
		"Mode:       visual",
	} {
		assert.Contains(t, output, want)
	}
	assert.Equal(t, 3, strings.Count(output, rule))
}

func TestPrintReachableBanner(t *testing.T) {
	output := capture(t, func() {
		PrintReachableBanner(38, 27, 1100*time.Millisecond)
	})

	assert.Contains(t, output, "✓ Path found")
	assert.Contains(t, output, "Steps:      38")
	assert.Contains(t, output, "Ticks:      27")
	assert.Contains(t, output, "Duration:   1.1s")
}

func TestPrintReachableBanner_NoPath(t *testing.T) {
	output := capture(t, func() {
		PrintReachableBanner(-1, 0, 0)
	})

	assert.Contains(t, output, "✓ Path found")
	assert.NotContains(t, output, "Steps:")
	assert.Contains(t, output, "Duration:   0ms")
}

func TestPrintUnreachableBanner(t *testing.T) {
	output := capture(t, func() {
		PrintUnreachableBanner(11, 90*time.Second)
	})

	assert.Contains(t, output, "✗ Path does not exist")
	assert.Contains(t, output, "Ticks:      11")
	assert.Contains(t, output, "Duration:   1m 30s")
}

func TestPrintInvalidBanner(t *testing.T) {
	output := capture(t, func() {
		PrintInvalidBanner("invalid maze: start cell (0,0) is a wall")
	})

	assert.Contains(t, output, "✗ INVALID MAZE")
	assert.Contains(t, output, "Reason:")
	assert.Contains(t, output, "start cell (0,0) is a wall")
}

func TestPrintInterruptedBanner(t *testing.T) {
	output := capture(t, func() {
		PrintInterruptedBanner("interrupt", 42)
	})

	assert.Contains(t, output, "⚠ Run interrupted")
	assert.Contains(t, output, "Reason:     interrupt")
	assert.Contains(t, output, "Tick:       42")
}

func TestPrintArtifactsBanner(t *testing.T) {
	tests := []struct {
		name     string
		report   string
		png      string
		contains []string
		absent   []string
	}{
		{"both", "run.json", "run.png", []string{"Report: run.json", "Image:  run.png"}, nil},
		{"report only", "run.json", "", []string{"Report: run.json"}, []string{"Image:"}},
		{"image only", "", "run.png", []string{"Image:  run.png"}, []string{"Report:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, func() { PrintArtifactsBanner(tt.report, tt.png) })
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, gone := range tt.absent {
				assert.NotContains(t, output, gone)
			}
			assert.Contains(t, output, strings.Repeat("─", 50))
		})
	}
}

func TestPrintArtifactsBanner_NothingToList(t *testing.T) {
	assert.Empty(t, capture(t, func() { PrintArtifactsBanner("", "") }))
}
