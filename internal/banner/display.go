// Package banner provides colored banner display functions for the can-exit CLI.
//
// Banners frame the run: what is being searched, the verdict, and where any
// artifacts were written. They go to stdout by default.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/can-exit/internal/logging"
)

var out io.Writer = os.Stdout

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const rule = "═══════════════════════════════════════════════════"

// SetOutput redirects banners to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// PrintStartupBanner displays the run header.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  can-exit - Two-wave maze reachability
//	═══════════════════════════════════════════════════
//	  Run:        0b6c1f0e-5d1a-4c55-9a5e-8d2f4e0b9a11
//	  Maze:       mazes/spiral.txt (text)
//	  Size:       21 x 15
//	  Mode:       visual
//	═══════════════════════════════════════════════════
func PrintStartupBanner(runID, mazeFile, format string, width, height int, mode string) {
	sep := headerColor(rule)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, headerColor("  can-exit - Two-wave maze reachability"))
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "  Run:        %s\n", runID)
	fmt.Fprintf(out, "  Maze:       %s (%s)\n", mazeFile, format)
	fmt.Fprintf(out, "  Size:       %d x %d\n", width, height)
	fmt.Fprintf(out, "  Mode:       %s\n", mode)
	fmt.Fprintln(out, sep)
}

// PrintReachableBanner announces a joined path.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ Path found
//	  Steps:      38
//	  Ticks:      27
//	  Duration:   1.1s
//	═══════════════════════════════════════════════════
func PrintReachableBanner(pathSteps, ticks int, elapsed time.Duration) {
	sep := successColor(rule)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, successColor("  ✓ Path found"))
	if pathSteps >= 0 {
		fmt.Fprintf(out, "  Steps:      %d\n", pathSteps)
	}
	fmt.Fprintf(out, "  Ticks:      %d\n", ticks)
	fmt.Fprintf(out, "  Duration:   %s\n", logging.FormatDuration(elapsed))
	fmt.Fprintln(out, sep)
}

// PrintUnreachableBanner announces that both waves stopped without meeting.
func PrintUnreachableBanner(ticks int, elapsed time.Duration) {
	sep := errorColor(rule)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, errorColor("  ✗ Path does not exist"))
	fmt.Fprintf(out, "  Ticks:      %d\n", ticks)
	fmt.Fprintf(out, "  Duration:   %s\n", logging.FormatDuration(elapsed))
	fmt.Fprintln(out, sep)
}

// PrintInvalidBanner displays why a maze could not be searched.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✗ INVALID MAZE
//	═══════════════════════════════════════════════════
//	  Reason:
//	  invalid maze: start cell (0,0) is a wall
//	═══════════════════════════════════════════════════
func PrintInvalidBanner(reason string) {
	sep := errorColor(rule)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, errorColor("  ✗ INVALID MAZE"))
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "  Reason:")
	fmt.Fprintf(out, "  %s\n", reason)
	fmt.Fprintln(out, sep)
}

// PrintInterruptedBanner displays when a run is stopped before a verdict.
func PrintInterruptedBanner(reason string, tick int) {
	sep := warnColor(rule)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, warnColor("  ⚠ Run interrupted"))
	fmt.Fprintf(out, "  Reason:     %s\n", reason)
	fmt.Fprintf(out, "  Tick:       %d\n", tick)
	fmt.Fprintln(out, sep)
}

// PrintArtifactsBanner lists the files a run produced. Empty paths are
// skipped; nothing is printed when both are empty.
//
// Example output:
//
//	──────────────────────────────────────────────────
//	  Report: run.json
//	  Image:  run.png
//	──────────────────────────────────────────────────
func PrintArtifactsBanner(reportPath, pngPath string) {
	if reportPath == "" && pngPath == "" {
		return
	}
	sep := strings.Repeat("─", 50)
	fmt.Fprintln(out, sep)
	if reportPath != "" {
		fmt.Fprintf(out, "  Report: %s\n", reportPath)
	}
	if pngPath != "" {
		fmt.Fprintf(out, "  Image:  %s\n", pngPath)
	}
	fmt.Fprintln(out, sep)
}
