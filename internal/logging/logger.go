// Package logging provides colored, leveled log output for the can-exit CLI.
//
// Every line goes to a single writer, stderr by default, so that rendered
// frames on stdout stay clean. Debug output is suppressed unless verbose mode
// is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	phasePrefix   = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgMagenta).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// SetOutput redirects all log lines to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func emit(line string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, line)
}

// Info prints an informational message in blue.
func Info(msg string) {
	emit(infoPrefix("[INFO]") + " " + msg)
}

// Success prints a success message in green.
func Success(msg string) {
	emit(successPrefix("[SUCCESS]") + " " + msg)
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	emit(warnPrefix("[WARN]") + " " + msg)
}

// Error prints an error message in red.
func Error(msg string) {
	emit(errorPrefix("[ERROR]") + " " + msg)
}

// Phase prints a phase header in cyan, surrounded by separator lines.
func Phase(msg string) {
	sep := phasePrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	emit(sep)
	emit(phasePrefix("[PHASE]") + " " + msg)
	emit(sep)
}

// Debug prints a debug message, only when verbose mode is enabled.
func Debug(msg string) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if !v {
		return
	}
	emit(debugPrefix("[DEBUG]") + " " + msg)
}

// FormatDuration renders an elapsed time for log lines.
//
// Examples:
//
//	FormatDuration(0)                        => "0ms"
//	FormatDuration(850 * time.Millisecond)   => "850ms"
//	FormatDuration(12300 * time.Millisecond) => "12.3s"
//	FormatDuration(90 * time.Second)         => "1m 30s"
//	FormatDuration(3661 * time.Second)       => "1h 1m 1s"
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	seconds := int(d / time.Second)
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}
