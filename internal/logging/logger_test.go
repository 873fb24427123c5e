package logging_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/can-exit/internal/logging"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// capture redirects log output into a buffer for the duration of fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.SetOutput(&buf)
	defer logging.SetOutput(prev)
	fn()
	return buf.String()
}

// captureStderr captures stderr output produced by fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	prev := logging.SetOutput(w)

	fn()

	logging.SetOutput(prev)
	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

// ---------------------------------------------------------------------------
// FormatDuration tests
// ---------------------------------------------------------------------------

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0ms"},
		{850 * time.Millisecond, "850ms"},
		{12300 * time.Millisecond, "12.3s"},
		{45 * time.Second, "45.0s"},
		{90 * time.Second, "1m 30s"},
		{3661 * time.Second, "1h 1m 1s"},
		{7200 * time.Second, "2h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.FormatDuration(tt.d))
		})
	}
}

// ---------------------------------------------------------------------------
// Log output tests
// ---------------------------------------------------------------------------

func TestLevelsUsePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		log    func(string)
		prefix string
	}{
		{"info", logging.Info, "[INFO]"},
		{"success", logging.Success, "[SUCCESS]"},
		{"warn", logging.Warn, "[WARN]"},
		{"error", logging.Error, "[ERROR]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, func() { tt.log("test message") })
			assert.Equal(t, tt.prefix+" test message\n", out)
		})
	}
}

func TestDefaultOutputIsStderr(t *testing.T) {
	out := captureStderr(t, func() {
		logging.Info("to stderr")
	})
	assert.Contains(t, out, "[INFO] to stderr")
}

func TestPhase(t *testing.T) {
	out := capture(t, func() {
		logging.Phase("search")
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "━━━━")
	assert.Equal(t, "[PHASE] search", lines[1])
	assert.Equal(t, lines[0], lines[2])
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	logging.SetVerbose(false)
	out := capture(t, func() {
		logging.Debug("hidden")
	})
	assert.Empty(t, out)
}

func TestDebugShownWhenVerbose(t *testing.T) {
	logging.SetVerbose(true)
	defer logging.SetVerbose(false)

	out := capture(t, func() {
		logging.Debug("visible")
	})
	assert.Equal(t, "[DEBUG] visible\n", out)
}
