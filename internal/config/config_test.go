package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/can-exit/internal/config"
)

func TestNewDefaultConfigValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	require.NotNil(t, cfg)

	// Animation.
	assert.Equal(t, 25, cfg.AnimationSpeed)
	assert.False(t, cfg.Visual)
	assert.False(t, cfg.Frames)

	// Search.
	assert.False(t, cfg.ImmediateStuck)
	assert.Zero(t, cfg.MaxTicks)

	// Input and outputs.
	assert.Empty(t, cfg.MazeFormat)
	assert.Empty(t, cfg.ReportFile)
	assert.Empty(t, cfg.PNGFile)
	assert.Equal(t, 16, cfg.CellPixels)

	assert.False(t, cfg.Verbose)

	// CLI-only fields default to zero values.
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.MazeFile)
}

func TestWhitelistedVarsContainsAllExpectedNames(t *testing.T) {
	expected := []string{
		"ANIMATION_SPEED",
		"VISUAL",
		"FRAMES",
		"VERBOSE",
		"REPORT_FILE",
		"PNG_FILE",
		"CELL_PIXELS",
		"IMMEDIATE_STUCK",
		"MAX_TICKS",
		"MAZE_FORMAT",
	}
	assert.ElementsMatch(t, expected, config.WhitelistedVars[:])
}

func TestWhitelistedVarsHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range config.WhitelistedVars {
		assert.False(t, seen[v], "duplicate whitelisted var: %s", v)
		seen[v] = true
	}
}

func TestGlobalConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "can-exit", "config"), config.GlobalConfigPath())
}

func TestGlobalConfigPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".config", "can-exit", "config"), config.GlobalConfigPath())
}
