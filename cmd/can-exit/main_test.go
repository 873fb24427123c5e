package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/can-exit/internal/cli"
	"github.com/CodexForgeBR/can-exit/internal/config"
)

func parsedCommand(t *testing.T, args ...string) (*cobra.Command, *config.Config) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	cli.BindFlags(cmd, cfg)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, cfg
}

// isolate points the global and project config locations at empty temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestBuildCLIOverrides_OnlyChangedFlags(t *testing.T) {
	cmd, cfg := parsedCommand(t, "--speed", "10", "--frames", "--report", "r.json")

	overrides := buildCLIOverrides(cmd, cfg)

	assert.Equal(t, map[string]string{
		"ANIMATION_SPEED": "10",
		"FRAMES":          "true",
		"REPORT_FILE":     "r.json",
	}, overrides)
}

func TestBuildCLIOverrides_ExplicitFalse(t *testing.T) {
	cmd, cfg := parsedCommand(t, "--visual=false", "--immediate-stuck")

	overrides := buildCLIOverrides(cmd, cfg)

	assert.Equal(t, "false", overrides["VISUAL"])
	assert.Equal(t, "true", overrides["IMMEDIATE_STUCK"])
	assert.NotContains(t, overrides, "VERBOSE")
}

func TestBuildCLIOverrides_NoFlags(t *testing.T) {
	cmd, cfg := parsedCommand(t)
	assert.Empty(t, buildCLIOverrides(cmd, cfg))
}

func TestLoadConfig_FlagsBeatFiles(t *testing.T) {
	isolate(t)
	explicit := filepath.Join(t.TempDir(), "extra.conf")
	require.NoError(t, os.WriteFile(explicit, []byte("ANIMATION_SPEED=5\nPNG_FILE=file.png\n"), 0644))

	cmd, cfg := parsedCommand(t, "--config", explicit, "--speed", "40")
	cfg.MazeFile = "maze.txt"

	final, err := loadConfig(cmd, cfg)
	require.NoError(t, err)

	assert.Equal(t, 40, final.AnimationSpeed)
	assert.Equal(t, "file.png", final.PNGFile)
	assert.Equal(t, explicit, final.ConfigFile)
	assert.Equal(t, "maze.txt", final.MazeFile)
}

func TestLoadConfig_ProjectFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(".can-exit", 0755))
	require.NoError(t, os.WriteFile(config.ProjectConfigPath, []byte("VISUAL=true\nFRAMES=true\n"), 0644))

	cmd, cfg := parsedCommand(t)
	final, err := loadConfig(cmd, cfg)
	require.NoError(t, err)

	assert.True(t, final.Visual)
	assert.False(t, final.Frames)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	isolate(t)
	cmd, cfg := parsedCommand(t)
	cfg.ConfigFile = filepath.Join(t.TempDir(), "absent.conf")

	_, err := loadConfig(cmd, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
