// Package config defines the can-exit configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [10]string{
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

// ProjectConfigPath is the project-level config file, relative to the
// working directory.
const ProjectConfigPath = ".can-exit/config"

// Config holds every configuration field for the can-exit CLI.
type Config struct {
	// Animation.
	AnimationSpeed int
	Visual         bool
	Frames         bool

	// Search.
	ImmediateStuck bool
	MaxTicks       int

	// Input.
	MazeFormat string

	// Outputs.
	ReportFile string
	PNGFile    string
	CellPixels int

	// Runtime flags.
	Verbose bool

	// CLI-only fields (not loaded from config files).
	ConfigFile string
	MazeFile   string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		AnimationSpeed: 25,
		CellPixels:     16,
	}
}

// GlobalConfigPath returns the per-user config file location:
// $XDG_CONFIG_HOME/can-exit/config, falling back to ~/.config/can-exit/config.
// It returns "" when neither location can be determined.
func GlobalConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "can-exit", "config")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "can-exit", "config")
}
