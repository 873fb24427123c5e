// Package cli provides flag binding and validation for the can-exit CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/can-exit/internal/config"
	"github.com/CodexForgeBR/can-exit/internal/mazefile"
	"github.com/CodexForgeBR/can-exit/internal/session"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Animation
	flags.IntVarP(&cfg.AnimationSpeed, "speed", "s", session.DefaultSpeed, "Animation speed in steps per second (2..60)")
	flags.BoolVar(&cfg.Visual, "visual", false, "Animate the search in an interactive terminal UI")
	flags.BoolVar(&cfg.Frames, "frames", false, "Print every animation frame as plain text")

	// Search
	flags.BoolVar(&cfg.ImmediateStuck, "immediate-stuck", false, "Declare a wave stuck as soon as its frontier is empty")
	flags.IntVar(&cfg.MaxTicks, "max-ticks", 0, "Abort after this many ticks (0 = derived from maze size)")

	// Input Files
	flags.StringVar(&cfg.MazeFormat, "format", "", "Maze file format: text, json, yaml or toml (default: from extension)")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	// Outputs
	flags.StringVar(&cfg.ReportFile, "report", "", "Write a JSON run report to this path")
	flags.StringVar(&cfg.PNGFile, "png", "", "Write a PNG of the final board to this path")
	flags.IntVar(&cfg.CellPixels, "cell-pixels", 16, "Pixel size of one maze cell in the PNG export")

	// Feature Toggles
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")
}

// ValidateFlags checks for invalid flag combinations after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// Mutual exclusion: --visual and --frames
	if cfg.Visual && cfg.Frames {
		return fmt.Errorf("--visual and --frames are mutually exclusive")
	}

	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cmd.Flags().Changed("speed") &&
		(cfg.AnimationSpeed < session.MinSpeed || cfg.AnimationSpeed > session.MaxSpeed) {
		return fmt.Errorf("--speed must be between %d and %d, got: %d",
			session.MinSpeed, session.MaxSpeed, cfg.AnimationSpeed)
	}

	if cfg.CellPixels < 1 {
		return fmt.Errorf("--cell-pixels must be positive, got: %d", cfg.CellPixels)
	}

	if cfg.MaxTicks < 0 {
		return fmt.Errorf("--max-ticks must not be negative, got: %d", cfg.MaxTicks)
	}

	if _, err := mazefile.ParseFormat(cfg.MazeFormat); err != nil {
		return fmt.Errorf("--format: %w", err)
	}

	return nil
}
