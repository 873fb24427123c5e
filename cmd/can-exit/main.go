package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/can-exit/internal/cli"
	"github.com/CodexForgeBR/can-exit/internal/config"
	"github.com/CodexForgeBR/can-exit/internal/exitcode"
	"github.com/CodexForgeBR/can-exit/internal/logging"
	"github.com/CodexForgeBR/can-exit/internal/phases"
	sighandler "github.com/CodexForgeBR/can-exit/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "can-exit [flags] <maze-file>",
		Short:   "Animated two-wave reachability check for grid mazes",
		Long:    "can-exit decides whether the bottom-right cell of a maze can be reached from the top-left cell by growing a wave from each end until they meet or stop.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			cfg.MazeFile = args[0]
			return runOrchestrator(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	// String flags: only include if explicitly set via CLI
	stringFlags := map[string]struct {
		key string
		val string
	}{
		"format": {"MAZE_FORMAT", cfg.MazeFormat},
		"report": {"REPORT_FILE", cfg.ReportFile},
		"png":    {"PNG_FILE", cfg.PNGFile},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	// Int flags
	intFlags := map[string]struct {
		key string
		val int
	}{
		"speed":       {"ANIMATION_SPEED", cfg.AnimationSpeed},
		"cell-pixels": {"CELL_PIXELS", cfg.CellPixels},
		"max-ticks":   {"MAX_TICKS", cfg.MaxTicks},
	}
	for flag, mapping := range intFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = fmt.Sprintf("%d", mapping.val)
		}
	}

	// Bool flags
	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"visual":          {"VISUAL", cfg.Visual},
		"frames":          {"FRAMES", cfg.Frames},
		"immediate-stuck": {"IMMEDIATE_STUCK", cfg.ImmediateStuck},
		"verbose":         {"VERBOSE", cfg.Verbose},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			if mapping.val {
				overrides[mapping.key] = "true"
			} else {
				overrides[mapping.key] = "false"
			}
		}
	}

	return overrides
}

// loadConfig merges config files with the CLI overrides and carries over the
// CLI-only fields.
func loadConfig(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	finalCfg, err := config.LoadWithPrecedence(
		config.GlobalConfigPath(),
		config.ProjectConfigPath,
		cfg.ConfigFile,
		buildCLIOverrides(cmd, cfg),
	)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.MazeFile = cfg.MazeFile

	// A config file may enable both; the explicit interactive mode wins.
	if finalCfg.Visual && finalCfg.Frames {
		finalCfg.Frames = false
	}
	return finalCfg, nil
}

func runOrchestrator(cmd *cobra.Command, cfg *config.Config) error {
	cfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	// Set verbose mode
	logging.SetVerbose(cfg.Verbose)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orch := phases.NewOrchestrator(cfg)

	// Cancel the search on interrupt; the orchestrator reports it.
	h := sighandler.SetupSignalHandler(ctx, cancel, func(s os.Signal) {
		logging.Warn(fmt.Sprintf("Received %s, stopping search...", s))
	})
	orch.Signal = h.Signal

	// Run orchestrator
	exitCode := orch.Run(ctx)
	cancel()
	os.Exit(exitCode)
	return nil // unreachable
}
