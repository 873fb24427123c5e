package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var whitelistSet = func() map[string]bool {
	set := make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		set[v] = true
	}
	return set
}()

// LoadFile reads a KEY=VALUE file. Blank lines, # comments, lines without
// '=' and keys outside WhitelistedVars are ignored. Only the first '=' splits
// key from value, so values may contain '='.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if key = strings.TrimSpace(key); whitelistSet[key] {
			vars[key] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return vars, nil
}

// configLayer is one config file in the precedence chain.
type configLayer struct {
	name     string
	path     string
	required bool
}

// LoadWithPrecedence builds a Config from the defaults, then the global,
// project and explicit files, then cliOverrides; later sources win. Empty
// paths are skipped. The global and project files may be missing; the
// explicit file may not.
func LoadWithPrecedence(globalPath, projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	layers := []configLayer{
		{name: "global", path: globalPath},
		{name: "project", path: projectPath},
		{name: "explicit", path: explicitPath, required: true},
	}
	for _, l := range layers {
		if l.path == "" {
			continue
		}
		vars, err := LoadFile(l.path)
		switch {
		case err == nil:
			ApplyMapToConfig(cfg, vars)
		case !l.required && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("%s config: %w", l.name, err)
		}
	}

	ApplyMapToConfig(cfg, cliOverrides)
	return cfg, nil
}

// ApplyMapToConfig copies the values in m onto cfg. Unknown keys and
// integers that do not parse leave cfg unchanged.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "ANIMATION_SPEED":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.AnimationSpeed = v
			}
		case "VISUAL":
			cfg.Visual = parseBool(value)
		case "FRAMES":
			cfg.Frames = parseBool(value)
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		case "REPORT_FILE":
			cfg.ReportFile = value
		case "PNG_FILE":
			cfg.PNGFile = value
		case "CELL_PIXELS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.CellPixels = v
			}
		case "IMMEDIATE_STUCK":
			cfg.ImmediateStuck = parseBool(value)
		case "MAX_TICKS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxTicks = v
			}
		case "MAZE_FORMAT":
			cfg.MazeFormat = value
		}
	}
}

// parseBool accepts true, 1 and yes in any case.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
