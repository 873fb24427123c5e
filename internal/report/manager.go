// Package report records the outcome of a maze check as a JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/can-exit/internal/session"
)

const timeLayout = time.RFC3339

// New starts a report with a fresh run id.
func New(startedAt time.Time) *Report {
	return &Report{
		SchemaVersion: SchemaVersion,
		RunID:         uuid.NewString(),
		StartedAt:     startedAt.UTC().Format(timeLayout),
		PathSteps:     -1,
	}
}

// Record copies the final state of a session into r.
func (r *Report) Record(snap session.Snapshot) {
	r.Status = snap.Status.String()
	r.Ticks = snap.Tick
	r.PathSteps = snap.PathSteps()
	r.Log = append([]string(nil), snap.Log...)
	if snap.Width > 0 {
		r.Maze.Width = snap.Width
		r.Maze.Height = snap.Height
	}

	r.Path = make([]PathCell, 0, len(snap.Path))
	for _, c := range snap.Path {
		r.Path = append(r.Path, PathCell{X: c.X, Y: c.Y})
	}

	r.Waves = make([]WaveReport, 0, len(snap.Waves))
	for _, w := range snap.Waves {
		r.Waves = append(r.Waves, WaveReport{
			ID:            int(w.ID),
			Claimed:       w.Claimed,
			Phase:         w.CurrentPhase,
			FoundPath:     w.FoundPath,
			Stuck:         w.Stuck,
			StuckProgress: w.StuckProgress.String(),
		})
	}

	if reachable, ok := snap.Verdict(); ok {
		if reachable {
			r.Verdict = VerdictReachable
		} else {
			r.Verdict = VerdictUnreachable
		}
	}
}

// Finish stamps the end time.
func (r *Report) Finish(at time.Time) {
	r.FinishedAt = at.UTC().Format(timeLayout)
}

// Save writes r to path as indented JSON, creating parent directories.
func Save(r *Report, path string) error {
	// Marshal with 4-space indent
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	return nil
}

// Load reads a report written by Save.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	return &r, nil
}
