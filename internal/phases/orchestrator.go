// Package phases runs one maze check from file to verdict as a fixed
// sequence of phases, each of which may end the run with an exit code.
package phases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CodexForgeBR/can-exit/internal/banner"
	"github.com/CodexForgeBR/can-exit/internal/config"
	"github.com/CodexForgeBR/can-exit/internal/exitcode"
	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/logging"
	"github.com/CodexForgeBR/can-exit/internal/mazefile"
	"github.com/CodexForgeBR/can-exit/internal/pacer"
	"github.com/CodexForgeBR/can-exit/internal/render"
	"github.com/CodexForgeBR/can-exit/internal/report"
	"github.com/CodexForgeBR/can-exit/internal/session"
	"github.com/CodexForgeBR/can-exit/internal/tui"
)

// Runner drives a session to its end, returning the last snapshot.
type Runner func(ctx context.Context, s *session.Session) (session.Snapshot, error)

// Orchestrator runs the phase pipeline for one maze.
type Orchestrator struct {
	Config *config.Config
	// Visual drives interactive runs. Nil uses tui.Run.
	Visual Runner
	// Frames receives text frames in frames mode. Nil uses os.Stdout.
	Frames io.Writer
	// Interval overrides frame pacing. Nil uses pacer.Interval.
	Interval func(speed int) time.Duration
	// Now overrides the clock. Nil uses time.Now.
	Now func() time.Time
	// Signal returns the signal that cancelled the run, or nil.
	Signal func() os.Signal

	maze      *mazefile.Maze
	session   *session.Session
	snap      session.Snapshot
	report    *report.Report
	fastCheck bool
	startTime time.Time
}

// NewOrchestrator creates a new orchestrator with the given config.
func NewOrchestrator(cfg *config.Config) *Orchestrator {
	return &Orchestrator{Config: cfg}
}

// Mode names how the search is shown.
func (o *Orchestrator) Mode() string {
	switch {
	case o.Config.Visual:
		return report.ModeVisual
	case o.Config.Frames:
		return report.ModeFrames
	default:
		return report.ModeHeadless
	}
}

// Report returns the report of the last run, or nil before Run.
func (o *Orchestrator) Report() *report.Report { return o.report }

// Run executes the pipeline and returns an exit code.
func (o *Orchestrator) Run(ctx context.Context) int {
	code := o.run(ctx)
	logging.Debug(fmt.Sprintf("Exit code %d (%s)", code, exitcode.Name(code)))
	return code
}

func (o *Orchestrator) run(ctx context.Context) int {
	o.startTime = o.now()
	o.report = report.New(o.startTime)
	o.report.Mode = o.Mode()

	// Phase 1: Load maze
	if code := o.phaseLoad(); code >= 0 {
		return o.phaseExport(code)
	}

	// Phase 2: Banner
	o.phaseBanner()

	// Phase 3: Fast check
	o.phaseFastCheck()

	// Phase 4: Build session
	if code := o.phaseBuild(ctx); code >= 0 {
		return o.phaseExport(code)
	}

	// Phase 5: Search
	err := o.phaseSearch(ctx)

	// Phase 6: Verdict
	code := o.phaseVerdict(err)

	// Phase 7: Export
	return o.phaseExport(code)
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *Orchestrator) phaseLoad() int {
	logging.Phase("Loading maze")

	if o.Config.MazeFile == "" {
		return o.fail(exitcode.Error, report.VerdictError, errors.New("no maze file given"))
	}

	format, err := mazefile.ParseFormat(o.Config.MazeFormat)
	if err != nil {
		return o.fail(exitcode.Error, report.VerdictError, err)
	}

	maze, err := mazefile.Load(o.Config.MazeFile, format)
	if err != nil {
		if errors.Is(err, mazefile.ErrEmptyMaze) {
			banner.PrintInvalidBanner(err.Error())
			return o.fail(exitcode.InvalidMaze, report.VerdictInvalid, err)
		}
		return o.fail(exitcode.Error, report.VerdictError, err)
	}
	o.maze = maze

	o.report.Maze = report.MazeInfo{
		File:   maze.Path,
		Format: string(maze.Format),
		Hash:   maze.Hash,
		Height: len(maze.Rows),
	}
	if len(maze.Rows) > 0 {
		o.report.Maze.Width = len(maze.Rows[0])
	}

	logging.Debug(fmt.Sprintf("Loaded %s as %s, sha256 %s", maze.Path, maze.Format, maze.Hash))
	return -1
}

func (o *Orchestrator) phaseBanner() {
	banner.PrintStartupBanner(
		o.report.RunID,
		o.maze.Path,
		string(o.maze.Format),
		o.report.Maze.Width,
		o.report.Maze.Height,
		o.report.Mode,
	)
}

func (o *Orchestrator) phaseFastCheck() {
	o.fastCheck = session.CheckReachable(o.maze.Rows)
	o.report.FastCheck = o.fastCheck
	logging.Debug(fmt.Sprintf("Fast check: reachable=%t", o.fastCheck))
}

func (o *Orchestrator) phaseBuild(ctx context.Context) int {
	var opts []session.Option
	if o.Config.ImmediateStuck {
		opts = append(opts, session.WithImmediateExhaustion())
	}

	if speed := session.ClampSpeed(o.Config.AnimationSpeed); speed != o.Config.AnimationSpeed {
		logging.Warn(fmt.Sprintf("Animation speed %d clamped to %d", o.Config.AnimationSpeed, speed))
	}

	s, err := session.New(o.maze.Rows, o.Config.AnimationSpeed, opts...)
	o.session = s
	if err == nil {
		return -1
	}

	// The failed session still carries the reason; let an interactive user
	// read it before exiting.
	o.snap = s.Snapshot()
	if o.Mode() == report.ModeVisual {
		if snap, runErr := o.visual()(ctx, s); runErr == nil {
			o.snap = snap
		}
	}
	o.report.Record(o.snap)

	code := exitcode.Error
	verdict := report.VerdictError
	if errors.Is(err, grid.ErrInvalidMaze) {
		code = exitcode.InvalidMaze
		verdict = report.VerdictInvalid
		banner.PrintInvalidBanner(err.Error())
	}
	return o.fail(code, verdict, err)
}

func (o *Orchestrator) phaseSearch(ctx context.Context) error {
	logging.Phase(fmt.Sprintf("Searching (%s)", o.Mode()))

	var (
		snap session.Snapshot
		err  error
	)
	switch o.Mode() {
	case report.ModeVisual:
		snap, err = o.visual()(ctx, o.session)
	case report.ModeFrames:
		p := &pacer.Pacer{
			Out:      o.frames(),
			Frame:    render.Text,
			MaxTicks: o.Config.MaxTicks,
			Interval: o.Interval,
		}
		snap, err = p.Play(ctx, o.session)
	default:
		if err = ctx.Err(); err == nil {
			snap, err = o.session.Run(o.Config.MaxTicks)
		} else {
			snap = o.session.Snapshot()
		}
	}

	o.snap = snap
	o.report.Record(snap)
	for _, line := range snap.Log {
		logging.Debug("session: " + line)
	}
	return err
}

func (o *Orchestrator) phaseVerdict(searchErr error) int {
	reachable, decided := o.snap.Verdict()
	result := ProcessVerdict(VerdictInput{
		Reachable: reachable,
		Decided:   decided,
		FastCheck: o.fastCheck,
		SearchErr: searchErr,
	})
	if result.ExitCode == exitcode.Interrupted && o.Signal != nil {
		if sig := o.Signal(); sig != nil {
			result.Reason = "received " + sig.String()
		}
	}

	o.report.Verdict = result.Verdict
	o.report.Error = result.Reason
	elapsed := o.now().Sub(o.startTime)

	switch result.ExitCode {
	case exitcode.Reachable:
		logging.Success(fmt.Sprintf("Goal reached after %d ticks", o.snap.Tick))
		banner.PrintReachableBanner(o.snap.PathSteps(), o.snap.Tick, elapsed)
	case exitcode.Unreachable:
		logging.Info(fmt.Sprintf("Waves stopped without meeting after %d ticks", o.snap.Tick))
		banner.PrintUnreachableBanner(o.snap.Tick, elapsed)
	case exitcode.Interrupted:
		logging.Warn("Search interrupted: " + result.Reason)
		banner.PrintInterruptedBanner(result.Reason, o.snap.Tick)
	default:
		logging.Error("Search failed: " + result.Reason)
	}
	return result.ExitCode
}

// phaseExport writes the PNG and report if configured. An export failure
// turns a verdict exit code into Error; other codes are kept.
func (o *Orchestrator) phaseExport(code int) int {
	var reportPath, pngPath string
	failed := false

	if path := o.Config.PNGFile; path != "" {
		if o.snap.Width == 0 {
			logging.Warn("No board to draw, skipping PNG export")
		} else if err := render.SavePNG(path, o.snap, o.Config.CellPixels); err != nil {
			logging.Error(fmt.Sprintf("Failed to save PNG: %v", err))
			failed = true
		} else {
			pngPath = path
		}
	}

	if path := o.Config.ReportFile; path != "" {
		o.report.Finish(o.now())
		if err := report.Save(o.report, path); err != nil {
			logging.Error(fmt.Sprintf("Failed to save report: %v", err))
			failed = true
		} else {
			reportPath = path
		}
	}

	banner.PrintArtifactsBanner(reportPath, pngPath)

	if failed && (code == exitcode.Reachable || code == exitcode.Unreachable) {
		return exitcode.Error
	}
	return code
}

// fail records err on the report and returns code.
func (o *Orchestrator) fail(code int, verdict string, err error) int {
	logging.Error(err.Error())
	o.report.Verdict = verdict
	o.report.Error = err.Error()
	return code
}

func (o *Orchestrator) visual() Runner {
	if o.Visual != nil {
		return o.Visual
	}
	return tui.Run
}

func (o *Orchestrator) frames() io.Writer {
	if o.Frames != nil {
		return o.Frames
	}
	return os.Stdout
}
