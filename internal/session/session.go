// Package session drives the dual-wave search as a tick-based state machine.
//
// A Session owns a private copy of the maze and two waves anchored at the
// start and goal corners. Every Tick first applies an optional user Event,
// then, while the status is active, expands both waves, checks for
// exhausted waves, traces the path after the waves meet, and advances the
// reveal timers. The caller reads the result through a Snapshot.
//
// CheckReachable runs the same search without any timers and returns only
// the verdict.
package session

import (
	"errors"
	"fmt"

	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/trace"
	"github.com/CodexForgeBR/can-exit/internal/wave"
)

// ErrTickLimit is returned by Run when the session does not settle in time.
var ErrTickLimit = errors.New("session did not finish within the tick limit")

// Option configures a Session.
type Option func(*options)

type options struct {
	immediateExhaustion bool
}

// WithImmediateExhaustion declares a wave stuck as soon as it stops
// spreading instead of waiting for its rise timer to finish.
func WithImmediateExhaustion() Option {
	return func(o *options) { o.immediateExhaustion = true }
}

// Session is one maze check.
type Session struct {
	grid    *grid.Grid
	waves   []*wave.Wave
	status  Status
	meeting *wave.Meeting
	tracer  *trace.Tracer
	log     []string
	message []string
	speed   int
	tick    int
	closed  bool
	opts    options
}

// New builds a session for rows at the given animation speed. For an invalid
// maze it returns an error wrapping grid.ErrInvalidMaze together with a
// session parked in StatusDoneFail, so a front end can still show the reason
// and wait for acknowledgment.
func New(rows [][]int, speed int, opts ...Option) (*Session, error) {
	s := &Session{speed: ClampSpeed(speed)}
	for _, opt := range opts {
		opt(&s.opts)
	}

	g, err := grid.New(rows)
	if err != nil {
		s.status = StatusDoneFail
		s.log = append(s.log, "Unable to init")
		s.message = []string{"The maze cannot be searched", err.Error(), "Press [ENTER] to proceed"}
		return s, err
	}
	s.grid = g

	if g.IsSingleCell() {
		s.status = StatusSpecial
		s.log = append(s.log, "Single cell special case", "Path found")
		s.message = []string{"The maze is a single open cell", "A path trivially exists", "Press [ENTER] to proceed"}
		return s, nil
	}

	s.waves = []*wave.Wave{
		wave.New(g, grid.First, g.Start()),
		wave.New(g, grid.Second, g.Goal()),
	}
	g.Rise()
	s.status = StatusWaitingForInput
	s.log = append(s.log, "Waiting for start")
	s.message = []string{"Press [Space] to start"}
	return s, nil
}

// Status returns the current state.
func (s *Session) Status() Status { return s.status }

// Speed returns the animation speed in steps per second.
func (s *Session) Speed() int { return s.speed }

// Closed reports whether a terminal session has been acknowledged.
func (s *Session) Closed() bool { return s.closed }

// Verdict returns the reachability verdict once the session is terminal.
func (s *Session) Verdict() (reachable bool, ok bool) {
	if !s.status.Terminal() {
		return false, false
	}
	return s.reachable(), true
}

func (s *Session) reachable() bool {
	if s.status == StatusSpecial {
		return true
	}
	for _, w := range s.waves {
		if w.FoundPath() {
			return true
		}
	}
	return false
}

// Tick applies ev and advances the automaton by one step.
func (s *Session) Tick(ev Event) Snapshot {
	s.handle(ev)
	if s.status.Active() {
		s.advance()
	}
	s.tick++
	return s.Snapshot()
}

func (s *Session) handle(ev Event) {
	switch ev {
	case EventStart:
		if s.status == StatusWaitingForInput {
			s.status = StatusSearching
			s.log = append(s.log, "Waves are spreading")
			s.message = []string{"Searching for a path", "Two waves are spreading"}
		}
	case EventSpeedUp:
		s.speed = SpeedUp(s.speed)
	case EventSpeedDown:
		s.speed = SpeedDown(s.speed)
	case EventAcknowledge:
		if s.status.Terminal() {
			s.closed = true
		}
	case EventNone:
	}
}

func (s *Session) advance() {
	for _, w := range s.waves {
		if m, met := w.Expand(s.grid); met && s.meeting == nil {
			s.meeting = &m
		}
	}

	found := s.reachable()
	if !found {
		s.detectStuck()
	}

	if s.status == StatusWaveStuck {
		done := true
		for _, w := range s.waves {
			w.AdvanceStuck(s.grid)
			done = done && w.StuckProgress() == grid.Done
		}
		if done {
			s.status = StatusPathNotFound
			s.log = append(s.log, "Path was not found")
		}
	}

	if found && (s.status == StatusSearching || s.status == StatusWaveStuck) {
		s.status = StatusDrawingPath
		s.tracer = trace.New(*s.meeting)
		s.log = append(s.log, "Path found", "Drawing path")
		s.message = []string{"Path found", "Tracing one shortest path"}
	}

	if s.status == StatusDrawingPath {
		s.tracer.Step(s.grid)
		s.tracer.Reveal(s.grid)
		if s.tracer.Done() {
			s.status = StatusPathDrawn
			s.log = append(s.log, "Path has been drawn")
		}
	}

	if s.grid.Rise() {
		return
	}
	switch s.status {
	case StatusPathDrawn:
		s.finish(StatusDoneSuccess)
	case StatusPathNotFound:
		s.finish(StatusDoneFail)
	}
}

func (s *Session) detectStuck() {
	for _, w := range s.waves {
		if !w.Exhausted(s.grid, !s.opts.immediateExhaustion) {
			continue
		}
		if w.MarkStuck() {
			s.log = append(s.log, fmt.Sprintf("Wave %d has stopped spreading", w.ID()))
			s.message = []string{
				"There is no path from one corner to the other",
				fmt.Sprintf("Wave %d is being marked as stuck", w.ID()),
				"A stuck wave will not spread any more",
			}
		}
		if s.status != StatusPathNotFound {
			s.status = StatusWaveStuck
		}
	}
}

func (s *Session) finish(st Status) {
	s.status = st
	s.log = append(s.log, "Done")
	s.message = []string{"Press [ENTER] to proceed", "(this closes the session)"}
}

// DefaultTickLimit bounds a headless run for a width×height maze.
func DefaultTickLimit(width, height int) int {
	return 40 + 4*width*height
}

// Run starts the search and ticks until a terminal state, giving up after
// maxTicks. A non-positive maxTicks uses DefaultTickLimit.
func (s *Session) Run(maxTicks int) (Snapshot, error) {
	if maxTicks <= 0 {
		w, h := 1, 1
		if s.grid != nil {
			w, h = s.grid.Width(), s.grid.Height()
		}
		maxTicks = DefaultTickLimit(w, h)
	}
	snap := s.Tick(EventStart)
	for i := 1; !snap.Status.Terminal(); i++ {
		if i >= maxTicks {
			return snap, fmt.Errorf("%w (%d ticks, status %s)", ErrTickLimit, maxTicks, snap.Status)
		}
		snap = s.Tick(EventNone)
	}
	return snap, nil
}
