package session

import (
	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/wave"
)

// WaveState is the read-only view of one wave.
type WaveState struct {
	ID            grid.WaveID
	CurrentPhase  int
	Frontier      int
	Claimed       int
	FoundPath     bool
	Stuck         bool
	StuckProgress grid.Progress
}

// Snapshot is everything a renderer needs to draw one frame. It shares no
// memory with the session.
type Snapshot struct {
	Width   int
	Height  int
	Cells   [][]grid.Cell
	Status  Status
	Log     []string
	Message []string
	Speed   int
	Tick    int
	Waves   []WaveState
	Meeting *wave.Meeting
	Path    []grid.Coord
	Closed  bool

	found bool
}

// Verdict returns whether the goal is reachable. ok is false until the
// session reaches a terminal state.
func (s Snapshot) Verdict() (reachable bool, ok bool) {
	if !s.Status.Terminal() {
		return false, false
	}
	return s.found, true
}

// PathSteps is the number of moves along the revealed path, or -1 when no
// path has been traced.
func (s Snapshot) PathSteps() int {
	if len(s.Path) == 0 {
		return -1
	}
	return len(s.Path) - 1
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:  s.status,
		Log:     append([]string(nil), s.log...),
		Message: append([]string(nil), s.message...),
		Speed:   s.speed,
		Tick:    s.tick,
		Closed:  s.closed,
		found:   s.reachable(),
	}
	if s.grid != nil {
		snap.Width = s.grid.Width()
		snap.Height = s.grid.Height()
		snap.Cells = s.grid.Rows()
	}
	for _, w := range s.waves {
		if w == nil {
			continue
		}
		snap.Waves = append(snap.Waves, WaveState{
			ID:            w.ID(),
			CurrentPhase:  w.CurrentPhase(),
			Frontier:      len(w.Frontier()),
			Claimed:       w.Claimed(),
			FoundPath:     w.FoundPath(),
			Stuck:         w.Stuck(),
			StuckProgress: w.StuckProgress(),
		})
	}
	if s.meeting != nil {
		m := *s.meeting
		snap.Meeting = &m
	}
	if s.tracer != nil {
		snap.Path = s.tracer.Path()
	}
	return snap
}
