// Package pacer plays a session without a terminal UI, one frame per tick at
// the session's animation speed.
package pacer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/CodexForgeBR/can-exit/internal/session"
)

// Interval returns the pause between two ticks at speed steps per second.
func Interval(speed int) time.Duration {
	return time.Second / time.Duration(session.ClampSpeed(speed))
}

// Wait blocks for d or until ctx is done.
// Returns immediately if d is not positive.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Pacer writes frames of a running session.
type Pacer struct {
	// Out receives one rendered frame per tick. Nil discards frames.
	Out io.Writer
	// Frame renders a snapshot.
	Frame func(session.Snapshot) string
	// MaxTicks bounds the run; non-positive uses session.DefaultTickLimit.
	MaxTicks int
	// Interval overrides the pause between ticks.
	Interval func(speed int) time.Duration
}

// Play starts s and ticks it until a terminal state, writing a frame after
// every tick. It stops early when ctx is cancelled or the tick limit is hit.
func (p *Pacer) Play(ctx context.Context, s *session.Session) (session.Snapshot, error) {
	interval := p.Interval
	if interval == nil {
		interval = Interval
	}

	snap := s.Tick(session.EventStart)
	maxTicks := p.MaxTicks
	if maxTicks <= 0 {
		maxTicks = session.DefaultTickLimit(snap.Width, snap.Height)
	}

	for i := 1; ; i++ {
		if err := p.write(snap); err != nil {
			return snap, err
		}
		if snap.Status.Terminal() {
			return snap, nil
		}
		if i >= maxTicks {
			return snap, fmt.Errorf("%w (%d ticks, status %s)", session.ErrTickLimit, maxTicks, snap.Status)
		}
		if err := Wait(ctx, interval(snap.Speed)); err != nil {
			return snap, err
		}
		snap = s.Tick(session.EventNone)
	}
}

func (p *Pacer) write(snap session.Snapshot) error {
	if p.Out == nil || p.Frame == nil {
		return nil
	}
	if _, err := fmt.Fprintf(p.Out, "%s\n\n", p.Frame(snap)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
