// Package tui runs a session interactively in the terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CodexForgeBR/can-exit/internal/render"
	"github.com/CodexForgeBR/can-exit/internal/session"
)

// ErrAborted is returned by Run when the user quits before the search has
// reached a verdict.
var ErrAborted = errors.New("aborted by user")

type tickMsg struct{}

// Model is the bubbletea model wrapping one session. Key presses are queued
// and fed to the session one per tick.
type Model struct {
	session *session.Session
	snap    session.Snapshot
	pending []session.Event
	aborted bool
}

// New wraps s.
func New(s *session.Session) Model {
	return Model{session: s, snap: s.Snapshot()}
}

// Snapshot returns the last frame.
func (m Model) Snapshot() session.Snapshot { return m.snap }

// Aborted reports whether the user quit early.
func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd {
	return tickAfter(m.snap.Speed)
}

func tickAfter(speed int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(session.ClampSpeed(speed)), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

var keyEvents = map[string]session.Event{
	" ":     session.EventStart,
	"space": session.EventStart,
	"up":    session.EventSpeedUp,
	"down":  session.EventSpeedDown,
	"enter": session.EventAcknowledge,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Quitting after the verdict is shown is not an abort.
			m.aborted = !m.snap.Status.Terminal()
			return m, tea.Quit
		}
		if ev, ok := keyEvents[msg.String()]; ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tickMsg:
		ev := session.EventNone
		if len(m.pending) > 0 {
			ev = m.pending[0]
			m.pending = m.pending[1:]
		}
		m.snap = m.session.Tick(ev)
		if m.snap.Closed {
			return m, tea.Quit
		}
		return m, tickAfter(m.snap.Speed)
	}
	return m, nil
}

func (m Model) View() string {
	return render.Styled(m.snap) + "\n\n" + render.StatusLine(m.snap) + "   [Q] quit\n"
}

// Run shows the session until the user acknowledges the verdict or quits.
// Cancelling ctx stops the program.
func Run(ctx context.Context, s *session.Session) (session.Snapshot, error) {
	p := tea.NewProgram(New(s), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return s.Snapshot(), ctxErr
	}
	if err != nil {
		return s.Snapshot(), err
	}
	m, ok := final.(Model)
	if !ok {
		return s.Snapshot(), nil
	}
	if m.Aborted() {
		return m.Snapshot(), ErrAborted
	}
	return m.Snapshot(), nil
}
