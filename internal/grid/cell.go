package grid

import "fmt"

// WaveID identifies one of the two search waves.
type WaveID uint8

const (
	// NoWave marks cells that no wave has claimed.
	NoWave WaveID = 0
	// First is anchored at the start cell (0,0).
	First WaveID = 1
	// Second is anchored at the goal cell (width-1,height-1).
	Second WaveID = 2
)

// Other returns the opposing wave.
func (id WaveID) Other() WaveID {
	switch id {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoWave
	}
}

// Kind is the variant tag of a Cell.
type Kind uint8

const (
	// Wall cells are impassable and never claimed.
	Wall Kind = iota
	// Open cells are passable and not yet claimed.
	Open
	// Claimed cells belong permanently to one wave.
	Claimed
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Claimed:
		return "claimed"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Mode is the reveal mode of a claimed cell.
type Mode uint8

const (
	// Regular cells are part of a spreading wave.
	Regular Mode = iota
	// Stuck cells belong to a wave that can no longer spread.
	Stuck
	// OnPath cells are part of the reconstructed path.
	OnPath
)

func (m Mode) String() string {
	switch m {
	case Regular:
		return "regular"
	case Stuck:
		return "stuck"
	case OnPath:
		return "on_path"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Reveal caps for each mode.
const (
	MaxRegularStage = 11
	MaxStuckStage   = 12
	MaxPathStage    = 10
)

// MaxReveal returns the highest stage a cell in mode m can reach.
func MaxReveal(m Mode) int {
	switch m {
	case Stuck:
		return MaxStuckStage
	case OnPath:
		return MaxPathStage
	default:
		return MaxRegularStage
	}
}

// Cell is a tagged variant: Wall, Open, or Claimed. Owner, Phase, Mode and
// Stage are only meaningful when Kind is Claimed.
type Cell struct {
	Kind  Kind
	Owner WaveID
	Phase int
	Mode  Mode
	Stage int
}

// WallCell returns an impassable cell.
func WallCell() Cell { return Cell{Kind: Wall} }

// OpenCell returns a passable, unclaimed cell.
func OpenCell() Cell { return Cell{Kind: Open} }

// ClaimedCell returns a freshly claimed Regular cell at stage 0.
func ClaimedCell(owner WaveID, phase int) Cell {
	return Cell{Kind: Claimed, Owner: owner, Phase: phase, Mode: Regular}
}

// IsClaimed reports whether the cell belongs to a wave.
func (c Cell) IsClaimed() bool { return c.Kind == Claimed }

// OwnedBy reports whether the cell is claimed by id.
func (c Cell) OwnedBy(id WaveID) bool { return c.Kind == Claimed && c.Owner == id }

// Risen reports whether the cell's stage has reached the cap of its mode.
func (c Cell) Risen() bool { return c.Kind == Claimed && c.Stage >= MaxReveal(c.Mode) }

// Progress tracks a timed sweep that may not have started yet.
type Progress uint8

const (
	NotStarted Progress = iota
	InProgress
	Done
)

func (p Progress) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Done:
		return "done"
	}
	return fmt.Sprintf("progress(%d)", uint8(p))
}
