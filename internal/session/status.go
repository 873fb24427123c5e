package session

import "fmt"

// Status is the state of the search automaton.
type Status uint8

const (
	StatusWaitingForInput Status = iota
	StatusSearching
	StatusWaveStuck
	StatusDrawingPath
	StatusPathDrawn
	StatusPathNotFound
	StatusDoneSuccess
	StatusDoneFail
	StatusSpecial
)

var statusNames = map[Status]string{
	StatusWaitingForInput: "waiting_for_input",
	StatusSearching:       "searching",
	StatusWaveStuck:       "wave_stuck",
	StatusDrawingPath:     "drawing_path",
	StatusPathDrawn:       "path_drawn",
	StatusPathNotFound:    "path_not_found",
	StatusDoneSuccess:     "done_success",
	StatusDoneFail:        "done_fail",
	StatusSpecial:         "special",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Active reports whether ticks advance the waves and timers.
func (s Status) Active() bool {
	switch s {
	case StatusSearching, StatusWaveStuck, StatusDrawingPath, StatusPathDrawn, StatusPathNotFound:
		return true
	default:
		return false
	}
}

// Terminal reports whether the verdict is final.
func (s Status) Terminal() bool {
	return s == StatusDoneSuccess || s == StatusDoneFail || s == StatusSpecial
}

// Conclusion is the short verdict text shown next to the grid.
func (s Status) Conclusion() string {
	switch s {
	case StatusDrawingPath, StatusPathDrawn, StatusDoneSuccess, StatusSpecial:
		return "PATH FOUND"
	case StatusWaveStuck, StatusPathNotFound, StatusDoneFail:
		return "THERE IS NO PATH"
	default:
		return "UNKNOWN"
	}
}

// Event is a user intent fed into a tick.
type Event uint8

const (
	EventNone Event = iota
	EventStart
	EventSpeedUp
	EventSpeedDown
	EventAcknowledge
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStart:
		return "start"
	case EventSpeedUp:
		return "speed_up"
	case EventSpeedDown:
		return "speed_down"
	case EventAcknowledge:
		return "acknowledge"
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}
