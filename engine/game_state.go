package engine

// State is the run state machine position
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// validTransitions lists the edges reachable through the control surface and ticks
// Reset (any → Idle) is accepted separately by CanTransition
var validTransitions = map[State][]State{
	StateIdle:    {StateRunning},
	StateRunning: {StatePaused, StateOver},
	StatePaused:  {StateRunning},
	StateOver:    {StateRunning},
}

// CanTransition reports whether from → to is a legal state change
func CanTransition(from, to State) bool {
	if to == StateIdle {
		return true
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
