package tui

// FocusTarget identifies which input or panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusTitle    FocusTarget = iota // Add form, title input
	FocusSeconds                     // Add form, seconds input
	FocusTimers                      // Timers list
	FocusActivity                    // Activity log
)

const focusCount = 4

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % focusCount
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + focusCount - 1) % focusCount
}

// InForm reports whether focus is on one of the add form inputs.
func (f FocusTarget) InForm() bool {
	return f == FocusTitle || f == FocusSeconds
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusTitle:
		return "title"
	case FocusSeconds:
		return "seconds"
	case FocusTimers:
		return "timers"
	case FocusActivity:
		return "activity"
	default:
		return "unknown"
	}
}

// ClockState is what the header reports about the session.
type ClockState int

const (
	StateIdle    ClockState = iota // No timers
	StateRunning                   // Timers counting down
	StatePaused                    // Timers present, ticking disabled
)

// validTransitions defines the allowed ClockState transitions.
var validTransitions = map[ClockState][]ClockState{
	StateIdle:    {StateRunning, StatePaused},
	StateRunning: {StatePaused, StateIdle},
	StatePaused:  {StateRunning, StateIdle},
}

// CanTransitionTo reports whether transitioning from s to next is valid.
func (s ClockState) CanTransitionTo(next ClockState) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// deriveState maps the session's scheduler flag and timer count to a state.
// An enabled session with no timers is idle: nothing is counting down.
func deriveState(enabled bool, count int) ClockState {
	switch {
	case count == 0:
		return StateIdle
	case enabled:
		return StateRunning
	default:
		return StatePaused
	}
}

// Label returns a short uppercase label for the state.
func (s ClockState) Label() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns a single-character symbol representing the state.
func (s ClockState) Symbol() string {
	switch s {
	case StateIdle:
		return "✓"
	case StateRunning:
		return "●"
	case StatePaused:
		return "‖"
	default:
		return "?"
	}
}
