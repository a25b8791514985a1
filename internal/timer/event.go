package timer

import (
	"fmt"
	"time"
)

// EventKind identifies the type of a session event.
type EventKind int

const (
	EventAdded     EventKind = iota // Timer inserted
	EventStarted                    // Scheduler enabled by the user or by an add
	EventStopped                    // Scheduler disabled (pause)
	EventTick                       // One decrement pass completed
	EventExpired                    // Timer reached zero and was removed
	EventAllDone                    // Last remaining timer expired
	EventRestarted                  // Tick re-armed after a purge
	EventUpdated                    // Remaining seconds overridden
)

var eventKindNames = map[EventKind]string{
	EventAdded:     "added",
	EventStarted:   "started",
	EventStopped:   "stopped",
	EventTick:      "tick",
	EventExpired:   "expired",
	EventAllDone:   "all_done",
	EventRestarted: "restarted",
	EventUpdated:   "updated",
}

// String returns the journal name of the kind.
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name so journals stay readable.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *EventKind) UnmarshalText(text []byte) error {
	for kind, name := range eventKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// Event is a structured change notification emitted by a Session. Hooks
// registered with Session.Subscribe receive every event synchronously.
type Event struct {
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"ts"`
	Message   string    `json:"msg,omitempty"`

	// Timer fields, set for Added, Expired and Updated.
	TimerID   string `json:"timer_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Remaining int    `json:"remaining,omitempty"`

	// Active is the number of timers in the store after the change.
	Active int `json:"active"`
}
