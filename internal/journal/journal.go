// Package journal persists session events to an append-only JSONL log, one
// file per multitimer invocation, and summarises past sessions for the
// history and status commands. Timers are never restored from a journal.
package journal

import (
	"time"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// Ext is the file extension of session journals.
const Ext = ".jsonl"

// Writer persists session events to durable storage.
type Writer interface {
	Append(ev timer.Event) error
	Close() error
}

// SessionSummary summarises one session journal.
type SessionSummary struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Added     int
	Expired   int
	Updated   int
	Titles    []string // distinct titles in the order they were added
	Remaining int      // timers still active at the last event
}

// Duration is the wall time between the first and last event.
func (s SessionSummary) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Recorded reports whether an event kind belongs in a journal. Per-second
// ticks and restarts are high-volume bookkeeping and are left out.
func Recorded(kind timer.EventKind) bool {
	switch kind {
	case timer.EventTick, timer.EventRestarted:
		return false
	}
	return true
}
