// Package timer implements the multi-timer core: an ordered store of named
// countdowns, a one-second tick scheduler, and the Session that ties them to
// the single event loop that drives them.
package timer

import (
	"time"

	"github.com/google/uuid"
)

// ID is the stable identity of an Entry. Row positions shift under sort and
// purge, so anything that refers back to an entry must use its ID.
type ID = uuid.UUID

// Entry is one named countdown.
type Entry struct {
	ID        ID
	Title     string
	Remaining int // seconds left, never negative
	Duration  int // seconds the entry was created with
	CreatedAt time.Time
}

// Expired reports whether the entry has reached zero.
func (e Entry) Expired() bool {
	return e.Remaining <= 0
}

func newEntry(title string, seconds int, now time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Title:     title,
		Remaining: seconds,
		Duration:  seconds,
		CreatedAt: now,
	}
}
