package timer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Store is the ordered collection of countdown entries. It is owned by a
// single Session and is not safe for concurrent use; every mutation happens
// on the event loop that drives the session.
type Store struct {
	entries []Entry
	now     func() time.Time
}

// NewStore creates an empty store. now stamps CreatedAt on new entries;
// nil means time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Insert places a new entry at the front of the store, then stable-sorts the
// whole sequence by remaining seconds, longest first. A newer entry therefore
// stays ahead of older entries with the same remaining time.
//
// Titles and durations are validated by the caller; a blank title or a
// non-positive duration here is a programming error and panics.
func (s *Store) Insert(title string, seconds int) Entry {
	if strings.TrimSpace(title) == "" {
		panic("timer: Insert with empty title")
	}
	if seconds <= 0 {
		panic(fmt.Sprintf("timer: Insert with non-positive seconds %d", seconds))
	}
	e := newEntry(title, seconds, s.now())
	s.entries = slices.Insert(s.entries, 0, e)
	slices.SortStableFunc(s.entries, func(a, b Entry) int {
		return cmp.Compare(b.Remaining, a.Remaining)
	})
	return e
}

// DecrementAll takes one second off every entry that still has time left.
// Entries already at zero are left alone. It reports whether any entry is at
// zero after the pass.
func (s *Store) DecrementAll() bool {
	expired := false
	for i := range s.entries {
		if s.entries[i].Remaining >= 1 {
			s.entries[i].Remaining--
		}
		if s.entries[i].Expired() {
			expired = true
		}
	}
	return expired
}

// PurgeExpired removes every entry at zero and returns them in store order.
// Survivors keep their relative order.
func (s *Store) PurgeExpired() []Entry {
	var removed []Entry
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Expired() {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(s.entries[len(kept):])
	s.entries = kept
	return removed
}

// UpdateAt overrides the remaining seconds of the entry at index.
func (s *Store) UpdateAt(index, seconds int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("update index %d of %d: %w", index, len(s.entries), ErrIndexOutOfRange)
	}
	if seconds < 0 {
		return fmt.Errorf("update index %d to %d: %w", index, seconds, ErrNegativeSeconds)
	}
	s.entries[index].Remaining = seconds
	return nil
}

// Update overrides the remaining seconds of the entry with the given ID.
// The store is not re-sorted.
func (s *Store) Update(id ID, seconds int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	if seconds < 0 {
		return fmt.Errorf("update %s to %d: %w", id, seconds, ErrNegativeSeconds)
	}
	s.entries[i].Remaining = seconds
	return nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id ID) (Entry, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns a copy of the entries in display order.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) indexOf(id ID) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
}
