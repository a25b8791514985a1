package journal

import (
	"slices"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// tally folds events into a SessionSummary as they are appended or read.
type tally struct {
	summary SessionSummary
}

func newTally(id string) *tally {
	return &tally{summary: SessionSummary{ID: id}}
}

func (t *tally) add(ev timer.Event) {
	s := &t.summary
	if s.StartedAt.IsZero() || ev.Timestamp.Before(s.StartedAt) {
		s.StartedAt = ev.Timestamp
	}
	if ev.Timestamp.After(s.EndedAt) {
		s.EndedAt = ev.Timestamp
	}
	s.Remaining = ev.Active

	switch ev.Kind {
	case timer.EventAdded:
		s.Added++
		if ev.Title != "" && !slices.Contains(s.Titles, ev.Title) {
			s.Titles = append(s.Titles, ev.Title)
		}
	case timer.EventExpired:
		s.Expired++
	case timer.EventUpdated:
		s.Updated++
	}
}

// result returns a copy safe to hand to callers.
func (t *tally) result() SessionSummary {
	s := t.summary
	s.Titles = slices.Clone(s.Titles)
	return s
}

// Summarize folds a session's events into a summary.
func Summarize(id string, events []timer.Event) SessionSummary {
	t := newTally(id)
	for _, ev := range events {
		t.add(ev)
	}
	return t.result()
}
