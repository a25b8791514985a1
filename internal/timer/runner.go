package timer

import (
	"context"
	"time"
)

// DefaultInterval is the tick period.
const DefaultInterval = time.Second

// Runner drives a Session without a terminal UI. All session calls happen on
// the goroutine that called Run.
type Runner struct {
	Session  *Session
	Clock    Clock         // defaults to SystemClock
	Interval time.Duration // defaults to DefaultInterval
}

// Run ticks the session until every timer has finished, returning nil, or
// until ctx is cancelled, returning ctx.Err(). A paused session is started.
func (r *Runner) Run(ctx context.Context) error {
	clock := r.Clock
	if clock == nil {
		clock = SystemClock
	}
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	if r.Session.Len() == 0 {
		return nil
	}
	h := r.Session.Handle()
	if h == 0 {
		h = r.Session.Start()
	}

	for {
		select {
		case <-ctx.Done():
			r.Session.Stop()
			return ctx.Err()
		case <-clock.After(interval):
		}

		next, ok := r.Session.Tick(h)
		if !ok {
			// Something re-armed the session outside this loop; follow it.
			next = r.Session.Handle()
		}
		if r.Session.Len() == 0 {
			r.Session.Stop()
			return nil
		}
		if next == 0 {
			next = r.Session.Start()
		}
		h = next
	}
}
