package timer

import (
	"fmt"
	"strings"
)

// Session owns one Store and one Scheduler and is the only thing that
// mutates them. The presentation layer keeps a pointer to the session, calls
// its methods from its event loop, and learns about changes through hooks.
type Session struct {
	store     *Store
	sched     Scheduler
	clock     Clock
	autoStart bool
	hooks     []func(Event)
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source used for entry and event timestamps.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithAutoStart controls whether Add (re)starts the scheduler. Enabled by
// default: adding a timer resumes ticking even when paused.
func WithAutoStart(on bool) Option {
	return func(s *Session) { s.autoStart = on }
}

// NewSession creates an empty, disabled session.
func NewSession(opts ...Option) *Session {
	s := &Session{clock: SystemClock, autoStart: true}
	for _, opt := range opts {
		opt(s)
	}
	s.store = NewStore(s.clock.Now)
	return s
}

// Subscribe registers fn to receive every event, in registration order.
func (s *Session) Subscribe(fn func(Event)) {
	s.hooks = append(s.hooks, fn)
}

// Add validates and inserts a new timer. Input errors wrap ErrEmptyTitle or
// ErrInvalidDuration.
func (s *Session) Add(title string, seconds int) (Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Entry{}, ErrEmptyTitle
	}
	if seconds <= 0 {
		return Entry{}, fmt.Errorf("add %q with %d seconds: %w", title, seconds, ErrInvalidDuration)
	}
	e := s.store.Insert(title, seconds)
	s.emit(Event{
		Kind:      EventAdded,
		Message:   fmt.Sprintf("%s added (%s)", e.Title, FormatRemaining(e.Remaining)),
		TimerID:   e.ID.String(),
		Title:     e.Title,
		Remaining: e.Remaining,
	})
	if s.autoStart {
		s.start()
	}
	return e, nil
}

// Start enables ticking and returns the live handle. Starting an enabled
// session re-arms it with a fresh handle.
func (s *Session) Start() Handle {
	return s.start()
}

// Stop pauses ticking. Stopping a stopped session does nothing.
func (s *Session) Stop() {
	if !s.sched.Enabled() {
		return
	}
	s.sched.Stop()
	s.emit(Event{Kind: EventStopped, Message: "paused"})
}

// Toggle pauses an enabled session or resumes a paused one and returns the
// live handle (zero when paused). With no timers there is nothing to pause or
// resume and Toggle leaves the state as it is.
func (s *Session) Toggle() Handle {
	if s.store.Len() == 0 {
		return s.sched.Current()
	}
	if s.sched.Enabled() {
		s.Stop()
		return 0
	}
	return s.start()
}

// Tick runs one decrement pass for the stream identified by h. Stale handles
// are dropped with ok=false and must not be rescheduled. Otherwise next is the
// handle the caller arms its following one-shot wait with; it differs from h
// when an expiry forced a restart.
func (s *Session) Tick(h Handle) (next Handle, ok bool) {
	if !s.sched.Live(h) {
		return 0, false
	}
	expired := s.store.DecrementAll()
	s.emit(Event{Kind: EventTick})
	if !expired {
		return h, true
	}

	s.sched.Stop()
	for _, e := range s.store.PurgeExpired() {
		s.emit(Event{
			Kind:    EventExpired,
			Message: e.Title + " finished",
			TimerID: e.ID.String(),
			Title:   e.Title,
		})
	}
	if s.store.Len() == 0 {
		s.emit(Event{Kind: EventAllDone, Message: "all timers finished"})
	}
	next = s.sched.Start()
	s.emit(Event{Kind: EventRestarted})
	return next, true
}

// Update overrides the remaining seconds of the timer with the given ID.
func (s *Session) Update(id ID, seconds int) error {
	if err := s.store.Update(id, seconds); err != nil {
		return err
	}
	e, _ := s.store.Get(id)
	s.emit(Event{
		Kind:      EventUpdated,
		Message:   fmt.Sprintf("%s set to %s", e.Title, FormatRemaining(seconds)),
		TimerID:   id.String(),
		Title:     e.Title,
		Remaining: seconds,
	})
	return nil
}

// Entries returns a snapshot of the timers in display order.
func (s *Session) Entries() []Entry { return s.store.Entries() }

// Len returns the number of timers.
func (s *Session) Len() int { return s.store.Len() }

// Enabled reports whether the session is ticking.
func (s *Session) Enabled() bool { return s.sched.Enabled() }

// Handle returns the live tick handle, or zero when paused.
func (s *Session) Handle() Handle { return s.sched.Current() }

func (s *Session) start() Handle {
	wasEnabled := s.sched.Enabled()
	h := s.sched.Start()
	if !wasEnabled {
		s.emit(Event{Kind: EventStarted, Message: "running"})
	}
	return h
}

func (s *Session) emit(ev Event) {
	ev.Timestamp = s.clock.Now()
	ev.Active = s.store.Len()
	for _, fn := range s.hooks {
		fn(ev)
	}
}
