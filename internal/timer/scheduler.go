package timer

// Handle identifies one armed tick stream. The zero Handle is never live.
//
// The event loops that drive a Scheduler only offer one-shot timers
// (tea.Tick, Clock.After), so a "repeating" tick is a chain of one-shot
// waits, each carrying the handle it was armed with. Invalidating a handle
// means the next tick carrying it is dropped and the chain is not extended.
type Handle uint64

// Scheduler is the two-state tick state machine: Disabled or Enabled. It
// holds at most one live handle at any time.
type Scheduler struct {
	enabled bool
	current Handle
	minted  Handle
}

// Start invalidates any live handle, arms a fresh one and enables ticking.
// Calling Start twice leaves only the second handle live.
func (s *Scheduler) Start() Handle {
	s.invalidate()
	s.minted++
	s.current = s.minted
	s.enabled = true
	return s.current
}

// Stop invalidates the live handle and disables ticking. It is safe to call
// when already stopped.
func (s *Scheduler) Stop() {
	s.invalidate()
	s.enabled = false
}

// Toggle stops an enabled scheduler or starts a disabled one. It returns the
// new live handle, or zero when it stopped.
func (s *Scheduler) Toggle() Handle {
	if s.enabled {
		s.Stop()
		return 0
	}
	return s.Start()
}

// Live reports whether ticks carrying h should still be processed.
func (s *Scheduler) Live(h Handle) bool {
	return h != 0 && h == s.current
}

// Enabled reports whether the scheduler is ticking.
func (s *Scheduler) Enabled() bool {
	return s.enabled
}

// Current returns the live handle, or zero when disabled.
func (s *Scheduler) Current() Handle {
	return s.current
}

func (s *Scheduler) invalidate() {
	s.current = 0
}
