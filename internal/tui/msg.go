package tui

import (
	"time"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// tickMsg is one countdown step for the stream armed with handle. Ticks for
// a handle the session no longer holds are dropped.
type tickMsg struct {
	handle timer.Handle
	at     time.Time
}

// clockMsg is sent every second for the header clock.
type clockMsg time.Time
