package tui

import (
	"fmt"
	"testing"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

func TestEventIcon(t *testing.T) {
	tests := []struct {
		kind timer.EventKind
		want string
	}{
		{timer.EventAdded, "＋"},
		{timer.EventStarted, "▶"},
		{timer.EventStopped, "⏸"},
		{timer.EventExpired, "⏰"},
		{timer.EventAllDone, "✅"},
		{timer.EventUpdated, "✏️ "},
		// default case
		{timer.EventTick, "·"},
		{timer.EventRestarted, "·"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := eventIcon(tt.kind); got != tt.want {
				t.Errorf("eventIcon(%v) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestEventStyle(t *testing.T) {
	tests := []struct {
		kind timer.EventKind
		want string
	}{
		{timer.EventAdded, string(colorBlue)},
		{timer.EventStarted, string(colorGreen)},
		{timer.EventStopped, string(colorYellow)},
		{timer.EventExpired, string(colorRed)},
		{timer.EventAllDone, string(colorGreen)},
		{timer.EventUpdated, string(colorOrange)},
		{timer.EventTick, string(colorWhite)},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			fg := eventStyle(tt.kind).GetForeground()
			if got := fmt.Sprint(fg); got != tt.want {
				t.Errorf("eventStyle(%v) foreground = %v, want %s", tt.kind, fg, tt.want)
			}
		})
	}

	if !eventStyle(timer.EventExpired).GetBold() {
		t.Error("expired lines should be bold")
	}
}
