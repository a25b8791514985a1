// Package panels provides the panel components for the multitimer TUI.
package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
// State is passed as strings so panels does not import the parent tui package.
type HeaderProps struct {
	Title       string
	StateSymbol string // e.g. "●", "‖", "✓"
	StateLabel  string // e.g. "RUNNING", "PAUSED", "IDLE"
	Count       int    // timers in the session
	Next        string // soonest timer, e.g. "Eggs 0:42"; empty when none
	Elapsed     time.Duration
	Clock       time.Time
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	name := "multitimer"
	if props.Title != "" {
		name = props.Title
	}
	parts := []string{"⏱ " + name}

	stateLabel := props.StateLabel
	if props.StateSymbol != "" && props.StateLabel != "" {
		stateLabel = props.StateSymbol + " " + props.StateLabel
	}
	if stateLabel != "" {
		parts = append(parts, stateLabel)
	}

	switch props.Count {
	case 1:
		parts = append(parts, "1 timer")
	default:
		parts = append(parts, fmt.Sprintf("%d timers", props.Count))
	}
	if props.Next != "" {
		parts = append(parts, "next: "+props.Next)
	}
	if props.Elapsed > 0 {
		parts = append(parts, fmt.Sprintf("up: %s", FormatElapsed(props.Elapsed)))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04:05"))
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).Render(content)
}
