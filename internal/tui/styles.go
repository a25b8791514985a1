// Package tui provides a bubbletea + lipgloss terminal UI for a multitimer
// session: an add form, the running timers and an activity log.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorOrange = lipgloss.Color("#FFA54F")
)

// Styles used across the TUI. Accent-dependent styles live on Theme.
var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	addedStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	runningStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	pausedStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	expiredStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	updatedStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// eventIcon returns the icon shown in front of an activity line.
func eventIcon(kind timer.EventKind) string {
	switch kind {
	case timer.EventAdded:
		return "＋"
	case timer.EventStarted:
		return "▶"
	case timer.EventStopped:
		return "⏸"
	case timer.EventExpired:
		return "⏰"
	case timer.EventAllDone:
		return "✅"
	case timer.EventUpdated:
		return "✏️ "
	default:
		return "·"
	}
}

// eventStyle returns the lipgloss style for an activity line.
func eventStyle(kind timer.EventKind) lipgloss.Style {
	switch kind {
	case timer.EventAdded:
		return addedStyle
	case timer.EventStarted:
		return runningStyle
	case timer.EventStopped:
		return pausedStyle
	case timer.EventExpired:
		return expiredStyle
	case timer.EventAllDone:
		return doneStyle
	case timer.EventUpdated:
		return updatedStyle
	default:
		return infoStyle
	}
}
