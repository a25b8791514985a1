package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// Theme holds accent-color-derived styles. Non-accent styles and the palette
// are package-level in styles.go.
type Theme struct {
	accentStyle     lipgloss.Style // header background
	titleStyle      lipgloss.Style // panel titles
	borderFocused   lipgloss.Style // focused panel border
	borderUnfocused lipgloss.Style // unfocused panel border
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		titleStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// TitleStyle returns the style for panel titles.
func (t Theme) TitleStyle() lipgloss.Style {
	return t.titleStyle
}

// PanelBorderStyle returns the border style for a panel based on whether it
// currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// RenderEventLine renders a session event as a single activity line no
// wider than width cells.
func (t Theme) RenderEventLine(ev timer.Event, width int) string {
	ts := timestampStyle.Render(fmt.Sprintf("[%s]", ev.Timestamp.Format("15:04:05")))

	text := singleLine(ev.Message)
	if text == "" {
		text = ev.Kind.String()
	}
	maxText := width - 14 // timestamp, icon and gaps
	if maxText < 10 {
		maxText = 10
	}
	text = runewidth.Truncate(text, maxText, "…")

	return fmt.Sprintf("%s  %s", ts, eventStyle(ev.Kind).Render(eventIcon(ev.Kind)+" "+text))
}

// singleLine collapses newlines so one event stays on one row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
