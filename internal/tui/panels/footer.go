package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Hints  string // key hints for the focused panel, built by the caller
	Notice string // last problem worth showing, e.g. a rejected edit
}

// RenderFooter renders the footer bar: the notice on the left, key hints on
// the right. The notice is truncated first when space runs out.
func RenderFooter(props FooterProps, width int) string {
	right := props.Hints
	left := props.Notice

	room := width - runewidth.StringWidth(right) - 2
	if room < 0 {
		room = 0
	}
	left = runewidth.Truncate(left, room, "…")

	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 2 {
		gap = 2
	}
	return footerStyle.Width(width).Render(noticeStyle.Render(left) + strings.Repeat(" ", gap) + right)
}
