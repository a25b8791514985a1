// Package components holds reusable widgets for the multitimer TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// LogView is a scrollable, bounded log panel that wraps bubbles/viewport.
// In follow mode (default) new lines scroll the view to the bottom; scrolling
// up by key or mouse leaves follow mode until ToggleFollow turns it back on.
type LogView struct {
	vp     viewport.Model
	lines  []string // rendered (pre-styled) lines, oldest first
	limit  int      // max lines kept; 0 = unlimited
	follow bool
	width  int
	height int
}

// NewLogView creates a LogView with the given dimensions, initially in
// follow mode and without a line limit.
func NewLogView(w, h int) LogView {
	return LogView{
		vp:     viewport.New(w, h),
		follow: true,
		width:  w,
		height: h,
	}
}

// SetLimit caps the number of lines kept, dropping the oldest. 0 removes the
// cap.
func (v LogView) SetLimit(n int) LogView {
	if n < 0 {
		n = 0
	}
	v.limit = n
	v.trim()
	v.refresh()
	return v
}

// AppendLine appends a pre-rendered line, dropping the oldest line when the
// limit is reached.
func (v LogView) AppendLine(rendered string) LogView {
	v.lines = append(v.lines, rendered)
	v.trim()
	v.refresh()
	return v
}

// Len returns the number of lines held.
func (v LogView) Len() int {
	return len(v.lines)
}

// ToggleFollow switches follow mode on or off.
// When turned on, scrolls immediately to the bottom.
func (v LogView) ToggleFollow() LogView {
	v.follow = !v.follow
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// SetSize resizes the log view to the given dimensions.
func (v LogView) SetSize(w, h int) LogView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Following reports whether follow mode is currently active.
func (v LogView) Following() bool {
	return v.follow
}

// Update handles bubbletea messages (scroll keys, mouse events).
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	if v.follow && !v.vp.AtBottom() {
		// Resizes can move the offset too; only user scrolling leaves follow.
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			v.follow = false
		}
	}
	return v, cmd
}

// View renders the log view content.
func (v LogView) View() string {
	return v.vp.View()
}

func (v *LogView) trim() {
	if v.limit > 0 && len(v.lines) > v.limit {
		v.lines = append([]string(nil), v.lines[len(v.lines)-v.limit:]...)
	}
}

func (v *LogView) refresh() {
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
}
