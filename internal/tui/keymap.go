package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the root model's key bindings. Panel-internal keys (list
// navigation, text editing) are handled by the panels themselves.
type KeyMap struct {
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Toggle      key.Binding // timers and activity panels only
	ToggleAny   key.Binding // works while typing
	Quit        key.Binding // timers and activity panels only
	ForceQuit   key.Binding
	Leave       key.Binding
	Submit      key.Binding
	Edit        key.Binding
	Follow      key.Binding
	NavigateRow key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		ToggleAny: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pause")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "timers")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Follow:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow")),
		NavigateRow: key.NewBinding(key.WithKeys("j", "k", "up", "down"),
			key.WithHelp("j/k", "select")),
	}
}

// Hints returns the footer hint text for the given focus. hasTimers and
// enabled pick the pause/resume wording; the toggle is only offered while
// there is something to pause.
func (k KeyMap) Hints(focus FocusTarget, hasTimers, enabled bool) string {
	var bindings []key.Binding
	switch focus {
	case FocusTitle, FocusSeconds:
		bindings = append(bindings, k.Submit, k.Leave)
		if hasTimers {
			bindings = append(bindings, withVerb(k.ToggleAny, enabled))
		}
	case FocusTimers:
		bindings = append(bindings, k.NavigateRow)
		if hasTimers {
			bindings = append(bindings, k.Edit, withVerb(k.Toggle, enabled))
		}
		bindings = append(bindings, k.Quit)
	case FocusActivity:
		bindings = append(bindings, k.Follow)
		if hasTimers {
			bindings = append(bindings, withVerb(k.Toggle, enabled))
		}
		bindings = append(bindings, k.Quit)
	}
	bindings = append(bindings, k.NextFocus)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// withVerb relabels a toggle binding as pause or resume.
func withVerb(b key.Binding, enabled bool) key.Binding {
	verb := "resume"
	if enabled {
		verb = "pause"
	}
	b.SetHelp(b.Help().Key, verb)
	return b
}
