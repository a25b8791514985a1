package panels

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// EditTimerRequestMsg is emitted when the user confirms a new remaining time
// for a timer. Defined here (not in parent tui package) to avoid circular
// imports.
type EditTimerRequestMsg struct {
	ID      timer.ID
	Seconds int
}

// timerItem implements list.Item for one timer.
type timerItem struct {
	entry timer.Entry
}

func (i timerItem) Title() string       { return i.entry.Title }
func (i timerItem) Description() string { return timer.FormatRemaining(i.entry.Remaining) }
func (i timerItem) FilterValue() string { return i.entry.Title }

// timerDelegate renders one timer per row: title on the left, remaining
// time right-aligned.
type timerDelegate struct{}

func (d timerDelegate) Height() int                             { return 1 }
func (d timerDelegate) Spacing() int                            { return 0 }
func (d timerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d timerDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(timerItem)
	if !ok {
		return
	}
	row := formatRow(item.Title(), item.Description(), m.Width()-2)
	if index == m.Index() {
		row = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Render("> " + row)
	} else {
		row = "  " + row
	}
	_, _ = fmt.Fprint(w, row)
}

// formatRow lays out title and remaining time in width cells, truncating
// the title when both do not fit.
func formatRow(title, remaining string, width int) string {
	titleW := width - runewidth.StringWidth(remaining) - 1
	if titleW < 1 {
		titleW = 1
	}
	title = runewidth.Truncate(title, titleW, "…")
	return runewidth.FillRight(title, titleW) + " " + remaining
}

// TimersPanel lists the session's timers and hosts the inline editor for
// the selected timer's remaining time.
type TimersPanel struct {
	list    list.Model
	entries []timer.Entry
	width   int
	height  int

	input   textinput.Model
	editing bool
	editID  timer.ID
	editErr string
}

// NewTimersPanel creates an empty timers panel.
func NewTimersPanel(w, h int) TimersPanel {
	l := list.New(nil, timerDelegate{}, w, h)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	// The root model owns quitting; esc must not end the program from here.
	// SetItems re-enables bindings from this flag, so disable through it.
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Placeholder = "1:30"
	ti.CharLimit = 9
	if w > 4 {
		ti.Width = w - 4
	}

	return TimersPanel{
		list:   l,
		width:  w,
		height: h,
		input:  ti,
	}
}

// SetEntries replaces the listed timers, keeping the selection on the same
// timer when it still exists.
func (p TimersPanel) SetEntries(entries []timer.Entry) TimersPanel {
	selected, hadSelection := p.Selected()
	p.entries = entries
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = timerItem{entry: e}
	}
	p.list.SetItems(items)

	if hadSelection {
		for i, e := range entries {
			if e.ID == selected.ID {
				p.list.Select(i)
				break
			}
		}
	}
	if p.editing {
		if _, ok := p.find(p.editID); !ok {
			// The timer being edited expired underneath the editor.
			p = p.closeEditor()
		}
	}
	return p
}

// Selected returns the highlighted timer.
func (p TimersPanel) Selected() (timer.Entry, bool) {
	if item, ok := p.list.SelectedItem().(timerItem); ok {
		return item.entry, true
	}
	return timer.Entry{}, false
}

// Editing reports whether the inline editor is open.
func (p TimersPanel) Editing() bool {
	return p.editing
}

// SetSize resizes the panel.
func (p TimersPanel) SetSize(w, h int) TimersPanel {
	p.width = w
	p.height = h
	p.list.SetSize(w, h)
	if w > 4 {
		p.input.Width = w - 4
	}
	return p
}

// Update handles key/mouse messages for the panel.
func (p TimersPanel) Update(msg tea.Msg) (TimersPanel, tea.Cmd) {
	if p.editing {
		return p.updateEditor(msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			p.list, cmd = p.list.Update(tea.KeyMsg{Type: tea.KeyDown})
		case "k", "up":
			p.list, cmd = p.list.Update(tea.KeyMsg{Type: tea.KeyUp})
		case "e":
			if sel, ok := p.Selected(); ok {
				p.editing = true
				p.editID = sel.ID
				p.editErr = ""
				p.input.SetValue(timer.FormatRemaining(sel.Remaining))
				p.input.CursorEnd()
				p.input.Focus()
				return p, textinput.Blink
			}
		default:
			p.list, cmd = p.list.Update(msg)
		}
	default:
		p.list, cmd = p.list.Update(msg)
	}
	return p, cmd
}

func (p TimersPanel) updateEditor(msg tea.Msg) (TimersPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return p.closeEditor(), nil
		case "enter":
			seconds, err := parseEdit(p.input.Value())
			if err != nil {
				p.editErr = "use seconds or m:ss"
				return p, nil
			}
			id := p.editID
			p = p.closeEditor()
			return p, func() tea.Msg { return EditTimerRequestMsg{ID: id, Seconds: seconds} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p TimersPanel) closeEditor() TimersPanel {
	p.editing = false
	p.editErr = ""
	p.input.Blur()
	p.input.Reset()
	return p
}

func (p TimersPanel) find(id timer.ID) (timer.Entry, bool) {
	for _, e := range p.entries {
		if e.ID == id {
			return e, true
		}
	}
	return timer.Entry{}, false
}

// parseEdit accepts anything ParseSeconds does plus an explicit zero, which
// finishes the timer on the next tick.
func parseEdit(text string) (int, error) {
	n, err := timer.ParseSeconds(text)
	if err == nil {
		return n, nil
	}
	text = strings.TrimSpace(text)
	if text != "" && strings.Trim(text, "0:") == "" {
		return 0, nil
	}
	return 0, err
}

// View renders the timers panel.
func (p TimersPanel) View() string {
	if p.editing {
		title := ""
		if e, ok := p.find(p.editID); ok {
			title = e.Title
		}
		prompt := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Render("Set " + runewidth.Truncate(title, p.width-8, "…") + " to:")
		hint := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Render("Enter to set · Esc to cancel")
		if p.editErr != "" {
			hint = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B")).
				Render(p.editErr)
		}
		content := lipgloss.JoinVertical(lipgloss.Left,
			prompt,
			p.input.View(),
			hint,
		)
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Render(content)
	}
	if len(p.entries) == 0 {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("No timers yet")
	}
	return p.list.View()
}
