package panels

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// AddTimerRequestMsg is emitted when the user submits a valid add form.
type AddTimerRequestMsg struct {
	Title   string
	Seconds int
}

// FormField identifies one of the add form inputs.
type FormField int

const (
	FieldTitle FormField = iota
	FieldSeconds
)

// FormPanel is the add form: a title input and a duration input. Submitting
// is inert until both hold usable values.
type FormPanel struct {
	title   textinput.Model
	seconds textinput.Model
	field   FormField
	focused bool
	width   int
	height  int
}

// NewFormPanel creates an empty, unfocused add form.
func NewFormPanel(w, h int) FormPanel {
	title := textinput.New()
	title.Prompt = "Title    "
	title.Placeholder = "Tea"
	title.CharLimit = 64

	seconds := textinput.New()
	seconds.Prompt = "Duration "
	seconds.Placeholder = "90 or 1:30"
	seconds.CharLimit = 9

	p := FormPanel{title: title, seconds: seconds}
	return p.SetSize(w, h)
}

// Focus moves keyboard focus to field.
func (p FormPanel) Focus(field FormField) (FormPanel, tea.Cmd) {
	p.field = field
	p.focused = true
	if field == FieldTitle {
		p.seconds.Blur()
		return p, p.title.Focus()
	}
	p.title.Blur()
	return p, p.seconds.Focus()
}

// Blur releases keyboard focus. Typed values are kept.
func (p FormPanel) Blur() FormPanel {
	p.focused = false
	p.title.Blur()
	p.seconds.Blur()
	return p
}

// Field returns the input that has (or last had) focus.
func (p FormPanel) Field() FormField {
	return p.field
}

// Values returns the raw input values.
func (p FormPanel) Values() (title, seconds string) {
	return p.title.Value(), p.seconds.Value()
}

// Validate checks the current input. It returns nil when submitting would
// add a timer.
func (p FormPanel) Validate() error {
	_, _, err := timer.ValidateInput(p.title.Value(), p.seconds.Value())
	return err
}

// SetSize resizes the panel.
func (p FormPanel) SetSize(w, h int) FormPanel {
	p.width = w
	p.height = h
	if iw := w - len(p.title.Prompt) - 1; iw > 0 {
		p.title.Width = iw
		p.seconds.Width = iw
	}
	return p
}

// Update handles key messages for the focused input. Enter submits; the
// form is cleared and focus returns to the title after a successful add.
func (p FormPanel) Update(msg tea.Msg) (FormPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		title, seconds, err := timer.ValidateInput(p.title.Value(), p.seconds.Value())
		if err != nil {
			return p, nil
		}
		p.title.Reset()
		p.seconds.Reset()
		if p.focused {
			p, _ = p.Focus(FieldTitle)
		}
		return p, func() tea.Msg {
			return AddTimerRequestMsg{Title: title, Seconds: seconds}
		}
	}

	var cmd tea.Cmd
	if p.field == FieldTitle {
		p.title, cmd = p.title.Update(msg)
	} else {
		p.seconds, cmd = p.seconds.Update(msg)
	}
	return p, cmd
}

// hint explains what the form still needs, or how to submit it.
func (p FormPanel) hint() (string, bool) {
	err := p.Validate()
	switch {
	case err == nil:
		return "Enter to add", true
	case p.title.Value() == "" && p.seconds.Value() == "":
		return "Title and duration", false
	case errors.Is(err, timer.ErrEmptyTitle):
		return "Needs a title", false
	default:
		return "Duration: seconds, m:ss or h:mm:ss", false
	}
}

// View renders the form. header is the styled panel title.
func (p FormPanel) View(header string) string {
	text, ok := p.hint()
	color := lipgloss.Color("#888888")
	if ok {
		color = lipgloss.Color("#6BCB77")
	}
	hint := lipgloss.NewStyle().Foreground(color).Render(text)

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		p.title.View(),
		p.seconds.View(),
		hint,
	)
	return lipgloss.NewStyle().
		Width(p.width).Height(p.height).
		Render(content)
}
