package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(t *testing.T, p FormPanel, text string) FormPanel {
	t.Helper()
	for _, r := range text {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func filledForm(t *testing.T, title, seconds string) FormPanel {
	t.Helper()
	p, _ := NewFormPanel(40, 4).Focus(FieldTitle)
	p = typeInto(t, p, title)
	p, _ = p.Focus(FieldSeconds)
	return typeInto(t, p, seconds)
}

func TestFormPanel_TypingGoesToFocusedField(t *testing.T) {
	p := filledForm(t, "Tea", "90")
	title, seconds := p.Values()
	if title != "Tea" || seconds != "90" {
		t.Errorf("Values() = %q, %q; want Tea, 90", title, seconds)
	}
	if p.Field() != FieldSeconds {
		t.Errorf("Field() = %v, want FieldSeconds", p.Field())
	}
}

func TestFormPanel_UnfocusedIgnoresTyping(t *testing.T) {
	p := typeInto(t, NewFormPanel(40, 4), "Tea")
	if title, _ := p.Values(); title != "" {
		t.Errorf("unfocused form accepted input: %q", title)
	}
}

func TestFormPanel_SubmitValid(t *testing.T) {
	p := filledForm(t, "  Tea ", "1:30")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("valid submit should return a command")
	}
	msg, ok := cmd().(AddTimerRequestMsg)
	if !ok {
		t.Fatalf("expected AddTimerRequestMsg, got %T", cmd())
	}
	if msg.Title != "Tea" || msg.Seconds != 90 {
		t.Errorf("request = %+v, want Tea/90", msg)
	}

	title, seconds := p.Values()
	if title != "" || seconds != "" {
		t.Errorf("inputs not cleared after add: %q, %q", title, seconds)
	}
	if p.Field() != FieldTitle {
		t.Error("focus should return to the title after add")
	}
}

func TestFormPanel_SubmitInvalidIsInert(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		seconds string
	}{
		{"empty", "", ""},
		{"no title", "", "90"},
		{"blank title", "   ", "90"},
		{"no duration", "Tea", ""},
		{"zero duration", "Tea", "0"},
		{"garbage duration", "Tea", "abc"},
		{"bad clock", "Tea", "1:75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filledForm(t, tt.title, tt.seconds)
			if p.Validate() == nil {
				t.Fatal("Validate() should fail")
			}
			p2, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd != nil {
				t.Error("invalid submit should not return a command")
			}
			title, seconds := p2.Values()
			if title != tt.title || seconds != tt.seconds {
				t.Error("invalid submit must keep the typed values")
			}
		})
	}
}

func TestFormPanel_View(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		seconds string
		want    string
	}{
		{"empty", "", "", "Title and duration"},
		{"missing title", "", "90", "Needs a title"},
		{"bad duration", "Tea", "x", "Duration: seconds"},
		{"ready", "Tea", "90", "Enter to add"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := filledForm(t, tt.title, tt.seconds).View("Add timer")
			if !strings.Contains(view, tt.want) {
				t.Errorf("View() missing %q; got %q", tt.want, view)
			}
			if !strings.Contains(view, "Add timer") {
				t.Errorf("View() missing header; got %q", view)
			}
		})
	}
}

func TestFormPanel_Blur(t *testing.T) {
	p := filledForm(t, "Tea", "90").Blur()
	p = typeInto(t, p, "5")
	if _, seconds := p.Values(); seconds != "90" {
		t.Errorf("blurred form accepted input: %q", seconds)
	}
}
