package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/debug"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/tui/panels"
)

// Settings configures the TUI.
type Settings struct {
	Title         string
	AccentColor   string
	Interval      time.Duration // countdown step; timer.DefaultInterval when zero
	ActivityLines int           // activity lines kept; 0 = unlimited
}

// eventSink collects session events between Update calls. Session hooks run
// synchronously inside session calls made from Update, so no locking is
// needed.
type eventSink struct {
	events []timer.Event
}

func (s *eventSink) hook(ev timer.Event) {
	switch ev.Kind {
	case timer.EventTick, timer.EventRestarted:
		return
	}
	s.events = append(s.events, ev)
}

func (s *eventSink) drain() []timer.Event {
	out := s.events
	s.events = nil
	return out
}

// Model is the root bubbletea model for the multitimer TUI.
type Model struct {
	session  *timer.Session
	sink     *eventSink
	interval time.Duration
	armed    timer.Handle // handle of the tick chain currently in flight

	// Sub-panels
	form     panels.FormPanel
	timers   panels.TimersPanel
	activity components.LogView

	// Layout and focus
	layout Layout
	focus  FocusTarget
	theme  Theme
	keys   KeyMap
	width  int
	height int

	state  ClockState
	notice string

	title     string
	startedAt time.Time
	now       time.Time
}

// New creates the TUI Model for session. Timers already in the session are
// listed, and ticking resumes if the session is enabled.
func New(session *timer.Session, settings Settings) Model {
	now := time.Now()
	interval := settings.Interval
	if interval <= 0 {
		interval = timer.DefaultInterval
	}
	th := NewTheme(settings.AccentColor)
	layout := Calculate(80, 24)

	formW, formH := innerDims(layout.Form)
	timersW, timersH := innerDims(layout.Timers)
	actW, actH := innerDims(layout.Activity)

	sink := &eventSink{}
	session.Subscribe(sink.hook)

	m := Model{
		session:   session,
		sink:      sink,
		interval:  interval,
		form:      panels.NewFormPanel(formW, formH),
		timers:    panels.NewTimersPanel(timersW, timersH),
		activity:  components.NewLogView(actW, actH).SetLimit(settings.ActivityLines),
		layout:    layout,
		focus:     FocusTimers,
		theme:     th,
		keys:      DefaultKeyMap(),
		width:     80,
		height:    24,
		title:     settings.Title,
		startedAt: now,
		now:       now,
	}

	for _, e := range session.Entries() {
		m.activity = m.activity.AppendLine(th.RenderEventLine(timer.Event{
			Kind:      timer.EventAdded,
			Timestamp: e.CreatedAt,
			Message:   fmt.Sprintf("%s added (%s)", e.Title, timer.FormatRemaining(e.Remaining)),
		}, layout.Activity.Width))
	}
	if session.Len() == 0 {
		// Nothing to select yet; start where the user will type.
		m.focus = FocusTitle
		m.form, _ = m.form.Focus(panels.FieldTitle)
	}
	m.armed = session.Handle()
	m.sync()
	return m
}

// Init returns the initial commands: clock ticker, cursor blink and, when the
// session is already running, the first countdown tick.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockCmd()}
	if m.focus.InForm() {
		cmds = append(cmds, textinput.Blink)
	}
	if m.armed != 0 {
		cmds = append(cmds, tickCmd(m.armed, m.interval))
	}
	return tea.Batch(cmds...)
}

// tickCmd schedules the next countdown step for handle h.
func tickCmd(h timer.Handle, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{handle: h, at: t}
	})
}

// clockCmd schedules the next one-second clock tick.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick(msg)
	case clockMsg:
		m.now = time.Time(msg)
		return m, clockCmd()
	case panels.AddTimerRequestMsg:
		return m.handleAdd(msg)
	case panels.EditTimerRequestMsg:
		return m.handleEdit(msg)
	}
	return m.delegateToFocused(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	if !m.layout.TooSmall {
		formW, formH := innerDims(m.layout.Form)
		timersW, timersH := innerDims(m.layout.Timers)
		actW, actH := innerDims(m.layout.Activity)
		m.form = m.form.SetSize(formW, formH)
		m.timers = m.timers.SetSize(timersW, timersH)
		m.activity = m.activity.SetSize(actW, actH)
	}
	return m, nil
}

// typing reports whether printable keys belong to a text input.
func (m Model) typing() bool {
	return m.focus.InForm() || (m.focus == FocusTimers && m.timers.Editing())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleAny):
		return m.toggle()
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus(m.focus.Next())
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus(m.focus.Prev())
	}

	if m.focus.InForm() {
		if key.Matches(msg, m.keys.Leave) {
			return m.setFocus(FocusTimers)
		}
		return m.delegateToFocused(msg)
	}
	if m.typing() {
		return m.delegateToFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()
	case m.focus == FocusActivity && key.Matches(msg, m.keys.Follow):
		m.activity = m.activity.ToggleFollow()
		return m, nil
	}
	return m.delegateToFocused(msg)
}

func (m Model) setFocus(f FocusTarget) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	switch f {
	case FocusTitle:
		m.form, cmd = m.form.Focus(panels.FieldTitle)
	case FocusSeconds:
		m.form, cmd = m.form.Focus(panels.FieldSeconds)
	default:
		m.form = m.form.Blur()
	}
	return m, cmd
}

func (m Model) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusTitle, FocusSeconds:
		m.form, cmd = m.form.Update(msg)
	case FocusTimers:
		m.timers, cmd = m.timers.Update(msg)
	case FocusActivity:
		m.activity, cmd = m.activity.Update(msg)
	}
	return m, cmd
}

func (m Model) toggle() (tea.Model, tea.Cmd) {
	m.session.Toggle()
	cmd := m.sync()
	return m, cmd
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	next, ok := m.session.Tick(msg.handle)
	if !ok {
		debug.Log("tui: dropped stale tick for handle %d", msg.handle)
		return m, nil
	}
	m.armed = next
	m.sync()
	return m, tickCmd(next, m.interval)
}

func (m Model) handleAdd(msg panels.AddTimerRequestMsg) (tea.Model, tea.Cmd) {
	if _, err := m.session.Add(msg.Title, msg.Seconds); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""
	if m.focus.InForm() {
		// The form moved its cursor back to the title after submitting.
		m.focus = FocusTitle
	}
	cmd := m.sync()
	return m, cmd
}

func (m Model) handleEdit(msg panels.EditTimerRequestMsg) (tea.Model, tea.Cmd) {
	if err := m.session.Update(msg.ID, msg.Seconds); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""
	cmd := m.sync()
	return m, cmd
}

// sync pulls session changes into the panels and arms a tick chain when the
// session holds a live handle nothing is ticking for yet.
func (m *Model) sync() tea.Cmd {
	for _, ev := range m.sink.drain() {
		m.activity = m.activity.AppendLine(m.theme.RenderEventLine(ev, m.layout.Activity.Width))
	}
	m.timers = m.timers.SetEntries(m.session.Entries())

	next := deriveState(m.session.Enabled(), m.session.Len())
	if next != m.state && m.state.CanTransitionTo(next) {
		m.state = next
	}

	h := m.session.Handle()
	if h == 0 || h == m.armed {
		return nil
	}
	m.armed = h
	return tickCmd(h, m.interval)
}

// next returns the timer closest to finishing, formatted for the header.
func (m Model) next() string {
	var soonest *timer.Entry
	entries := m.session.Entries()
	for i := range entries {
		if soonest == nil || entries[i].Remaining < soonest.Remaining {
			soonest = &entries[i]
		}
	}
	if soonest == nil {
		return ""
	}
	return soonest.Title + " " + timer.FormatRemaining(soonest.Remaining)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, MinWidth, MinHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		Title:       m.title,
		StateSymbol: m.state.Symbol(),
		StateLabel:  m.state.Label(),
		Count:       m.session.Len(),
		Next:        m.next(),
		Elapsed:     m.now.Sub(m.startedAt),
		Clock:       m.now,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(panels.FooterProps{
		Hints:  m.keys.Hints(m.focus, m.session.Len() > 0, m.session.Enabled()),
		Notice: m.notice,
	}, m.layout.Footer.Width)

	formW, formH := innerDims(m.layout.Form)
	timersW, timersH := innerDims(m.layout.Timers)
	actW, actH := innerDims(m.layout.Activity)

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelBorderStyle(m.focus.InForm()).
			Width(formW).Height(formH).
			Render(m.form.View(m.theme.TitleStyle().Render("Add timer"))),
		m.theme.PanelBorderStyle(m.focus == FocusTimers).
			Width(timersW).Height(timersH).
			Render(m.timers.View()),
	)

	activity := m.theme.PanelBorderStyle(m.focus == FocusActivity).
		Width(actW).Height(actH).
		Render(m.activity.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, activity)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
