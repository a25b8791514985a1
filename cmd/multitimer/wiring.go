package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/config"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/debug"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/tui"
)

// logFile is where log and debug output go while the TUI owns the screen,
// relative to the config directory.
const logFile = ".multitimer/multitimer.log"

// wantTUI reports whether the run should open the terminal UI: not disabled
// by flag and out is an interactive terminal.
func wantTUI(noTUI bool, out *os.File) bool {
	return !noTUI && term.IsTerminal(int(out.Fd()))
}

// runWithTUI runs the session inside the bubbletea program. The program's
// Update loop is the only caller of session methods until it exits.
func runWithTUI(ctx context.Context, session *timer.Session, cfg *config.Config, interval time.Duration) error {
	restore := redirectLogs(filepath.Join(cfg.Dir, logFile))
	defer restore()

	model := tui.New(session, tui.Settings{
		Title:         cfg.TUI.Title,
		AccentColor:   cfg.TUI.AccentColor,
		Interval:      interval,
		ActivityLines: cfg.TUI.ActivityLines,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	return finishTUI(program)
}

// finishTUI runs the bubbletea program. Being killed through the context
// (SIGINT, SIGTERM) is a normal shutdown and not reported.
func finishTUI(program *tea.Program) error {
	_, err := program.Run()
	if err == nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("tui: %w", err)
}

// redirectLogs sends log and debug output to path so it does not tear the
// alt screen. The returned func restores stderr.
func redirectLogs(path string) (restore func()) {
	var w io.Writer = io.Discard
	var f *os.File
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			w = f
		}
	}
	log.SetOutput(w)
	debug.SetOutput(w)
	return func() {
		log.SetOutput(os.Stderr)
		debug.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
		}
	}
}

// runHeadless ticks the session with runner and prints events to out until
// every timer has finished or ctx is cancelled.
func runHeadless(ctx context.Context, runner *timer.Runner, out io.Writer) error {
	session := runner.Session
	if session.Len() == 0 {
		fmt.Fprintf(out, "No timers. Add presets to %s or pass --timer Title=SECONDS.\n", config.FileName)
		return nil
	}

	for _, e := range session.Entries() {
		fmt.Fprintf(out, "  %s  %s\n", timer.FormatRemaining(e.Remaining), e.Title)
	}
	session.Subscribe(func(ev timer.Event) {
		if line := formatEventLine(ev); line != "" {
			fmt.Fprintln(out, line)
		}
	})

	err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "Interrupted.")
		return nil
	}
	return err
}

// formatEventLine renders a session event for headless output. Ticks and
// restarts produce no line.
func formatEventLine(ev timer.Event) string {
	switch ev.Kind {
	case timer.EventTick, timer.EventRestarted:
		return ""
	}
	msg := ev.Message
	if msg == "" {
		msg = ev.Kind.String()
	}
	return fmt.Sprintf("[%s]  %-8s %s", ev.Timestamp.Format("15:04:05"), ev.Kind, msg)
}
