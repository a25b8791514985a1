package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/config"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/debug"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/journal"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/notify"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// runOptions carries the run command's flags.
type runOptions struct {
	configPath string
	timers     []string // raw --timer values
	noTUI      bool
}

// executeRun loads config, assembles the session and its hooks, seeds it
// with presets and --timer flags, and runs it in the TUI or headless.
func executeRun(opts runOptions, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	extra := make([]config.Preset, 0, len(opts.timers))
	for _, v := range opts.timers {
		p, err := parseTimerFlag(v)
		if err != nil {
			return err
		}
		extra = append(extra, p)
	}

	ctx, cancel := signalContext()
	defer cancel()
	registerQuitHandler()

	session := timer.NewSession(timer.WithAutoStart(cfg.Timers.AutoStart))
	if debug.Enabled() {
		session.Subscribe(traceEvent)
	}

	jw, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if jw != nil {
		defer closeJournal(jw, out)
		session.Subscribe(journalHook(jw))
	}

	if cfg.Notifications.URL != "" {
		n := notify.New(cfg.Notifications.URL, cfg.TUI.Title, cfg.Notifications.OnExpire, cfg.Notifications.OnAllDone)
		session.Subscribe(n.Hook)
		defer n.Wait()
	}

	if err := seedTimers(session, append(cfg.Presets, extra...)); err != nil {
		return err
	}

	interval := time.Duration(cfg.Timers.TickIntervalMS) * time.Millisecond
	if wantTUI(opts.noTUI, os.Stdout) {
		return runWithTUI(ctx, session, cfg, interval)
	}
	runner := &timer.Runner{Session: session, Interval: interval}
	return runHeadless(ctx, runner, out)
}

// seedTimers adds timers in order. The session sorts them by remaining time.
func seedTimers(session *timer.Session, timers []config.Preset) error {
	for _, p := range timers {
		if _, err := session.Add(p.Title, p.Seconds); err != nil {
			return err
		}
	}
	return nil
}

// openJournal prunes old journals and opens one for this session. It
// returns nil when journaling is disabled.
func openJournal(cfg *config.Config) (*journal.JSONL, error) {
	if !cfg.Journal.Enabled {
		return nil, nil
	}
	dir := cfg.JournalPath()
	jw, err := journal.NewJSONL(dir)
	if err != nil {
		return nil, err
	}
	if err := journal.EnforceRetention(dir, cfg.Journal.Retention); err != nil {
		// A stale journal left behind is not worth refusing to run over.
		log.Printf("journal: retention: %v", err)
	}
	debug.Log("journal: writing %s", jw.Path())
	return jw, nil
}

// journalHook appends recorded events to w. Write failures are logged and
// never stop the timers.
func journalHook(w journal.Writer) func(timer.Event) {
	return func(ev timer.Event) {
		if !journal.Recorded(ev.Kind) {
			return
		}
		if err := w.Append(ev); err != nil {
			log.Printf("journal: %v", err)
		}
	}
}

// closeJournal closes jw and reports where the session was recorded.
func closeJournal(jw *journal.JSONL, out io.Writer) {
	summary := jw.Summary()
	if err := jw.Close(); err != nil {
		log.Printf("journal: %v", err)
		return
	}
	fmt.Fprintf(out, "Session recorded in %s (%d added, %d finished)\n", jw.Path(), summary.Added, summary.Expired)
}

// traceEvent writes every session event, ticks included, to the debug log.
func traceEvent(ev timer.Event) {
	debug.Log("session: %s active=%d %s", ev.Kind, ev.Active, ev.Message)
}
