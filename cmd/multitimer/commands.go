package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/config"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/journal"
	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a timer session (presets plus --timer flags)",
		Example: `  multitimer run --timer Tea=180 --timer Eggs=7:00
  multitimer run --no-tui --timer Pasta=9:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			timers, _ := cmd.Flags().GetStringArray("timer")
			noTUI, _ := cmd.Flags().GetBool("no-tui")
			return executeRun(runOptions{
				configPath: configPath,
				timers:     timers,
				noTUI:      noTUI,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringArray("timer", nil, "add a timer as Title=SECONDS or Title=M:SS (repeatable)")
	cmd.Flags().Bool("no-tui", false, "print events to stdout instead of opening the terminal UI")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create multitimer.toml and ignore the journal directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(created) == 0 {
				fmt.Fprintln(out, "All files already exist, nothing to create.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(out, "Created %s\n", path)
			}
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the timers every session starts with",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatPresetList(cfg.Presets))
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarise past sessions from their journals",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			limit, _ := cmd.Flags().GetInt("limit")
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			sessions, err := journal.History(cfg.JournalPath(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatHistory(sessions))
			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "number of sessions to show (0 = all)")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the most recent session",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			summary, ok, err := journal.Latest(cfg.JournalPath())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatStatus(summary, ok))
			return nil
		},
	}
}

// parseTimerFlag parses a --timer value of the form Title=DURATION, where
// DURATION is anything timer.ParseSeconds accepts. The title may itself
// contain '='; the last one separates the duration.
func parseTimerFlag(value string) (config.Preset, error) {
	i := strings.LastIndex(value, "=")
	if i < 0 {
		return config.Preset{}, fmt.Errorf("--timer %q: want Title=SECONDS", value)
	}
	title, seconds, err := timer.ValidateInput(value[:i], value[i+1:])
	if err != nil {
		return config.Preset{}, fmt.Errorf("--timer %q: %w", value, err)
	}
	return config.Preset{Title: title, Seconds: seconds}, nil
}

// formatPresetList renders the configured presets for the presets command.
func formatPresetList(presets []config.Preset) string {
	if len(presets) == 0 {
		return fmt.Sprintf("No presets configured. Add [[presets]] entries to %s.\n", config.FileName)
	}

	width := 0
	for _, p := range presets {
		if w := runewidth.StringWidth(p.Title); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("Presets\n")
	b.WriteString("───────\n")
	for _, p := range presets {
		fmt.Fprintf(&b, "  %s  %s\n", runewidth.FillRight(p.Title, width), timer.FormatRemaining(p.Seconds))
	}
	return b.String()
}

// formatHistory renders session summaries, newest first, one per line.
func formatHistory(sessions []journal.SessionSummary) string {
	if len(sessions) == 0 {
		return "No sessions recorded yet. Run 'multitimer run' first.\n"
	}

	var b strings.Builder
	b.WriteString("Sessions\n")
	b.WriteString("────────\n")
	for _, s := range sessions {
		started := "(empty)"
		if !s.StartedAt.IsZero() {
			started = s.StartedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "  %-16s  %8s  %2d added  %2d finished  %s\n",
			started,
			s.Duration().Round(time.Second),
			s.Added,
			s.Expired,
			runewidth.Truncate(strings.Join(s.Titles, ", "), 40, "…"),
		)
	}
	return b.String()
}

// formatStatus renders the most recent session summary. ok is false when no
// journal exists yet.
func formatStatus(s journal.SessionSummary, ok bool) string {
	if !ok {
		return "No sessions recorded yet. Run 'multitimer run' first.\n"
	}

	var b strings.Builder
	b.WriteString("Last session\n")
	b.WriteString("────────────\n")
	fmt.Fprintf(&b, "  %-16s %s\n", "Journal:", s.ID)
	if !s.StartedAt.IsZero() {
		fmt.Fprintf(&b, "  %-16s %s\n", "Started:", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "  %-16s %s\n", "Duration:", s.Duration().Round(time.Second))
	}
	fmt.Fprintf(&b, "  %-16s %d\n", "Added:", s.Added)
	fmt.Fprintf(&b, "  %-16s %d\n", "Finished:", s.Expired)
	if s.Updated > 0 {
		fmt.Fprintf(&b, "  %-16s %d\n", "Edited:", s.Updated)
	}
	fmt.Fprintf(&b, "  %-16s %d\n", "Left running:", s.Remaining)
	if len(s.Titles) > 0 {
		fmt.Fprintf(&b, "  %-16s %s\n", "Timers:", strings.Join(s.Titles, ", "))
	}
	return b.String()
}
