// Package config parses multitimer.toml configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "multitimer.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// DefaultJournalDir is where session journals are written, relative to the
// directory that holds multitimer.toml (or the working directory).
const DefaultJournalDir = ".multitimer/sessions"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level multitimer.toml configuration.
type Config struct {
	Timers        TimersConfig        `toml:"timers"`
	Presets       []Preset            `toml:"presets"`
	TUI           TUIConfig           `toml:"tui"`
	Journal       JournalConfig       `toml:"journal"`
	Notifications NotificationsConfig `toml:"notifications"`

	// Dir is the directory the config was loaded from. Relative paths in
	// the config resolve against it. Not read from TOML.
	Dir string `toml:"-"`
}

// TimersConfig controls the tick scheduler.
type TimersConfig struct {
	AutoStart      bool `toml:"auto_start"`       // adding a timer (re)starts ticking
	TickIntervalMS int  `toml:"tick_interval_ms"` // tick period; 1000 outside tests
}

// Preset is a named timer the session starts with.
type Preset struct {
	Title   string `toml:"title"`
	Seconds int    `toml:"seconds"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	Title         string `toml:"title"`
	AccentColor   string `toml:"accent_color"`
	ActivityLines int    `toml:"activity_lines"` // activity log lines kept; 0 = unlimited
}

// JournalConfig controls the per-session JSONL event journal.
type JournalConfig struct {
	Enabled   bool   `toml:"enabled"`
	Dir       string `toml:"dir"`
	Retention int    `toml:"retention"` // session files to keep; 0 = unlimited
}

// NotificationsConfig controls webhook/ntfy.sh notifications.
type NotificationsConfig struct {
	URL       string `toml:"url"`
	OnExpire  bool   `toml:"on_expire"`
	OnAllDone bool   `toml:"on_all_done"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Timers.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timers.tick_interval_ms must be > 0"))
	}

	for i, p := range c.Presets {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("presets[%d].title must not be empty", i))
		}
		if p.Seconds <= 0 {
			errs = append(errs, fmt.Errorf("presets[%d].seconds must be > 0", i))
		}
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if c.TUI.ActivityLines < 0 {
		errs = append(errs, fmt.Errorf("tui.activity_lines must be >= 0 (0 = unlimited)"))
	}

	if c.Journal.Enabled && c.Journal.Dir == "" {
		errs = append(errs, fmt.Errorf("journal.dir must be set when journal.enabled is true"))
	}
	if c.Journal.Retention < 0 {
		errs = append(errs, fmt.Errorf("journal.retention must be >= 0 (0 = unlimited)"))
	}

	if c.Notifications.URL != "" {
		u, parseErr := url.ParseRequestURI(c.Notifications.URL)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("notifications.url must be a valid http or https URL"))
		}
	}

	return errors.Join(errs...)
}

// JournalPath returns the journal directory, resolved against Dir.
func (c *Config) JournalPath() string {
	if filepath.IsAbs(c.Journal.Dir) || c.Dir == "" {
		return c.Journal.Dir
	}
	return filepath.Join(c.Dir, c.Journal.Dir)
}

// Defaults returns a Config with the built-in defaults.
func Defaults() Config {
	return Config{
		Timers: TimersConfig{
			AutoStart:      true,
			TickIntervalMS: 1000,
		},
		TUI: TUIConfig{
			Title:         "Multi timer",
			AccentColor:   DefaultAccentColor,
			ActivityLines: 200,
		},
		Journal: JournalConfig{
			Enabled:   true,
			Dir:       DefaultJournalDir,
			Retention: 20,
		},
		Notifications: NotificationsConfig{
			URL:       "",
			OnExpire:  true,
			OnAllDone: true,
		},
	}
}

// Load reads multitimer.toml from path. If path is empty, it walks up from
// the current working directory looking for multitimer.toml and falls back
// to Defaults (rooted at the working directory) when none exists. Unknown
// keys are an error (likely typos), as is a config that fails Validate.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			dir, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("config: get working directory: %w", err)
			}
			cfg := Defaults()
			cfg.Dir = dir
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(abs)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for
// multitimer.toml. It returns "" when no file exists up to the root.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default multitimer.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

const template = `# multitimer.toml: multitimer configuration

[timers]
auto_start = true      # adding a timer (re)starts ticking
tick_interval_ms = 1000

# Timers every session starts with.
# [[presets]]
# title = "Tea"
# seconds = 180

[tui]
title = "Multi timer"
accent_color = "#7D56F4"  # hex color for header/accent elements
activity_lines = 200      # activity log lines kept in memory; 0 = unlimited

[journal]
enabled = true
dir = ".multitimer/sessions"
retention = 20            # session journals to keep; 0 = unlimited

[notifications]
url = ""           # ntfy.sh topic URL or any HTTP webhook (empty = disabled)
on_expire = true   # notify when a timer finishes
on_all_done = true # notify when the last timer finishes
`
