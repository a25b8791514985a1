package journal

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// JSONL is a Writer backed by an append-only JSONL file. Each line is a
// JSON-serialized timer.Event. The file is synced after every Append so a
// killed process still leaves a readable journal.
//
// Session identity: "<unix-timestamp>-<pid>.jsonl".
type JSONL struct {
	file      *os.File
	mu        sync.Mutex
	tally     *tally
	sessionID string
	path      string
}

// NewJSONL creates (or reopens) the session journal in dir. dir is created
// with os.MkdirAll if it does not exist.
func NewJSONL(dir string) (*JSONL, error) {
	return newJSONLAt(dir, time.Now())
}

func newJSONLAt(dir string, now time.Time) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("journal: mkdir %q: %w", dir, err)
	}
	sessionID := fmt.Sprintf("%d-%d", now.Unix(), os.Getpid())
	path := filepath.Join(dir, sessionID+Ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %q: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("journal: seek: %w", err)
	}
	return &JSONL{
		file:      f,
		tally:     newTally(sessionID),
		sessionID: sessionID,
		path:      path,
	}, nil
}

// Append serializes ev as a JSON line, writes it to the file, and syncs.
// It is safe to call from multiple goroutines.
func (j *JSONL) Append(ev timer.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("journal: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("journal: sync: %w", err)
	}
	j.tally.add(ev)
	return nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// SessionID returns the "<unix>-<pid>" identity of this journal.
func (j *JSONL) SessionID() string { return j.sessionID }

// Path returns the journal file path.
func (j *JSONL) Path() string { return j.path }

// Summary returns the running summary of everything appended so far.
func (j *JSONL) Summary() SessionSummary {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.tally.result()
}

// EnforceRetention removes the oldest session journals in dir, keeping at
// most maxKeep files. If maxKeep is 0, no files are removed. Returns nil if
// dir does not exist or is empty.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	files, err := listJournals(dir)
	if err != nil {
		return err
	}

	toDelete := len(files) - maxKeep
	for i := 0; i < toDelete; i++ {
		path := filepath.Join(dir, files[i])
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("journal: remove %q: %w", path, err)
		}
	}
	return nil
}

// listJournals returns journal file names in dir, oldest first. A missing
// dir yields no files.
func listJournals(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("journal: read dir %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Ext) {
			files = append(files, e.Name())
		}
	}
	slices.SortFunc(files, compareJournals)
	return files, nil
}

// compareJournals orders journal names by session start, then pid. Names
// not in "<unix>-<pid>" form sort first, by name, so retention drops them
// before any real session.
func compareJournals(a, b string) int {
	ua, pa, okA := journalKey(a)
	ub, pb, okB := journalKey(b)
	switch {
	case !okA && !okB:
		return strings.Compare(a, b)
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return cmp.Or(cmp.Compare(ua, ub), cmp.Compare(pa, pb), strings.Compare(a, b))
}

// journalKey parses the unix timestamp and pid out of a journal name.
func journalKey(name string) (unix, pid int64, ok bool) {
	ts, p, found := strings.Cut(strings.TrimSuffix(name, Ext), "-")
	if !found {
		return 0, 0, false
	}
	unix, errTS := strconv.ParseInt(ts, 10, 64)
	pid, errPID := strconv.ParseInt(p, 10, 64)
	if errTS != nil || errPID != nil {
		return 0, 0, false
	}
	return unix, pid, true
}
