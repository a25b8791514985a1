package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// Compile-time check: *JSONL implements Writer.
var _ Writer = (*JSONL)(nil)

var t0 = time.Date(2021, 8, 28, 12, 0, 0, 0, time.UTC)

func TestNewJSONL_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	j, err := NewJSONL(dir)
	if err != nil {
		t.Fatalf("NewJSONL: %v", err)
	}
	defer func() { _ = j.Close() }()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file in dir, got %d", len(entries))
	}
	if ext := filepath.Ext(entries[0].Name()); ext != Ext {
		t.Errorf("expected %s extension, got %q", Ext, ext)
	}
	if entries[0].Name() != j.SessionID()+Ext {
		t.Errorf("file %q does not match session id %q", entries[0].Name(), j.SessionID())
	}
}

func TestNewJSONL_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "sessions")
	j, err := NewJSONL(dir)
	if err != nil {
		t.Fatalf("NewJSONL on non-existent dir: %v", err)
	}
	defer func() { _ = j.Close() }()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected dir to exist after NewJSONL: %v", err)
	}
}

func TestNewJSONL_SessionIdentity(t *testing.T) {
	j, err := newJSONLAt(t.TempDir(), t0)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = j.Close() }()

	want := fmt.Sprintf("%d-%d", t0.Unix(), os.Getpid())
	if j.SessionID() != want {
		t.Errorf("SessionID = %q, want %q", j.SessionID(), want)
	}
}

func TestAppendAndReadSession(t *testing.T) {
	dir := t.TempDir()
	j, err := NewJSONL(dir)
	if err != nil {
		t.Fatal(err)
	}

	events := []timer.Event{
		{Kind: timer.EventAdded, Timestamp: t0, Message: "Tea added (3:00)", TimerID: "a", Title: "Tea", Remaining: 180, Active: 1},
		{Kind: timer.EventStarted, Timestamp: t0, Message: "running", Active: 1},
		{Kind: timer.EventExpired, Timestamp: t0.Add(180 * time.Second), Message: "Tea finished", TimerID: "a", Title: "Tea"},
		{Kind: timer.EventAllDone, Timestamp: t0.Add(180 * time.Second), Message: "all timers finished"},
	}
	for _, ev := range events {
		if err := j.Append(ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSession(j.Path())
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(got))
	}
	for i := range events {
		if got[i].Kind != events[i].Kind {
			t.Errorf("got[%d].Kind = %v, want %v", i, got[i].Kind, events[i].Kind)
		}
		if !got[i].Timestamp.Equal(events[i].Timestamp) {
			t.Errorf("got[%d].Timestamp = %v, want %v", i, got[i].Timestamp, events[i].Timestamp)
		}
	}
	if got[0].Title != "Tea" || got[0].Remaining != 180 || got[0].TimerID != "a" || got[0].Active != 1 {
		t.Errorf("got[0] = %+v", got[0])
	}
}

func TestAppend_WritesKindByName(t *testing.T) {
	j, err := NewJSONL(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = j.Close() }()

	if err := j.Append(timer.Event{Kind: timer.EventAllDone, Timestamp: t0}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(j.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"kind":"all_done"`) {
		t.Errorf("journal line = %s, want kind by name", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("journal line must end with newline")
	}
}

func TestJSONL_Summary(t *testing.T) {
	j, err := NewJSONL(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = j.Close() }()

	_ = j.Append(timer.Event{Kind: timer.EventAdded, Timestamp: t0, Title: "Tea", Active: 1})
	_ = j.Append(timer.Event{Kind: timer.EventAdded, Timestamp: t0.Add(time.Second), Title: "Eggs", Active: 2})

	s := j.Summary()
	if s.ID != j.SessionID() {
		t.Errorf("ID = %q, want %q", s.ID, j.SessionID())
	}
	if s.Added != 2 || s.Remaining != 2 {
		t.Errorf("summary = %+v, want Added 2, Remaining 2", s)
	}

	s.Titles[0] = "mutated"
	if j.Summary().Titles[0] != "Tea" {
		t.Error("Summary must return a copy")
	}
}

func TestReadSession_MalformedLineSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1-1.jsonl")
	content := `{"kind":"added","ts":"2021-08-28T12:00:00Z","title":"Tea","active":1}
{BADLINE
{"kind":"exploded","ts":"2021-08-28T12:00:00Z","active":1}

{"kind":"expired","ts":"2021-08-28T12:03:00Z","title":"Tea","active":0}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSession(path)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events (malformed lines skipped), got %d", len(got))
	}
	if got[0].Kind != timer.EventAdded || got[1].Kind != timer.EventExpired {
		t.Errorf("kinds = [%v %v], want [added expired]", got[0].Kind, got[1].Kind)
	}
}

func TestReadSession_MissingFile(t *testing.T) {
	if _, err := ReadSession(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEnforceRetention(t *testing.T) {
	createFiles := func(t *testing.T, n int) string {
		t.Helper()
		dir := t.TempDir()
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("%010d-%d.jsonl", i, i)
			if err := os.WriteFile(filepath.Join(dir, name), []byte("{}\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}
		// A non-journal file must never be touched.
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644); err != nil {
			t.Fatal(err)
		}
		return dir
	}
	countFiles := func(t *testing.T, dir string) int {
		t.Helper()
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		for _, e := range entries {
			if filepath.Ext(e.Name()) == Ext {
				count++
			}
		}
		return count
	}

	tests := []struct {
		name      string
		nFiles    int
		maxKeep   int
		wantFiles int
	}{
		{"zero files, keep 20", 0, 20, 0},
		{"fewer than limit", 5, 20, 5},
		{"exactly at limit", 20, 20, 20},
		{"one over limit", 21, 20, 20},
		{"keep 0 means unlimited", 30, 0, 30},
		{"keep 1 keeps newest", 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := createFiles(t, tt.nFiles)
			if err := EnforceRetention(dir, tt.maxKeep); err != nil {
				t.Fatalf("EnforceRetention: %v", err)
			}
			if got := countFiles(t, dir); got != tt.wantFiles {
				t.Errorf("want %d files remaining, got %d", tt.wantFiles, got)
			}
			if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
				t.Errorf("non-journal file removed: %v", err)
			}
		})
	}

	t.Run("non-existent dir returns nil", func(t *testing.T) {
		if err := EnforceRetention(filepath.Join(t.TempDir(), "no-such-dir"), 5); err != nil {
			t.Errorf("expected nil for missing dir, got: %v", err)
		}
	})

	t.Run("oldest files are deleted", func(t *testing.T) {
		dir := createFiles(t, 5)
		if err := EnforceRetention(dir, 2); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			name := fmt.Sprintf("%010d-%d.jsonl", i, i)
			if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
				t.Errorf("expected file %s to be deleted", name)
			}
		}
		for i := 3; i < 5; i++ {
			name := fmt.Sprintf("%010d-%d.jsonl", i, i)
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected file %s to remain: %v", name, err)
			}
		}
	})
}

func TestListJournals_OrdersByTimestampThenPID(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"1792435704-6293.jsonl",
		"999-5.jsonl",
		"1792435704-12.jsonl",
		"100-1.jsonl",
		"stray.jsonl",
		"notes.txt",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := listJournals(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"stray.jsonl",
		"100-1.jsonl",
		"999-5.jsonl",
		"1792435704-12.jsonl",
		"1792435704-6293.jsonl",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("listJournals() = %v, want %v", got, want)
	}
}

func TestEnforceRetention_KeepsNewestSession(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"100-1.jsonl", "200-1.jsonl", "300-1.jsonl"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	j, err := newJSONLAt(dir, time.Unix(1792435704, 0))
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	if err := EnforceRetention(dir, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(j.Path()); err != nil {
		t.Errorf("current journal removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "300-1.jsonl")); err != nil {
		t.Errorf("second newest journal removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "200-1.jsonl")); !os.IsNotExist(err) {
		t.Errorf("200-1.jsonl should be pruned, stat err = %v", err)
	}
}
