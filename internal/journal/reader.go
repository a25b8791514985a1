package journal

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// maxLine bounds one journal line; events are a few hundred bytes at most.
const maxLine = 1 << 20

// ReadSession returns every event in the journal at path. Malformed lines
// are logged and skipped.
func ReadSession(path string) ([]timer.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %q: %w", path, err)
	}
	defer f.Close()

	var events []timer.Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var ev timer.Event
		if err := json.Unmarshal(line, &ev); err != nil {
			log.Printf("journal: skipping malformed line %d in %s: %v", lineNo, filepath.Base(path), err)
			continue
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return events, fmt.Errorf("journal: read %q: %w", path, err)
	}
	return events, nil
}

// History summarises the journals in dir, newest first. limit caps the
// number of sessions returned; 0 means all of them.
func History(dir string, limit int) ([]SessionSummary, error) {
	files, err := listJournals(dir)
	if err != nil {
		return nil, err
	}

	var out []SessionSummary
	for i := len(files) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		events, err := ReadSession(filepath.Join(dir, files[i]))
		if err != nil {
			return out, err
		}
		out = append(out, Summarize(strings.TrimSuffix(files[i], Ext), events))
	}
	return out, nil
}

// Latest summarises the most recent journal in dir. ok is false when dir
// holds no journals.
func Latest(dir string) (summary SessionSummary, ok bool, err error) {
	sessions, err := History(dir, 1)
	if err != nil || len(sessions) == 0 {
		return SessionSummary{}, false, err
	}
	return sessions[0], true, nil
}
