// Package notify sends fire-and-forget HTTP notifications when timers finish.
// The primary use case is ntfy.sh, but any HTTP webhook works.
package notify

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/LISSConsulting/LISSTech.MultiTimer/internal/timer"
)

// DefaultTitle is the X-Title header used when no title is configured.
const DefaultTitle = "multitimer"

// Notifier posts plain-text HTTP notifications for selected session events.
type Notifier struct {
	url       string
	title     string
	onExpire  bool
	onAllDone bool
	client    *http.Client
	inflight  sync.WaitGroup
}

// New creates a Notifier. title is sent as the X-Title header; if empty,
// DefaultTitle is used instead.
func New(notifURL, title string, onExpire, onAllDone bool) *Notifier {
	if title == "" {
		title = DefaultTitle
	}
	return &Notifier{
		url:       notifURL,
		title:     title,
		onExpire:  onExpire,
		onAllDone: onAllDone,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Hook is a Session.Subscribe-compatible function. It fires asynchronous
// POSTs for events that match the configured notification flags.
func (n *Notifier) Hook(ev timer.Event) {
	switch ev.Kind {
	case timer.EventExpired:
		if n.onExpire {
			n.send(ev.Message)
		}
	case timer.EventAllDone:
		if n.onAllDone {
			n.send(ev.Message)
		}
	}
}

// Wait blocks until every POST started by Hook has finished.
func (n *Notifier) Wait() {
	n.inflight.Wait()
}

func (n *Notifier) send(message string) {
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		n.post(message)
	}()
}

// post sends a plain-text POST to the configured URL. Errors are silently
// discarded so notification failures never interrupt the timers.
func (n *Notifier) post(message string) {
	req, err := http.NewRequest(http.MethodPost, n.url, strings.NewReader(message))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Title", n.title)
	resp, err := n.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
