// Package debug provides conditional trace logging for multitimer.
//
// Tracing is enabled by setting MULTITIMER_DEBUG:
//
//	MULTITIMER_DEBUG=1 multitimer run --timer Tea=180
//
// Messages go to stderr with timestamps. While the terminal UI owns the
// screen, cmd/multitimer redirects them to a file with SetOutput.
// When disabled (default) every function is a no-op.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

// EnvVar is the environment variable that switches tracing on.
const EnvVar = "MULTITIMER_DEBUG"

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv(EnvVar) != "" {
		SetEnabled(true)
	}
}

// Enabled reports whether tracing is on.
func Enabled() bool {
	return enabled
}

// SetEnabled switches tracing on or off.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, "[multitimer] ", log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects trace output. It has no effect while tracing is off.
func SetOutput(w io.Writer) {
	if logger != nil {
		logger.SetOutput(w)
	}
}

// Log writes a printf-style trace message.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogIf writes a trace message only when cond holds.
func LogIf(cond bool, format string, args ...any) {
	if !enabled || !cond {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes how long an operation took.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}
