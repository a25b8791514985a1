package timer

import "errors"

// Input errors, rejected at the form/flag boundary.
var (
	ErrEmptyTitle      = errors.New("timer: title must not be empty")
	ErrInvalidDuration = errors.New("timer: duration must be a positive number of seconds")
)

// Precondition errors. These indicate a caller holding stale state.
var (
	ErrIndexOutOfRange = errors.New("timer: index out of range")
	ErrNotFound        = errors.New("timer: entry not found")
	ErrNegativeSeconds = errors.New("timer: remaining seconds must be >= 0")
)
