package timer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSeconds parses a duration typed by the user. It accepts a plain
// number of seconds ("90") or a clock form ("1:30", "1:00:00"). The result is
// always positive; anything else wraps ErrInvalidDuration.
func ParseSeconds(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidDuration
	}
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("parse %q: %w", text, ErrInvalidDuration)
	}

	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.HasPrefix(p, "+") {
			return 0, fmt.Errorf("parse %q: %w", text, ErrInvalidDuration)
		}
		// Minutes and seconds fields of a clock form stay below 60.
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("parse %q: field %q out of range: %w", text, p, ErrInvalidDuration)
		}
		if total > (math.MaxInt-n)/60 {
			return 0, fmt.Errorf("parse %q: too long: %w", text, ErrInvalidDuration)
		}
		total = total*60 + n
	}
	if total <= 0 {
		return 0, fmt.Errorf("parse %q: %w", text, ErrInvalidDuration)
	}
	return total, nil
}

// ValidateInput checks a title/duration pair from the add form. It returns
// the trimmed title and parsed seconds when both are usable.
func ValidateInput(title, secondsText string) (string, int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", 0, ErrEmptyTitle
	}
	seconds, err := ParseSeconds(secondsText)
	if err != nil {
		return "", 0, err
	}
	return title, seconds, nil
}

// FormatRemaining renders seconds as "M:SS", or "H:MM:SS" from one hour up.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
