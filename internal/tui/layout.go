package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Form, Timers   Rect
	Activity       Rect
	TooSmall       bool // true when terminal is below the minimum 60×16
}

// Minimum terminal size.
const (
	MinWidth  = 60
	MinHeight = 16
)

// formHeight is the add form: title, two inputs and a hint, plus borders.
const formHeight = 6

// Calculate computes the panel layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true below MinWidth×MinHeight.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Sidebar: 45% of width, clamped to [30, 50]
//   - Form: sidebar width × formHeight rows (top of sidebar)
//   - Timers: sidebar width × remaining body height (bottom of sidebar)
//   - Activity: remaining width × full body height
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2 // subtract header + footer rows

	sidebarW := width * 45 / 100
	if sidebarW < 30 {
		sidebarW = 30
	}
	if sidebarW > 50 {
		sidebarW = 50
	}
	rightW := width - sidebarW

	timersH := bodyH - formHeight

	return Layout{
		Header:   Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:   Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Form:     Rect{X: 0, Y: 1, Width: sidebarW, Height: formHeight},
		Timers:   Rect{X: 0, Y: 1 + formHeight, Width: sidebarW, Height: timersH},
		Activity: Rect{X: sidebarW, Y: 1, Width: rightW, Height: bodyH},
		TooSmall: false,
	}
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
