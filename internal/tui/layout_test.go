package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		sidebarW int
		rightW   int
		bodyH    int
		timersH  int
	}{
		{
			name:  "80x24 minimum comfortable",
			width: 80, height: 24,
			sidebarW: 36, // 80*45/100
			rightW:   44,
			bodyH:    22,
			timersH:  16, // 22 - formHeight
		},
		{
			name:  "60x16 exact minimum",
			width: 60, height: 16,
			sidebarW: 30, // 27 clamped to 30
			rightW:   30,
			bodyH:    14,
			timersH:  8,
		},
		{
			name:  "120x40 clamps sidebar",
			width: 120, height: 40,
			sidebarW: 50, // 54 clamped to 50
			rightW:   70,
			bodyH:    38,
			timersH:  32,
		},
		{
			name:  "200x60 wide terminal",
			width: 200, height: 60,
			sidebarW: 50,
			rightW:   150,
			bodyH:    58,
			timersH:  52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)
			if l.TooSmall {
				t.Fatal("TooSmall = true, want false")
			}
			if l.Header != (Rect{X: 0, Y: 0, Width: tt.width, Height: 1}) {
				t.Errorf("Header = %+v", l.Header)
			}
			if l.Footer != (Rect{X: 0, Y: tt.height - 1, Width: tt.width, Height: 1}) {
				t.Errorf("Footer = %+v", l.Footer)
			}
			if l.Form != (Rect{X: 0, Y: 1, Width: tt.sidebarW, Height: formHeight}) {
				t.Errorf("Form = %+v", l.Form)
			}
			if l.Timers != (Rect{X: 0, Y: 1 + formHeight, Width: tt.sidebarW, Height: tt.timersH}) {
				t.Errorf("Timers = %+v", l.Timers)
			}
			if l.Activity != (Rect{X: tt.sidebarW, Y: 1, Width: tt.rightW, Height: tt.bodyH}) {
				t.Errorf("Activity = %+v", l.Activity)
			}
			if l.Form.Height+l.Timers.Height != l.Activity.Height {
				t.Error("sidebar panels should fill the body height")
			}
		})
	}
}

func TestCalculate_TooSmall(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", 59, 24},
		{"short", 80, 15},
		{"both", 40, 10},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l := Calculate(tt.width, tt.height); !l.TooSmall {
				t.Errorf("Calculate(%d, %d).TooSmall = false, want true", tt.width, tt.height)
			}
		})
	}
}

func TestInnerDims(t *testing.T) {
	tests := []struct {
		name  string
		rect  Rect
		wantW int
		wantH int
	}{
		{"normal", Rect{Width: 36, Height: 16}, 34, 14},
		{"clamped to one", Rect{Width: 2, Height: 1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := innerDims(tt.rect)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("innerDims(%+v) = %d, %d; want %d, %d", tt.rect, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
