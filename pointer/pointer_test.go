package pointer

import (
	"testing"

	"github.com/pikin-cock/xdeco/x11"
)

func TestNearestClampsIntoRect(t *testing.T) {
	rect := x11.Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name       string
		px, py     int
		wantX      int
		wantY      int
	}{
		{name: "left and above", px: 0, py: 0, wantX: 10, wantY: 20},
		{name: "right and below", px: 500, py: 500, wantX: 110, wantY: 70},
		{name: "left only", px: 3, py: 40, wantX: 10, wantY: 40},
		{name: "below only", px: 60, py: 300, wantX: 60, wantY: 70},
		{name: "on far corner", px: 110, py: 70, wantX: 110, wantY: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Nearest.Destination(rect, tt.px, tt.py)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("Destination(%d,%d) = (%d,%d), want (%d,%d)",
					tt.px, tt.py, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNearestIsIdempotentForInsidePoints(t *testing.T) {
	rect := x11.Rect{X: 10, Y: 20, Width: 100, Height: 50}

	for px := rect.X; px < rect.X+rect.Width; px += 13 {
		for py := rect.Y; py < rect.Y+rect.Height; py += 7 {
			x, y := Nearest.Destination(rect, px, py)
			if x != px || y != py {
				t.Fatalf("inside point (%d,%d) moved to (%d,%d)", px, py, x, y)
			}
		}
	}
}

func TestNearestNeverLeavesClosedRect(t *testing.T) {
	rect := x11.Rect{X: -30, Y: 5, Width: 64, Height: 48}

	for px := -100; px <= 100; px += 11 {
		for py := -100; py <= 100; py += 9 {
			x, y := Nearest.Destination(rect, px, py)
			if x < rect.X || x > rect.X+rect.Width || y < rect.Y || y > rect.Y+rect.Height {
				t.Fatalf("point (%d,%d) clamped outside rect: (%d,%d)", px, py, x, y)
			}
		}
	}
}

func TestRelativeDestination(t *testing.T) {
	tests := []struct {
		name   string
		rect   x11.Rect
		h, v   float64
		wantX  int
		wantY  int
	}{
		{
			name: "center",
			rect: x11.Rect{X: 10, Y: 20, Width: 100, Height: 50},
			h:    0.5, v: 0.5,
			wantX: 60, wantY: 45,
		},
		{
			name: "origin",
			rect: x11.Rect{X: 10, Y: 20, Width: 100, Height: 50},
			h:    0, v: 0,
			wantX: 10, wantY: 20,
		},
		{
			name: "full extent",
			rect: x11.Rect{X: 10, Y: 20, Width: 100, Height: 50},
			h:    1, v: 1,
			wantX: 110, wantY: 70,
		},
		{
			name: "rounds down",
			rect: x11.Rect{X: 0, Y: 0, Width: 3, Height: 3},
			h:    0.5, v: 0.9,
			wantX: 1, wantY: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Relative(tt.h, tt.v).Destination(tt.rect, 999, 999)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("Relative(%v,%v) = (%d,%d), want (%d,%d)",
					tt.h, tt.v, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRelativeIgnoresCurrentPointerPosition(t *testing.T) {
	rect := x11.Rect{X: 10, Y: 20, Width: 100, Height: 50}
	pos := Relative(0.25, 0.75)

	x1, y1 := pos.Destination(rect, 0, 0)
	x2, y2 := pos.Destination(rect, 5000, -5000)
	if x1 != x2 || y1 != y2 {
		t.Fatalf("relative destination depends on pointer position: (%d,%d) vs (%d,%d)",
			x1, y1, x2, y2)
	}
}

func TestShouldSkip(t *testing.T) {
	rect := x11.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name        string
		px, py      int
		mouseMoving bool
		overManaged bool
		want        bool
	}{
		{name: "pointer already inside", px: 50, py: 50, overManaged: true, want: true},
		{name: "inside on left edge", px: 0, py: 0, overManaged: true, want: true},
		{name: "right edge is exclusive", px: 100, py: 50, overManaged: true, want: false},
		{name: "bottom edge is exclusive", px: 50, py: 100, overManaged: true, want: false},
		{name: "mouse driving focus", px: 200, py: 200, mouseMoving: true, overManaged: true, want: true},
		{name: "over unmanaged window", px: 200, py: 200, overManaged: false, want: true},
		{name: "outside and managed", px: 200, py: 200, overManaged: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkip(rect, tt.px, tt.py, tt.mouseMoving, tt.overManaged)
			if got != tt.want {
				t.Fatalf("shouldSkip = %v, want %v", got, tt.want)
			}
		})
	}
}
