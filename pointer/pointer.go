// Package pointer warps the hardware pointer to track keyboard-driven
// focus changes, so the cursor ends up on the window the user just
// focused instead of wherever the mouse last rested.
package pointer

import (
	"math"

	"github.com/pikin-cock/xdeco/x11"
)

type mode int

const (
	modeNearest mode = iota
	modeRelative
)

// Position selects where inside the target rectangle the pointer should
// land. Use Nearest or Relative to construct one.
type Position struct {
	mode mode
	h, v float64
}

// Nearest moves the pointer the minimal distance needed to re-enter the
// target rectangle: each coordinate is clamped independently.
var Nearest = Position{mode: modeNearest}

// Relative places the pointer at fractional offsets inside the target
// rectangle: h and v are in [0, 1], measured from the top-left corner.
// (0.5, 0.5) is the center. Values outside [0, 1] are not rejected; they
// simply land outside the rectangle.
func Relative(h, v float64) Position {
	return Position{mode: modeRelative, h: h, v: v}
}

// Destination computes the point the pointer should be warped to, given
// the target rectangle and the pointer's current position.
func (p Position) Destination(r x11.Rect, px, py int) (int, int) {
	switch p.mode {
	case modeRelative:
		return r.X + int(math.Floor(p.h*float64(r.Width))),
			r.Y + int(math.Floor(p.v*float64(r.Height)))
	default:
		return clamp(px, r.X, r.X+r.Width), clamp(py, r.Y, r.Y+r.Height)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// shouldSkip decides whether a focus change warrants no warp at all:
// the pointer is already inside the target, the mouse itself is driving
// the focus change, or the pointer rests on a window the window manager
// does not track (an override-redirect popup, or the bare root).
func shouldSkip(target x11.Rect, px, py int, mouseMoving, overManaged bool) bool {
	return target.Contains(px, py) || mouseMoving || !overManaged
}

// Update warps the pointer toward the focused window once, per the given
// position mode. With no focused window the current screen's rectangle is
// the target. The warp itself is best-effort; only the queries needed to
// decide where to warp can fail.
func Update(conn *x11.Connection, ws x11.WindowSet, pos Position) error {
	var target x11.Rect
	if focused, ok := ws.Focused(); ok {
		geom, err := conn.WindowGeometry(focused)
		if err != nil {
			return err
		}
		target = geom
	} else {
		target = ws.ScreenRect()
	}

	px, py, child, err := conn.Pointer()
	if err != nil {
		return err
	}

	overManaged := child != 0 && conn.ManagedWindowAt(child, ws) != 0
	if shouldSkip(target, px, py, ws.MouseMoveActive(), overManaged) {
		return nil
	}

	x, y := pos.Destination(target, px, py)
	conn.WarpPointer(x, y)
	return nil
}
