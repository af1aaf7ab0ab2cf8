package deco

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/pikin-cock/xdeco/x11"
)

// Window is a simple decoration window: override-redirect, solid color,
// painted by this package. Lifecycle is caller-driven via Show, Hide, and
// Destroy.
type Window struct {
	ID   xproto.Window
	conn *x11.Connection
}

// CreateWindow creates a decoration window with the given geometry. The
// window bypasses the window manager (override-redirect) and starts with
// a solid background and border in the named color. mask selects the
// events the window reports; pass 0 for the default exposure-only mask.
// The window is created unmapped; call Show to make it visible.
func CreateWindow(conn *x11.Connection, r x11.Rect, mask uint32, borderColor string) (*Window, error) {
	c := conn.XUtil.Conn()
	screen := conn.XUtil.Screen()

	if mask == 0 {
		mask = xproto.EventMaskExposure
	}
	pixel := ResolveColor(conn, borderColor)

	wid, err := xproto.NewWindowId(c)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	err = xproto.CreateWindowChecked(
		c,
		screen.RootDepth,
		wid,
		conn.Root,
		int16(r.X), int16(r.Y),
		uint16(r.Width), uint16(r.Height),
		0, // border_width; borders are painted, not window borders
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		// Value list order follows the bit positions of the mask (low to high).
		[]uint32{pixel, pixel, 1, mask},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create decoration window: %w", err)
	}

	return &Window{ID: wid, conn: conn}, nil
}

// Show maps the window.
func (w *Window) Show() {
	xproto.MapWindow(w.conn.XUtil.Conn(), w.ID)
}

// Hide unmaps the window without destroying it.
func (w *Window) Hide() {
	xproto.UnmapWindow(w.conn.XUtil.Conn(), w.ID)
}

// Destroy destroys the window. The handle must not be used afterwards.
func (w *Window) Destroy() {
	if w == nil || w.ID == 0 {
		return
	}
	xproto.DestroyWindow(w.conn.XUtil.Conn(), w.ID)
	w.ID = 0
}

// MoveResize updates the window's geometry in one request.
func (w *Window) MoveResize(r x11.Rect) {
	xproto.ConfigureWindow(
		w.conn.XUtil.Conn(),
		w.ID,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height)},
	)
}

// Raise moves the window to the top of the stacking order.
func (w *Window) Raise() {
	xproto.ConfigureWindow(
		w.conn.XUtil.Conn(),
		w.ID,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	)
}
