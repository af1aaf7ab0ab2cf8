package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// WindowSet is the window-manager state both helpers consume. A window
// manager hosting this library implements it directly against its own
// bookkeeping; standalone tools can use ClientSet, which answers the same
// questions through EWMH root-window properties.
type WindowSet interface {
	// Focused returns the currently focused window, if any.
	Focused() (xproto.Window, bool)

	// Contains reports whether the window manager tracks win.
	Contains(win xproto.Window) bool

	// ScreenRect returns the visible rectangle of the current screen.
	ScreenRect() Rect

	// MouseMoveActive reports whether focus is presently being changed by
	// mouse movement. Warping the pointer while the mouse itself drives
	// focus would feed back into another focus change.
	MouseMoveActive() bool
}

// ClientSet implements WindowSet against the EWMH properties a compliant
// window manager maintains on the root window (_NET_ACTIVE_WINDOW,
// _NET_CLIENT_LIST). Every call is a fresh round-trip; nothing is cached,
// so answers track the window manager's state at query time.
type ClientSet struct {
	conn *Connection
}

// NewClientSet returns a ClientSet backed by the given connection.
func NewClientSet(conn *Connection) *ClientSet {
	return &ClientSet{conn: conn}
}

// Focused returns the window named by _NET_ACTIVE_WINDOW. A missing
// property, or one naming window 0, means nothing has focus.
func (s *ClientSet) Focused() (xproto.Window, bool) {
	win, err := ewmh.ActiveWindowGet(s.conn.XUtil)
	if err != nil || win == 0 {
		return 0, false
	}
	return win, true
}

// Contains reports whether win appears in _NET_CLIENT_LIST.
func (s *ClientSet) Contains(win xproto.Window) bool {
	clients, err := ewmh.ClientListGet(s.conn.XUtil)
	if err != nil {
		return false
	}
	for _, client := range clients {
		if client == win {
			return true
		}
	}
	return false
}

// ScreenRect returns the full rectangle of the default screen.
func (s *ClientSet) ScreenRect() Rect {
	return s.conn.ScreenRect()
}

// MouseMoveActive always reports false: EWMH exposes no "focus follows a
// mouse drag right now" property, so a standalone tool cannot observe it.
// A hosting window manager should implement WindowSet itself to supply
// the real flag.
func (s *ClientSet) MouseMoveActive() bool {
	return false
}

// FocusedName returns the _NET_WM_NAME of the focused window, or an error
// if nothing has focus.
func (s *ClientSet) FocusedName() (string, error) {
	win, ok := s.Focused()
	if !ok {
		return "", fmt.Errorf("no focused window")
	}
	name, err := ewmh.WmNameGet(s.conn.XUtil, win)
	if err != nil {
		return "", fmt.Errorf("failed to get name of window 0x%x: %w", win, err)
	}
	return name, nil
}
