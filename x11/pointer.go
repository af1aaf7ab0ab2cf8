package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Pointer returns the root-relative position of the hardware pointer and
// the root's child window the pointer is over. Child is 0 when the pointer
// sits over the bare root window.
func (c *Connection) Pointer() (x, y int, child xproto.Window, err error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), reply.Child, nil
}

// ManagedWindowAt descends the window tree from start, following the child
// under the pointer at each level, until it reaches a window tracked by ws.
// Under a reparenting window manager the root's direct child is the frame,
// not the client, so a single membership test on start is not enough.
// Returns 0 if no tracked window is found.
func (c *Connection) ManagedWindowAt(start xproto.Window, ws WindowSet) xproto.Window {
	conn := c.XUtil.Conn()

	win := start
	for win != 0 {
		if ws.Contains(win) {
			return win
		}
		reply, err := xproto.QueryPointer(conn, win).Reply()
		if err != nil {
			return 0
		}
		win = reply.Child
	}
	return 0
}

// WarpPointer moves the hardware cursor to (x, y) in root coordinates.
// The request carries no source-window constraint and is fire-and-forget:
// a rejection at the protocol layer is not reported.
func (c *Connection) WarpPointer(x, y int) {
	xproto.WarpPointer(
		c.XUtil.Conn(),
		xproto.WindowNone, // no source window constraint
		c.Root,
		0, 0, 0, 0,
		int16(x), int16(y),
	)
}
