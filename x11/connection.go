package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server and initializes
// required extensions.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Initialize keybind module (required for global hotkeys)
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// EventLoop starts the main X11 event loop (blocking).
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// ScreenRect returns the full rectangle of the default screen.
func (c *Connection) ScreenRect() Rect {
	screen := c.XUtil.Screen()
	return Rect{
		X:      0,
		Y:      0,
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}
}

// WindowGeometry returns the root-relative geometry of a window.
// GetGeometry reports coordinates relative to the window's parent, which
// under a reparenting window manager is the frame, so the origin is
// translated to root coordinates explicitly.
func (c *Connection) WindowGeometry(win xproto.Window) (Rect, error) {
	conn := c.XUtil.Conn()

	geom, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("failed to get geometry of window 0x%x: %w", win, err)
	}

	trans, err := xproto.TranslateCoordinates(conn, win, c.Root, 0, 0).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("failed to translate coordinates of window 0x%x: %w", win, err)
	}

	return Rect{
		X:      int(trans.DstX),
		Y:      int(trans.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}
