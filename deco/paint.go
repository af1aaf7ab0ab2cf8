package deco

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/pikin-cock/xdeco/x11"
)

// textRequest carries the optional text pass of a paint.
type textRequest struct {
	font    *Font
	color   string
	bgColor string
	align   Align
	text    string
}

// Paint fills the window with a border-color frame of borderWidth pixels
// around a bgColor interior. Drawing happens on an off-screen pixmap
// copied onto the window in one step, so the border/fill sequence never
// flickers on screen.
func (w *Window) Paint(width, height, borderWidth int, bgColor, borderColor string) error {
	return w.paint(width, height, borderWidth, bgColor, borderColor, nil)
}

// PaintAndWrite is Paint plus a single line of text placed per align,
// drawn in textColor over textBgColor.
func (w *Window) PaintAndWrite(font *Font, width, height, borderWidth int, bgColor, borderColor, textColor, textBgColor string, align Align, text string) error {
	return w.paint(width, height, borderWidth, bgColor, borderColor, &textRequest{
		font:    font,
		color:   textColor,
		bgColor: textBgColor,
		align:   align,
		text:    text,
	})
}

func (w *Window) paint(width, height, borderWidth int, bgColor, borderColor string, req *textRequest) error {
	conn := w.conn
	c := conn.XUtil.Conn()
	screen := conn.XUtil.Screen()

	borderPixel := ResolveColor(conn, borderColor)
	bgPixel := ResolveColor(conn, bgColor)

	pix, err := xproto.NewPixmapId(c)
	if err != nil {
		return fmt.Errorf("failed to allocate pixmap id: %w", err)
	}
	if err := xproto.CreatePixmapChecked(
		c, screen.RootDepth, pix, xproto.Drawable(w.ID),
		uint16(width), uint16(height),
	).Check(); err != nil {
		return fmt.Errorf("failed to create pixmap: %w", err)
	}
	defer xproto.FreePixmap(c, pix)

	gc, err := xproto.NewGcontextId(c)
	if err != nil {
		return fmt.Errorf("failed to allocate gcontext id: %w", err)
	}
	if err := xproto.CreateGCChecked(
		c, gc, xproto.Drawable(pix),
		xproto.GcForeground|xproto.GcGraphicsExposures,
		[]uint32{borderPixel, 0}, // graphics_exposures=false
	).Check(); err != nil {
		return fmt.Errorf("failed to create gcontext: %w", err)
	}
	defer xproto.FreeGC(c, gc)

	// Border color over the full area, then the background inset by the
	// border width on all sides.
	xproto.PolyFillRectangle(c, xproto.Drawable(pix), gc, []xproto.Rectangle{
		{X: 0, Y: 0, Width: uint16(width), Height: uint16(height)},
	})
	xproto.ChangeGC(c, gc, xproto.GcForeground, []uint32{bgPixel})
	xproto.PolyFillRectangle(c, xproto.Drawable(pix), gc,
		[]xproto.Rectangle{insetRect(width, height, borderWidth)})

	if req != nil {
		text := req.text
		if len(text) > 255 {
			text = text[:255] // ImageText8 length is a single byte
		}
		area := x11.Rect{X: 0, Y: 0, Width: width, Height: height}
		x, y := StringPosition(req.font, area, req.align, text)

		xproto.ChangeGC(c, gc,
			xproto.GcForeground|xproto.GcBackground|xproto.GcFont,
			[]uint32{
				ResolveColor(conn, req.color),
				ResolveColor(conn, req.bgColor),
				uint32(req.font.ID),
			},
		)
		xproto.ImageText8(c, byte(len(text)), xproto.Drawable(pix), gc,
			int16(x), int16(y), text)
	}

	xproto.CopyArea(c, xproto.Drawable(pix), xproto.Drawable(w.ID), gc,
		0, 0, 0, 0, uint16(width), uint16(height))
	return nil
}

// insetRect returns the interior area left after a border of borderWidth
// pixels on all sides. Valid usage keeps borderWidth below half of each
// dimension; that is the caller's responsibility.
func insetRect(width, height, borderWidth int) xproto.Rectangle {
	return xproto.Rectangle{
		X:      int16(borderWidth),
		Y:      int16(borderWidth),
		Width:  uint16(width - 2*borderWidth),
		Height: uint16(height - 2*borderWidth),
	}
}
