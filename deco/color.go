// Package deco paints simple bordered, labeled rectangles onto native X11
// windows. It covers tab bars, prompts, and similar window-manager
// decorations: plain color fills, a single line of text, nothing more.
package deco

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/pikin-cock/xdeco/x11"
)

// ResolveColor allocates a pixel for a symbolic color name ("white",
// "steelblue", ...) in the default colormap. Any failure degrades to the
// screen's black pixel; a decoration in the wrong color beats an error
// nobody can act on.
func ResolveColor(conn *x11.Connection, name string) uint32 {
	screen := conn.XUtil.Screen()

	reply, err := xproto.AllocNamedColor(
		conn.XUtil.Conn(),
		screen.DefaultColormap,
		uint16(len(name)),
		name,
	).Reply()
	if err != nil {
		return screen.BlackPixel
	}
	return reply.Pixel
}

// AverageColors blends two already-allocated pixels. The result is
// weight parts p1 and (1-weight) parts p2, per channel, allocated as a
// fresh pixel. Both inputs must be valid pixels in the default colormap.
func AverageColors(conn *x11.Connection, p1, p2 uint32, weight float64) (uint32, error) {
	c := conn.XUtil.Conn()
	cmap := conn.XUtil.Screen().DefaultColormap

	colors, err := xproto.QueryColors(c, cmap, []uint32{p1, p2}).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to query colors: %w", err)
	}
	if len(colors.Colors) != 2 {
		return 0, fmt.Errorf("expected 2 colors, got %d", len(colors.Colors))
	}

	r, g, b := blend(colors.Colors[0], colors.Colors[1], weight)

	reply, err := xproto.AllocColor(c, cmap, r, g, b).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate blended color: %w", err)
	}
	return reply.Pixel, nil
}

// blend computes the per-channel weighted average of two RGB values,
// rounded to the nearest integer.
func blend(c1, c2 xproto.Rgb, weight float64) (r, g, b uint16) {
	mix := func(a, b uint16) uint16 {
		return uint16(math.Round(float64(a)*weight + float64(b)*(1-weight)))
	}
	return mix(c1.Red, c2.Red), mix(c1.Green, c2.Green), mix(c1.Blue, c2.Blue)
}
