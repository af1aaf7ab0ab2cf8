package deco

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/pikin-cock/xdeco/x11"
)

// DefaultFontName is the fallback when a requested font cannot be loaded.
// Every X server ships a "fixed" alias.
const DefaultFontName = "fixed"

// Font is a loaded server-side font together with the metrics needed to
// place text. The caller owns it and must Close it when done.
type Font struct {
	ID      xproto.Font
	Ascent  int
	Descent int

	conn *x11.Connection

	// Per-character advance widths for single-byte indexing, captured
	// from the QueryFont reply so width measurement needs no further
	// round-trips.
	minChar      uint16
	maxChar      uint16
	widths       []int16
	defaultWidth int16
}

// OpenFont loads a font by name. If the name cannot be loaded it falls
// back to DefaultFontName once; failure of the fallback itself is
// returned.
func OpenFont(conn *x11.Connection, name string) (*Font, error) {
	c := conn.XUtil.Conn()

	fid, err := xproto.NewFontId(c)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate font id: %w", err)
	}

	if err := xproto.OpenFontChecked(c, fid, uint16(len(name)), name).Check(); err != nil {
		name = DefaultFontName
		if err := xproto.OpenFontChecked(c, fid, uint16(len(name)), name).Check(); err != nil {
			return nil, fmt.Errorf("failed to open fallback font %q: %w", name, err)
		}
	}

	info, err := xproto.QueryFont(c, xproto.Fontable(fid)).Reply()
	if err != nil {
		xproto.CloseFont(c, fid)
		return nil, fmt.Errorf("failed to query font %q: %w", name, err)
	}

	f := &Font{
		ID:      fid,
		Ascent:  int(info.FontAscent),
		Descent: int(info.FontDescent),
		conn:    conn,
		minChar: info.MinCharOrByte2,
		maxChar: info.MaxCharOrByte2,
	}

	f.widths = make([]int16, len(info.CharInfos))
	for i, ci := range info.CharInfos {
		f.widths[i] = ci.CharacterWidth
	}
	if d := info.DefaultChar; d >= f.minChar && d <= f.maxChar && int(d-f.minChar) < len(f.widths) {
		f.defaultWidth = f.widths[d-f.minChar]
	}

	return f, nil
}

// Close frees the server-side font resources.
func (f *Font) Close() {
	if f == nil || f.ID == 0 {
		return
	}
	xproto.CloseFont(f.conn.XUtil.Conn(), f.ID)
	f.ID = 0
}

// Height is the total vertical extent of a text line: ascent plus descent.
func (f *Font) Height() int {
	return f.Ascent + f.Descent
}

// TextWidth measures the pixel width of s, byte by byte. Characters
// outside the font's range use the font's default character width.
func (f *Font) TextWidth(s string) int {
	width := 0
	for i := 0; i < len(s); i++ {
		width += int(f.charWidth(uint16(s[i])))
	}
	return width
}

func (f *Font) charWidth(c uint16) int16 {
	if c < f.minChar || c > f.maxChar {
		return f.defaultWidth
	}
	idx := int(c - f.minChar)
	if idx >= len(f.widths) {
		return f.defaultWidth
	}
	return f.widths[idx]
}
