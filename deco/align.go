package deco

import "github.com/pikin-cock/xdeco/x11"

// Align describes horizontal text placement within a drawn rectangle.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// StringPosition computes where the baseline of text should start inside
// r. The text block is centered vertically; horizontally it is centered,
// or set one pixel in from the left or right edge, per align.
func StringPosition(f *Font, r x11.Rect, align Align, text string) (x, y int) {
	width := f.TextWidth(text)

	y = r.Y + (r.Height-f.Height())/2 + f.Ascent

	switch align {
	case AlignLeft:
		x = r.X + 1
	case AlignRight:
		x = r.X + r.Width - (width + 1)
	default:
		x = r.X + r.Width/2 - width/2
	}
	return x, y
}
