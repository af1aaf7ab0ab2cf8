package x11

// Rect is an axis-aligned rectangle in root-window coordinates,
// origin at the top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (px, py) lies inside r.
// The interval is half-open: x in [r.X, r.X+r.Width), same for y.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.Width &&
		py >= r.Y && py < r.Y+r.Height
}
