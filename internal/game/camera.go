package game

import "github.com/vovakirdan/inconvenience/internal/core"

// Camera is the level coordinate shown at the top-left of the viewport.
// It may be negative or exceed the level size; rendering wraps it.
type Camera struct {
	X, Y int
}

// Follow centers the camera on level cell (x, y) for the given viewport.
func (c *Camera) Follow(x, y int, view core.Rect) {
	c.X = x - view.W/2
	c.Y = y - view.H/2
}

// Project calls fn for every device cell inside view that shows level cell
// (x, y). Because the level wraps, a cell near the seam can appear more
// than once when the viewport is larger than the level.
func (c Camera) Project(x, y int, view core.Rect, l *Level, fn func(dx, dy int)) {
	for _, dy := range projectAxis(y, c.Y, view.Y, view.H, l.Height()) {
		for _, dx := range projectAxis(x, c.X, view.X, view.W, l.Width()) {
			fn(dx, dy)
		}
	}
}

// projectAxis returns the device coordinates in [origin, origin+span) that
// are congruent to pos modulo size once the camera offset is removed.
func projectAxis(pos, cam, origin, span, size int) []int {
	var out []int
	for d := origin + core.Wrap(pos-cam, size); d < origin+span; d += size {
		out = append(out, d)
	}
	return out
}
