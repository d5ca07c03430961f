// Package physics provides screen-space rectangles and collision detection.
package physics

import "math"

// Rect is an axis-aligned rectangle in integer screen coordinates.
// X, Y is the top-left corner; Y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at the origin with the given size.
func NewRect(w, h int) Rect {
	return Rect{W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// WithMidBottom returns r moved so its bottom edge is centered on (x, y).
func (r Rect) WithMidBottom(x, y int) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H
	return r
}

// WithMidTop returns r moved so its top edge is centered on (x, y).
func (r Rect) WithMidTop(x, y int) Rect {
	r.X = x - r.W/2
	r.Y = y
	return r
}

// WithCenter returns r moved so it is centered on (x, y).
func (r Rect) WithCenter(x, y int) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H/2
	return r
}

// Intersects reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside r.
// Left and top edges are inclusive, right and bottom edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Snap converts a continuous position to its render coordinate by truncating
// toward negative infinity.
func Snap(v float64) int {
	return int(math.Floor(v))
}
