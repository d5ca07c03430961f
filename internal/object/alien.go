package object

import (
	"image/color"

	"github.com/tomz197/invasion/internal/physics"
)

// Alien is a single member of the fleet.
// The fleet direction is owned by the caller and passed in on every call.
type Alien struct {
	X    float64      // Exact horizontal position
	Rect physics.Rect // Render rect, X snapped from the float position

	Color color.Color
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(x, y, width, height int, c color.Color) *Alien {
	return &Alien{
		X:     float64(x),
		Rect:  physics.Rect{X: x, Y: y, W: width, H: height},
		Color: c,
	}
}

// CheckEdges reports whether the alien touches the screen edge it is moving toward.
func (a *Alien) CheckEdges(screen Screen, direction int) bool {
	return (a.Rect.Right() >= screen.Width && direction > 0) ||
		(a.Rect.Left() <= 0 && direction < 0)
}

// Update moves the alien horizontally in the fleet direction.
func (a *Alien) Update(speed float64, direction int) {
	a.X += speed * float64(direction)
	a.Rect.X = physics.Snap(a.X)
}

// Drop moves the alien down by dy pixels.
func (a *Alien) Drop(dy int) {
	a.Rect.Y += dy
}

// Draw renders the alien sprite.
func (a *Alien) Draw(surface Surface) {
	surface.DrawSprite(AlienSprite, a.Rect, a.Color)
}
