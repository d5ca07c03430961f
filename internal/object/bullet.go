package object

import (
	"image/color"

	"github.com/tomz197/invasion/internal/physics"
)

// Bullet is a projectile fired upward by the ship.
type Bullet struct {
	Y     float64      // Exact vertical position
	Rect  physics.Rect // Render rect, Y snapped from the float position
	Color color.Color
}

// NewBullet creates a bullet at the ship's top center.
func NewBullet(ship *Ship, width, height int, c color.Color) *Bullet {
	rect := physics.NewRect(width, height).WithMidTop(ship.Rect.CenterX(), ship.Rect.Top())
	return &Bullet{
		Y:     float64(rect.Y),
		Rect:  rect,
		Color: c,
	}
}

// Update moves the bullet up the screen.
// Returns true once the bullet has left the top of the screen.
func (b *Bullet) Update(speed float64) (remove bool) {
	b.Y -= speed
	b.Rect.Y = physics.Snap(b.Y)
	return b.Gone()
}

// Gone reports whether the bullet's bottom edge has passed the top of the screen.
func (b *Bullet) Gone() bool {
	return b.Rect.Bottom() <= 0
}

// Draw renders the bullet as a solid rectangle.
func (b *Bullet) Draw(surface Surface) {
	surface.FillRect(b.Rect, b.Color)
}
