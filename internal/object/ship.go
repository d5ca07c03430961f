package object

import (
	"image/color"

	"github.com/tomz197/invasion/internal/physics"
)

// Ship is the player-controlled cannon at the bottom of the screen.
type Ship struct {
	X    float64      // Exact horizontal position
	Rect physics.Rect // Render rect, X snapped from the float position

	MovingLeft  bool
	MovingRight bool

	Color color.Color
}

// NewShip creates a ship of the given size centered at the bottom of the screen.
func NewShip(screen Screen, width, height int, c color.Color) *Ship {
	s := &Ship{
		Rect:  physics.NewRect(width, height),
		Color: c,
	}
	s.CenterShip(screen)
	return s
}

// CenterShip moves the ship back to the bottom center of the screen.
func (s *Ship) CenterShip(screen Screen) {
	s.Rect = s.Rect.WithMidBottom(screen.CenterX, screen.Height)
	s.X = float64(s.Rect.X)
}

// Update moves the ship according to its movement flags.
// Both flags may be set at once, in which case the moves cancel out.
func (s *Ship) Update(screen Screen, speed float64) {
	if s.MovingRight && s.Rect.Right() < screen.Width {
		s.X += speed
	}
	if s.MovingLeft && s.Rect.Left() > 0 {
		s.X -= speed
	}
	s.Rect.X = physics.Snap(s.X)
}

// Draw renders the ship sprite.
func (s *Ship) Draw(surface Surface) {
	surface.DrawSprite(ShipSprite, s.Rect, s.Color)
}
