package game

import (
	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/physics"
)

// HUD layout in logical pixels.
const (
	hudMargin     = 20 // Distance of the score from the top right corner
	hudLineHeight = 36 // Height reserved for one line of HUD text
	hudGap        = 10 // Space between the score and the level
	shipIconInset = 10 // Distance of the ship icons from the top left corner
)

// Draw renders the current frame onto the surface and presents it.
func (c *Controller) Draw(surface object.Surface) error {
	s := c.settings
	surface.Clear(s.BackgroundColor)

	for _, b := range c.bullets {
		b.Draw(surface)
	}
	c.ship.Draw(surface)
	for _, a := range c.aliens {
		a.Draw(surface)
	}
	for _, p := range c.particles {
		p.DrawFaded(surface, s.BackgroundColor)
	}

	c.drawHUD(surface)

	if c.state == StateInactive {
		c.button.Draw(surface)
	}
	return surface.Present()
}

// drawHUD draws the score top right, the high score top center, the level under the
// score and one ship icon per ship left.
func (c *Controller) drawHUD(surface object.Surface) {
	s := c.settings
	sb := c.scoreboard

	surface.DrawText(sb.ScoreText, c.screen.Width-hudMargin, hudMargin, object.AlignRight, s.TextColor)
	surface.DrawText(sb.HighScoreText, c.screen.CenterX, hudMargin, object.AlignCenter, s.TextColor)
	surface.DrawText(sb.LevelText, c.screen.Width-hudMargin, hudMargin+hudLineHeight+hudGap, object.AlignRight, s.TextColor)

	for i := 0; i < sb.Ships; i++ {
		icon := physics.Rect{
			X: shipIconInset + i*s.ShipWidth,
			Y: shipIconInset,
			W: s.ShipWidth,
			H: s.ShipHeight,
		}
		surface.DrawSprite(object.ShipSprite, icon, s.ShipColor)
	}
}
