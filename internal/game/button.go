package game

import (
	"image/color"

	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/physics"
)

// Play button dimensions.
const (
	buttonWidth  = 200
	buttonHeight = 50
)

// Button is a clickable labelled rectangle centered on the screen.
type Button struct {
	Rect      physics.Rect
	Label     string
	Color     color.Color
	TextColor color.Color
}

// NewButton creates a button in the middle of the screen.
func NewButton(screen object.Screen, label string, bg, fg color.Color) *Button {
	return &Button{
		Rect:      physics.NewRect(buttonWidth, buttonHeight).WithCenter(screen.CenterX, screen.CenterY),
		Label:     label,
		Color:     bg,
		TextColor: fg,
	}
}

// Contains reports whether a click at (x, y) hits the button.
func (b *Button) Contains(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Draw renders the button.
func (b *Button) Draw(surface object.Surface) {
	surface.DrawButton(b.Rect, b.Label, b.Color, b.TextColor)
}
