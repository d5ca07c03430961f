package object

import (
	"image/color"

	"github.com/tomz197/invasion/internal/physics"
)

// Screen represents the logical play area dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Rect returns the screen bounds as a rectangle at the origin.
func (s Screen) Rect() physics.Rect {
	return physics.Rect{W: s.Width, H: s.Height}
}

// Align controls how text is anchored horizontally at its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the render sink a frame is drawn onto.
// Calls arrive in draw order and the frame becomes visible on Present.
type Surface interface {
	// Clear fills the whole frame with the background color.
	Clear(bg color.Color)
	// FillRect draws a solid rectangle.
	FillRect(r physics.Rect, c color.Color)
	// DrawSprite draws a sprite mask scaled into r.
	DrawSprite(s *Sprite, r physics.Rect, c color.Color)
	// DrawText draws a single line of text with its top edge at y.
	DrawText(text string, x, y int, align Align, c color.Color)
	// DrawButton draws a filled button with a centered label.
	DrawButton(r physics.Rect, label string, bg, fg color.Color)
	// Present makes the frame visible.
	Present() error
}

// Drawable is implemented by entities that can render themselves.
type Drawable interface {
	Draw(s Surface)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj any) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
