package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/physics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// textScale enlarges the bitmap font to HUD size.
const textScale = 3

// maxCachedTexts bounds the rendered text cache; the score changes often.
const maxCachedTexts = 64

// Surface is an object.Surface drawing onto an ebiten image.
// Sprites and text lines are rendered once in white and tinted when drawn.
type Surface struct {
	target  *ebiten.Image
	face    font.Face
	sprites map[*object.Sprite]*ebiten.Image
	texts   map[string]*ebiten.Image
}

var _ object.Surface = (*Surface)(nil)

// NewSurface creates a surface. SetTarget must be called before drawing.
func NewSurface() *Surface {
	return &Surface{
		face:    basicfont.Face7x13,
		sprites: make(map[*object.Sprite]*ebiten.Image),
		texts:   make(map[string]*ebiten.Image),
	}
}

// SetTarget sets the image the next frame is drawn onto.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Clear fills the whole frame with the background color.
func (s *Surface) Clear(bg color.Color) {
	s.target.Fill(bg)
}

// FillRect draws a solid rectangle.
func (s *Surface) FillRect(r physics.Rect, c color.Color) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawSprite draws a sprite mask scaled into r.
func (s *Surface) DrawSprite(sp *object.Sprite, r physics.Rect, c color.Color) {
	if sp.Width == 0 || sp.Height == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(sp.Width), float64(r.H)/float64(sp.Height))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(c)
	s.target.DrawImage(s.spriteImage(sp), op)
}

// spriteImage returns the white mask image of a sprite.
func (s *Surface) spriteImage(sp *object.Sprite) *ebiten.Image {
	if img, ok := s.sprites[sp]; ok {
		return img
	}
	pix := make([]byte, 4*sp.Width*sp.Height)
	for y := 0; y < sp.Height; y++ {
		for x := 0; x < sp.Width; x++ {
			if sp.At(x, y) {
				i := 4 * (y*sp.Width + x)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
			}
		}
	}
	img := ebiten.NewImage(sp.Width, sp.Height)
	img.WritePixels(pix)
	s.sprites[sp] = img
	return img
}

// DrawText draws a single line of text with its top edge at y.
func (s *Surface) DrawText(str string, x, y int, align object.Align, c color.Color) {
	img := s.textImage(str)
	if img == nil {
		return
	}
	w := img.Bounds().Dx() * textScale
	switch align {
	case object.AlignCenter:
		x -= w / 2
	case object.AlignRight:
		x -= w
	}
	s.drawTextImage(img, x, y, c)
}

// DrawButton draws a filled button with a centered label.
func (s *Surface) DrawButton(r physics.Rect, label string, bg, fg color.Color) {
	s.FillRect(r, bg)
	img := s.textImage(label)
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx()*textScale, img.Bounds().Dy()*textScale
	s.drawTextImage(img, r.CenterX()-w/2, r.CenterY()-h/2, fg)
}

// Present does nothing; ebiten shows the image once Draw returns.
func (s *Surface) Present() error {
	return nil
}

func (s *Surface) drawTextImage(img *ebiten.Image, x, y int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	s.target.DrawImage(img, op)
}

// textImage renders str in white at the font's native size.
func (s *Surface) textImage(str string) *ebiten.Image {
	if img, ok := s.texts[str]; ok {
		return img
	}
	bounds := text.BoundString(s.face, str)
	if bounds.Empty() {
		return nil
	}
	if len(s.texts) >= maxCachedTexts {
		for k, img := range s.texts {
			img.Deallocate()
			delete(s.texts, k)
		}
	}
	img := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	text.Draw(img, str, s.face, -bounds.Min.X, -bounds.Min.Y, color.White)
	s.texts[str] = img
	return img
}
