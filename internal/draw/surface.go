package draw

import (
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/physics"
)

// overlay is a line of text written on top of the rendered canvas.
type overlay struct {
	text  string
	x, y  int
	align object.Align
	fg    color.Color
	bg    color.Color // nil means sample the canvas under the text
	bold  bool
}

// Terminal is an object.Surface that draws onto a terminal.
// Pixels go to a scaled Canvas, text is overlaid with lipgloss styles.
type Terminal struct {
	writer   io.Writer
	canvas   *Canvas
	chunks   *ChunkWriter
	renderer *lipgloss.Renderer
	overlays []overlay

	logicalWidth  int
	logicalHeight int
}

// Compile-time check that Terminal implements object.Surface.
var _ object.Surface = (*Terminal)(nil)

// NewTerminal creates a surface for a logical screen of the given size, rendered into
// a terminal of termWidth×termHeight cells using the given color profile.
func NewTerminal(w io.Writer, screen object.Screen, termWidth, termHeight int, profile termenv.Profile) *Terminal {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	t := &Terminal{
		writer:        w,
		chunks:        NewChunkWriter(w, 0, 0),
		renderer:      renderer,
		logicalWidth:  screen.Width,
		logicalHeight: screen.Height,
	}
	t.canvas = NewScaledCanvas(1, 1, float64(screen.Width), float64(screen.Height), profile)
	t.Resize(termWidth, termHeight)
	return t
}

// Canvas returns the underlying canvas.
func (t *Terminal) Canvas() *Canvas {
	return t.canvas
}

// Resize fits the logical screen into the terminal, keeping its aspect ratio and
// centering it. A terminal cell is treated as two square sub-pixels stacked.
// Does nothing if the render area is unchanged.
func (t *Terminal) Resize(termWidth, termHeight int) {
	renderWidth, renderHeight, offsetCol, offsetRow := FitAspect(termWidth, termHeight, t.logicalWidth, t.logicalHeight)
	c := t.canvas
	if renderWidth == c.TerminalWidth() && renderHeight == c.TerminalHeight() &&
		offsetCol == c.OffsetCol() && offsetRow == c.OffsetRow() {
		return
	}

	ClearScreen(t.writer)
	c.Resize(renderWidth, renderHeight)
	c.SetOffset(offsetCol, offsetRow)
	c.ForceRedraw()
	t.chunks.SetOffset(offsetCol, offsetRow)
}

// FitAspect returns the largest render area with the logical aspect ratio that fits
// in the terminal, and the offsets that center it.
func FitAspect(termWidth, termHeight, logicalWidth, logicalHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	aspect := float64(logicalWidth) / float64(logicalHeight)

	renderWidth = termWidth
	renderHeight = int(float64(renderWidth) / aspect / 2)
	if renderHeight > termHeight {
		renderHeight = termHeight
		renderWidth = int(float64(renderHeight) * 2 * aspect)
	}
	if renderWidth < 1 {
		renderWidth = 1
	}
	if renderHeight < 1 {
		renderHeight = 1
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// TerminalToLogical converts a terminal click position to logical coordinates.
func (t *Terminal) TerminalToLogical(col, row int) (int, int) {
	return t.canvas.TerminalToLogical(col, row)
}

// Clear fills the whole frame with the background color.
func (t *Terminal) Clear(bg color.Color) {
	t.canvas.Fill(bg)
	t.overlays = t.overlays[:0]
}

// FillRect draws a solid rectangle.
func (t *Terminal) FillRect(r physics.Rect, c color.Color) {
	t.canvas.FillRect(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), c)
}

// DrawSprite draws a sprite mask scaled into r.
func (t *Terminal) DrawSprite(s *object.Sprite, r physics.Rect, c color.Color) {
	t.canvas.DrawMask(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), s.SampleAt, c)
}

// DrawText queues a line of text drawn over the canvas on Present.
func (t *Terminal) DrawText(text string, x, y int, align object.Align, c color.Color) {
	t.overlays = append(t.overlays, overlay{text: text, x: x, y: y, align: align, fg: c, bold: true})
}

// DrawButton draws the button body on the canvas and queues its label.
func (t *Terminal) DrawButton(r physics.Rect, label string, bg, fg color.Color) {
	t.FillRect(r, bg)
	t.overlays = append(t.overlays, overlay{
		text:  label,
		x:     r.CenterX(),
		y:     r.CenterY(),
		align: object.AlignCenter,
		fg:    fg,
		bg:    bg,
		bold:  true,
	})
}

// Present renders changed cells and the text overlays, then flushes the output.
func (t *Terminal) Present() error {
	t.canvas.Render(t.chunks)
	for _, o := range t.overlays {
		t.writeOverlay(o)
	}
	if err := t.chunks.Flush(); err != nil {
		return errors.Wrap(err, "flush frame")
	}
	return nil
}

// writeOverlay writes one text overlay and marks the cells under it for redraw.
func (t *Terminal) writeOverlay(o overlay) {
	width := lipgloss.Width(o.text)
	col, row := t.canvas.LogicalToTerminal(float64(o.x), float64(o.y))
	switch o.align {
	case object.AlignCenter:
		col -= width / 2
	case object.AlignRight:
		col -= width
	}
	if col < 1 {
		col = 1
	}
	if maxCol := t.canvas.TerminalWidth() - width + 1; col > maxCol && maxCol >= 1 {
		col = maxCol
	}
	if row < 1 || row > t.canvas.TerminalHeight() {
		return
	}

	bg := o.bg
	if bg == nil {
		px := t.canvas.PixelAt(col-1, (row-1)*2)
		bg = color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff}
	}

	style := t.renderer.NewStyle().
		Foreground(lipgloss.Color(hexColor(o.fg))).
		Background(lipgloss.Color(hexColor(bg))).
		Bold(o.bold)

	t.chunks.WriteAt(col, row, style.Render(o.text))
	t.canvas.Invalidate(col, row, width)
}

// hexColor formats a color as #rrggbb.
func hexColor(c color.Color) string {
	rgb := ToRGB(c)
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}.Hex()
}
