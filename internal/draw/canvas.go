package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// RGB is an 8-bit per channel pixel color.
type RGB struct {
	R, G, B uint8
}

// ToRGB converts any color to RGB.
func ToRGB(c color.Color) RGB {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RGB{}
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// cell is the pair of sub-pixels a terminal cell shows.
type cell struct {
	top, bottom RGB
	valid       bool // False forces a redraw of the cell
}

// Canvas is a color drawing buffer with 2x vertical resolution using half-block
// characters. It scales from logical coordinates to actual terminal pixels and only
// re-emits cells that changed since the previous Render.
type Canvas struct {
	termWidth      int   // Actual terminal columns
	termHeight     int   // Actual terminal rows
	subPixelHeight int   // termHeight * 2
	pixels         []RGB // Flat slice: [y * termWidth + x]
	background     RGB   // Last Fill color

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	profile   termenv.Profile
	sequences map[RGB][2]string // Cached foreground/background sequences
	previous  []cell            // Cells as of the last Render

	// Reusable buffers to reduce allocations
	renderBuf strings.Builder // Buffer for batching render output
	numBuf    [20]byte        // Scratch buffer for integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64, profile termenv.Profile) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       profile,
		sequences:     make(map[RGB][2]string),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]RGB, subPixelHeight*termWidth)
		c.previous = make([]cell, termWidth*termHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	// Update scale factors
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.previous {
		c.previous[i].valid = false
	}
}

// Invalidate forces a redraw of width cells starting at the 1-based terminal
// position (col, row), relative to the canvas. Used after text was written on top.
func (c *Canvas) Invalidate(col, row, width int) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+width; x++ {
		if x >= 0 && x < c.termWidth {
			c.previous[y*c.termWidth+x].valid = false
		}
	}
}

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(bg color.Color) {
	rgb := ToRGB(bg)
	c.background = rgb
	for i := range c.pixels {
		c.pixels[i] = rgb
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, rgb RGB) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = rgb
	}
}

// PixelAt returns the pixel at actual terminal coordinates.
func (c *Canvas) PixelAt(x, y int) RGB {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return c.background
}

// pixelSpan converts a logical span to a pixel span covering at least one pixel.
func pixelSpan(pos, size, scale float64) (int, int) {
	start := int(math.Floor(pos * scale))
	end := int(math.Ceil((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// FillRect fills a rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	rgb := ToRGB(col)
	px0, px1 := pixelSpan(x, w, c.scaleX)
	py0, py1 := pixelSpan(y, h, c.scaleY)
	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			c.setPixel(px, py, rgb)
		}
	}
}

// Mask reports whether the pixel at (px, py) of a w×h area is set.
type Mask func(px, py, w, h int) bool

// DrawMask draws a mask scaled into a rectangle given in logical coordinates.
func (c *Canvas) DrawMask(x, y, w, h float64, mask Mask, col color.Color) {
	rgb := ToRGB(col)
	px0, px1 := pixelSpan(x, w, c.scaleX)
	py0, py1 := pixelSpan(y, h, c.scaleY)
	pw, ph := px1-px0, py1-py0
	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			if mask(px-px0, py-py0, pw, ph) {
				c.setPixel(px, py, rgb)
			}
		}
	}
}

// sequence returns the cached SGR parameter for a color.
func (c *Canvas) sequence(rgb RGB, bg bool) string {
	seqs, ok := c.sequences[rgb]
	if !ok {
		tc := c.profile.FromColor(color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
		seqs = [2]string{tc.Sequence(false), tc.Sequence(true)}
		c.sequences[rgb] = seqs
	}
	if bg {
		return seqs[1]
	}
	return seqs[0]
}

// maxChunkSize is the maximum bytes to write at once.
const maxChunkSize = 1400

// Render outputs the changed cells to the writer using half-block characters.
// Without color support, pixels that differ from the background are drawn as blocks.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var lastFg, lastBg RGB
	haveColors := false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{
				top:    c.pixels[topOffset+col],
				bottom: c.pixels[bottomOffset+col],
				valid:  true,
			}
			idx := row*c.termWidth + col
			if c.previous[idx] == cur {
				continue
			}
			c.previous[idx] = cur

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)

			if c.profile == termenv.Ascii {
				c.renderBuf.WriteRune(c.monoBlock(cur))
				continue
			}

			if !haveColors || cur.top != lastFg || cur.bottom != lastBg {
				c.renderBuf.WriteString("\033[")
				c.renderBuf.WriteString(c.sequence(cur.top, false))
				c.renderBuf.WriteByte(';')
				c.renderBuf.WriteString(c.sequence(cur.bottom, true))
				c.renderBuf.WriteByte('m')
				lastFg, lastBg, haveColors = cur.top, cur.bottom, true
			}
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
	}

	if haveColors {
		c.renderBuf.WriteString("\033[0m")
	}

	// Write output in chunks for optimal flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// monoBlock picks a block character for a cell when colors are unavailable.
func (c *Canvas) monoBlock(cur cell) rune {
	top := cur.top != c.background
	bottom := cur.bottom != c.background
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal position (including the centering
// offset) to the logical coordinates at the center of that cell.
func (c *Canvas) TerminalToLogical(col, row int) (x, y int) {
	px := float64(col-1-c.offsetCol) + 0.5
	py := float64(row-1-c.offsetRow)*2 + 1
	return int(px / c.scaleX), int(py / c.scaleY)
}
