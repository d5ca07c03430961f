package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/physics"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestFitAspect(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"width bound", 120, 100, 120, 40, 0, 30},
		{"height bound", 300, 40, 120, 40, 90, 0},
		{"exact", 150, 50, 150, 50, 0, 0},
		{"degenerate", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitAspect(tt.termW, tt.termH, 1200, 800)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
			if oc != tt.wantOffCol || or != tt.wantOffRow {
				t.Errorf("Expected offset (%d, %d), got (%d, %d)", tt.wantOffCol, tt.wantOffRow, oc, or)
			}
		})
	}
}

func TestCanvasFillRectScales(t *testing.T) {
	c := NewScaledCanvas(100, 50, 1000, 1000, termenv.TrueColor)
	c.Fill(black)
	c.FillRect(100, 100, 50, 50, white)

	// 1000 logical units map to 100 columns and 100 sub-pixel rows.
	if got := c.PixelAt(10, 10); got != ToRGB(white) {
		t.Errorf("Expected pixel (10,10) to be white, got %v", got)
	}
	if got := c.PixelAt(15, 15); got != ToRGB(black) {
		t.Errorf("Expected pixel (15,15) to stay black, got %v", got)
	}
}

func TestCanvasRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4, termenv.TrueColor)
	c.Fill(black)

	var first bytes.Buffer
	c.Render(&first)
	if n := strings.Count(first.String(), string(BlockUpperHalf)); n != 8 {
		t.Fatalf("Expected 8 cells on first render, got %d", n)
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("Expected no output for an unchanged frame, got %q", second.String())
	}

	c.FillRect(0, 0, 1, 1, white)
	var third bytes.Buffer
	c.Render(&third)
	if n := strings.Count(third.String(), string(BlockUpperHalf)); n != 1 {
		t.Errorf("Expected 1 changed cell, got %d", n)
	}
	if !strings.HasSuffix(third.String(), "\033[0m") {
		t.Errorf("Expected colors to be reset at the end, got %q", third.String())
	}
}

func TestCanvasInvalidateForcesRedraw(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4, termenv.TrueColor)
	c.Fill(black)
	c.Render(&bytes.Buffer{})

	c.Invalidate(2, 1, 2)
	var buf bytes.Buffer
	c.Render(&buf)
	if n := strings.Count(buf.String(), string(BlockUpperHalf)); n != 2 {
		t.Errorf("Expected 2 invalidated cells, got %d", n)
	}
}

func TestCanvasAsciiUsesBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2, termenv.Ascii)
	c.Fill(black)
	c.FillRect(0, 0, 1, 2, white)
	c.FillRect(1, 1, 1, 1, white)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	if !strings.ContainsRune(out, BlockFull) || !strings.ContainsRune(out, BlockLowerHalf) {
		t.Errorf("Expected full and lower half blocks, got %q", out)
	}
	if strings.Contains(out, "\033[0m") {
		t.Errorf("Expected no color sequences, got %q", out)
	}
}

func TestCanvasDrawMask(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4, termenv.TrueColor)
	c.Fill(black)
	checker := func(px, py, w, h int) bool { return (px+py)%2 == 0 }
	c.DrawMask(0, 0, 4, 4, checker, white)

	if c.PixelAt(0, 0) != ToRGB(white) || c.PixelAt(1, 0) != ToRGB(black) {
		t.Errorf("Expected checkered pixels, got %v %v", c.PixelAt(0, 0), c.PixelAt(1, 0))
	}
}

func TestCanvasCoordinateConversion(t *testing.T) {
	c := NewScaledCanvas(120, 40, 1200, 800, termenv.TrueColor)
	c.SetOffset(10, 5)

	x, y := c.TerminalToLogical(11, 6)
	if x != 5 || y != 10 {
		t.Errorf("Expected (5, 10) for the first cell, got (%d, %d)", x, y)
	}

	col, row := c.LogicalToTerminal(600, 400)
	if col != 61 || row != 21 {
		t.Errorf("Expected (61, 21), got (%d, %d)", col, row)
	}
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if cw.Len() == 0 {
		t.Fatal("Expected buffered output before flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != "\033[3;4Hhi" {
		t.Errorf("Expected offset cursor move, got %q", out.String())
	}
	if cw.Len() != 0 {
		t.Errorf("Expected empty buffer after flush, got %d", cw.Len())
	}
}

func TestTerminalPresentDrawsTextOverlay(t *testing.T) {
	var out bytes.Buffer
	screen := object.NewScreen(1200, 800)
	term := NewTerminal(&out, screen, 120, 40, termenv.TrueColor)
	out.Reset()

	term.Clear(black)
	term.DrawText("Score", 600, 20, object.AlignCenter, white)
	term.DrawButton(physics.Rect{X: 500, Y: 375, W: 200, H: 50}, "Play", color.RGBA{G: 0xff, A: 0xff}, white)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Score") || !strings.Contains(got, "Play") {
		t.Errorf("Expected text overlays in output, got %d bytes", len(got))
	}
}

func TestTerminalResizeRecenters(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, object.NewScreen(1200, 800), 120, 40, termenv.TrueColor)
	term.Resize(200, 40)

	c := term.Canvas()
	if c.TerminalWidth() != 120 || c.OffsetCol() != 40 {
		t.Errorf("Expected width 120 at offset 40, got %d at %d", c.TerminalWidth(), c.OffsetCol())
	}
}
