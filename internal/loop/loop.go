// Package loop runs the game in a terminal.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/tomz197/invasion/internal/draw"
	"github.com/tomz197/invasion/internal/game"
	"github.com/tomz197/invasion/internal/input"
)

const targetFrameTime = time.Second / game.TicksPerSecond

// Options configures the terminal loop.
type Options struct {
	Controller *game.Controller
	Input      io.Reader
	Output     io.Writer
	TermSize   draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Profile    termenv.Profile
	Logger     *log.Logger // Defaults to a discarding logger
}

// Run starts the main loop with the standard Input → Update → Draw cycle and returns
// once the controller stops. Cancelling ctx asks the controller to close, just like
// closing the window would.
func Run(ctx context.Context, opts Options) error {
	c := opts.Controller
	w := opts.Output
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	stream, err := input.StartStream(opts.Input)
	if err != nil {
		return errors.Wrap(err, "start input")
	}
	defer stream.Close()

	draw.EnterAltScreen(w)
	defer draw.ExitAltScreen(w)
	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := termSize()
	if err != nil {
		return errors.Wrap(err, "terminal size")
	}
	surface := draw.NewTerminal(w, c.Screen(), termWidth, termHeight, opts.Profile)
	mouse := newMouseMode(w)
	defer mouse.set(false)

	logger.Info("terminal loop started", "cols", termWidth, "rows", termHeight, "profile", profileName(opts.Profile))

	for c.Running() {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		events := collectEvents(ctx, stream, surface)

		// ===== UPDATE PHASE =====
		if err := c.Tick(events); err != nil {
			return err
		}
		if !c.Running() {
			break
		}
		mouse.set(c.CursorVisible())

		// ===== DRAW PHASE =====
		if cols, rows, err := termSize(); err == nil {
			surface.Resize(cols, rows)
		}
		if err := c.Draw(surface); err != nil {
			return errors.Wrap(err, "draw frame")
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	logger.Info("terminal loop stopped")
	draw.ClearScreen(w)
	return nil
}

// collectEvents drains pending input and converts mouse clicks to logical coordinates.
func collectEvents(ctx context.Context, stream *input.Stream, surface *draw.Terminal) []input.Event {
	events, clicks := stream.ReadEvents()
	for _, click := range clicks {
		x, y := surface.TerminalToLogical(click.Col, click.Row)
		events = append(events, input.ClickAt(x, y))
	}
	if ctx.Err() != nil {
		events = append(events, input.Event{Kind: input.Close})
	}
	return events
}

// mouseMode switches terminal mouse reporting on while the menu is shown.
type mouseMode struct {
	w       io.Writer
	enabled bool
}

func newMouseMode(w io.Writer) *mouseMode {
	return &mouseMode{w: w}
}

func (m *mouseMode) set(enabled bool) {
	if enabled == m.enabled {
		return
	}
	m.enabled = enabled
	if enabled {
		io.WriteString(m.w, input.EnableMouse)
	} else {
		io.WriteString(m.w, input.DisableMouse)
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
