// Package window runs the game in a desktop window through ebiten.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/tomz197/invasion/internal/game"
	"github.com/tomz197/invasion/internal/input"
)

// binding maps a key to a game action.
type binding struct {
	key    ebiten.Key
	action input.Action
}

// bindings lists the keyboard controls, in the order their events are reported.
var bindings = []binding{
	{ebiten.KeyArrowLeft, input.ActionLeft},
	{ebiten.KeyA, input.ActionLeft},
	{ebiten.KeyArrowRight, input.ActionRight},
	{ebiten.KeyD, input.ActionRight},
	{ebiten.KeySpace, input.ActionFire},
	{ebiten.KeyP, input.ActionStart},
	{ebiten.KeyEnter, input.ActionStart},
	{ebiten.KeyQ, input.ActionQuit},
}

// Game adapts a Controller to ebiten.Game.
type Game struct {
	controller *game.Controller
	surface    *Surface
	log        *log.Logger
	cursor     ebiten.CursorModeType
}

var _ ebiten.Game = (*Game)(nil)

// New creates the ebiten adapter for a controller.
func New(c *game.Controller, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		controller: c,
		surface:    NewSurface(),
		log:        logger,
		cursor:     -1,
	}
}

// Run opens the window and blocks until the game quits.
func Run(c *game.Controller, title string, logger *log.Logger) error {
	screen := c.Screen()
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(game.TicksPerSecond)

	if err := ebiten.RunGame(New(c, logger)); err != nil {
		return errors.Wrap(err, "run window")
	}
	return nil
}

// Update polls input and advances the game by one tick.
func (g *Game) Update() error {
	if err := g.controller.Tick(pollEvents()); err != nil {
		return err
	}
	if !g.controller.Running() {
		g.log.Info("window closing")
		return ebiten.Termination
	}
	g.updateCursor()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	if err := g.controller.Draw(g.surface); err != nil {
		g.log.Error("draw frame", "err", err)
	}
}

// Layout keeps the logical screen size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	screen := g.controller.Screen()
	return screen.Width, screen.Height
}

// updateCursor shows the mouse cursor on the menu only.
func (g *Game) updateCursor() {
	mode := ebiten.CursorModeHidden
	if g.controller.CursorVisible() {
		mode = ebiten.CursorModeVisible
	}
	if mode != g.cursor {
		ebiten.SetCursorMode(mode)
		g.cursor = mode
	}
}

// pollEvents converts this tick's keyboard, mouse and window state to game events.
func pollEvents() []input.Event {
	var events []input.Event
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, input.Press(b.action))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			events = append(events, input.Release(b.action))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, input.ClickAt(x, y))
	}
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Event{Kind: input.Close})
	}
	return events
}
