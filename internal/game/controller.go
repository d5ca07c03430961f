// Package game runs the Alien Invasion simulation.
//
// A Controller owns every entity and advances them one tick at a time. Frontends feed it
// input events, call Tick at a fixed rate and let it draw onto an object.Surface.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/tomz197/invasion/internal/input"
	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/physics"
	"github.com/tomz197/invasion/internal/score"
	"github.com/tomz197/invasion/internal/settings"
	"github.com/tomz197/invasion/internal/sound"
)

// TicksPerSecond is the rate frontends call Tick at.
const TicksPerSecond = 60

// ShipHitPause is how long the game freezes after losing a ship.
const ShipHitPause = 500 * time.Millisecond

// State is the top-level phase of the game.
type State int

const (
	StateInactive State = iota // Menu: play button shown, nothing moves
	StateActive                // Playing
)

// String returns the state name.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "inactive"
}

// Options configures a Controller.
type Options struct {
	Settings  *settings.Settings
	Store     score.Store // Receives the high score on quit
	HighScore int         // High score loaded at startup

	Sound  sound.Player        // Defaults to sound.Silent
	Logger *log.Logger         // Defaults to a discarding logger
	Sleep  func(time.Duration) // Defaults to time.Sleep
}

// Controller is the game state machine.
type Controller struct {
	settings *settings.Settings
	screen   object.Screen
	store    score.Store
	sound    sound.Player
	log      *log.Logger
	sleep    func(time.Duration)

	ship      *object.Ship
	bullets   []*object.Bullet
	aliens    []*object.Alien
	particles []*object.Particle
	grid      *physics.SpatialGrid
	dead      []bool // Per-alien scratch for collision resolution

	stats      *score.Stats
	scoreboard *score.Scoreboard
	button     *Button

	state            State
	running          bool
	shooting         bool
	cooldown         int
	initialHighScore int
}

// New creates a controller in the inactive state with a full fleet on screen.
func New(opts Options) *Controller {
	s := opts.Settings
	if s == nil {
		s = settings.Default()
	}
	c := &Controller{
		settings:         s,
		screen:           object.NewScreen(s.ScreenWidth, s.ScreenHeight),
		store:            opts.Store,
		sound:            opts.Sound,
		log:              opts.Logger,
		sleep:            opts.Sleep,
		running:          true,
		initialHighScore: opts.HighScore,
	}
	if c.sound == nil {
		c.sound = sound.Silent{}
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	if c.sleep == nil {
		c.sleep = time.Sleep
	}

	c.ship = object.NewShip(c.screen, s.ShipWidth, s.ShipHeight, s.ShipColor)
	c.aliens = c.createFleet()
	c.grid = physics.NewSpatialGrid(float64(s.ScreenWidth), float64(s.ScreenHeight), c.gridCellSize())
	c.stats = score.NewStats(s.ShipLimit, opts.HighScore)
	c.scoreboard = score.NewScoreboard(c.stats)
	c.button = NewButton(c.screen, "Play", s.ButtonColor, s.BackgroundColor)
	return c
}

// gridCellSize returns a cell size no smaller than any alien or bullet side.
func (c *Controller) gridCellSize() float64 {
	s := c.settings
	return float64(max(s.AlienWidth, s.AlienHeight, s.BulletWidth, s.BulletHeight))
}

// State returns the current game phase.
func (c *Controller) State() State {
	return c.state
}

// Running reports whether the game has not quit yet.
func (c *Controller) Running() bool {
	return c.running
}

// CursorVisible reports whether the frontend should show the mouse cursor.
func (c *Controller) CursorVisible() bool {
	return c.state == StateInactive
}

// Stats returns the live game statistics.
func (c *Controller) Stats() *score.Stats {
	return c.stats
}

// Scoreboard returns the HUD display cache.
func (c *Controller) Scoreboard() *score.Scoreboard {
	return c.scoreboard
}

// Ship returns the player's ship.
func (c *Controller) Ship() *object.Ship {
	return c.ship
}

// Bullets returns the live bullets.
func (c *Controller) Bullets() []*object.Bullet {
	return c.bullets
}

// Aliens returns the live fleet.
func (c *Controller) Aliens() []*object.Alien {
	return c.aliens
}

// Particles returns the live explosion particles.
func (c *Controller) Particles() []*object.Particle {
	return c.particles
}

// Button returns the play button.
func (c *Controller) Button() *Button {
	return c.button
}

// Cooldown returns the ticks left until the next shot is allowed.
func (c *Controller) Cooldown() int {
	return c.cooldown
}

// Screen returns the logical screen.
func (c *Controller) Screen() object.Screen {
	return c.screen
}

// HandleEvent applies a single input event.
// The only error comes from saving the high score on quit.
func (c *Controller) HandleEvent(e input.Event) error {
	switch e.Kind {
	case input.KeyDown:
		switch e.Action {
		case input.ActionLeft:
			c.ship.MovingLeft = true
		case input.ActionRight:
			c.ship.MovingRight = true
		case input.ActionFire:
			c.shooting = true
		case input.ActionStart:
			if c.state == StateInactive {
				c.startGame()
			}
		case input.ActionQuit:
			return c.Quit()
		}
	case input.KeyUp:
		switch e.Action {
		case input.ActionLeft:
			c.ship.MovingLeft = false
		case input.ActionRight:
			c.ship.MovingRight = false
		case input.ActionFire:
			c.shooting = false
		}
	case input.Click:
		if c.state == StateInactive && c.button.Contains(e.X, e.Y) {
			c.startGame()
		}
	case input.Close:
		return c.Quit()
	}
	return nil
}

// Tick advances the game by one step.
// Events are applied first; a quit among them stops the tick.
func (c *Controller) Tick(events []input.Event) error {
	if !c.running {
		return nil
	}
	for _, e := range events {
		if err := c.HandleEvent(e); err != nil {
			return err
		}
		if !c.running {
			return nil
		}
	}

	c.fireBullet()
	if c.cooldown > 0 {
		c.cooldown--
	}

	if c.state == StateActive {
		c.ship.Update(c.screen, c.settings.ShipSpeed)
		c.updateBullets()
		c.updateAliens()
	}
	c.updateParticles()
	return nil
}

// Quit stops the game. The high score is saved only if it was beaten and no game is
// in progress. Calling Quit again does nothing.
func (c *Controller) Quit() error {
	if !c.running {
		return nil
	}
	c.running = false

	if c.stats.HighScore <= c.initialHighScore || c.state == StateActive {
		c.log.Info("quit", "state", c.state, "high_score", c.stats.HighScore)
		return nil
	}
	if c.store == nil {
		return errors.New("no high score store")
	}
	if err := c.store.Save(c.stats.HighScore); err != nil {
		return errors.Wrap(err, "save high score")
	}
	c.log.Info("high score saved", "high_score", c.stats.HighScore, "previous", c.initialHighScore)
	return nil
}

// startGame resets settings, stats and the field and enters the active state.
func (c *Controller) startGame() {
	c.settings.InitializeDynamic()
	c.stats.Reset(c.settings.ShipLimit)
	c.scoreboard.PrepAll()
	c.state = StateActive
	c.resetField()
	c.log.Info("game started", "high_score", c.stats.HighScore)
}

// resetField removes bullets, aliens and particles, builds a new fleet and recenters
// the ship.
func (c *Controller) resetField() {
	c.bullets = c.bullets[:0]
	c.releaseParticles()
	c.aliens = c.createFleet()
	c.ship.CenterShip(c.screen)
}

func (c *Controller) createFleet() []*object.Alien {
	s := c.settings
	return object.CreateFleet(s.AlienWidth, s.AlienHeight, s.ScreenWidth, s.ScreenHeight, s.AlienColor)
}
