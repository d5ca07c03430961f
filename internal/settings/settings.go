// Package settings holds the tunable game parameters.
//
// Static fields are fixed for the whole session. Dynamic fields (speeds, points and the
// fleet direction) are reset by InitializeDynamic at the start of every game and scaled by
// IncreaseSpeed each time a fleet is cleared.
package settings

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Base values for the dynamic settings.
const (
	BaseShipSpeed   = 1.5
	BaseBulletSpeed = 2.5
	BaseAlienSpeed  = 1.0
	BaseAlienPoints = 50
)

// BulletCooldownTicks is the number of ticks between two shots.
const BulletCooldownTicks = 15

// Settings is the full configuration of a game session.
type Settings struct {
	// Screen
	ScreenWidth     int
	ScreenHeight    int
	BackgroundColor colorful.Color

	// Ship
	ShipSpeed  float64
	ShipLimit  int
	ShipWidth  int
	ShipHeight int
	ShipColor  colorful.Color

	// Bullets
	BulletSpeed         float64
	BulletWidth         int
	BulletHeight        int
	BulletColor         colorful.Color
	BulletsAllowed      int
	BulletCooldownTicks int
	BulletPiercing      bool // Bullets keep flying after a hit

	// Aliens
	AlienSpeed     float64
	AlienWidth     int
	AlienHeight    int
	AlienColor     colorful.Color
	AlienPoints    int
	FleetDropSpeed int
	FleetDirection int // +1 right, -1 left

	// Level scaling
	SpeedupScale float64
	ScoreScale   float64

	// HUD
	TextColor   colorful.Color
	ButtonColor colorful.Color
}

// Default returns the reference configuration with dynamic settings initialized.
func Default() *Settings {
	s := &Settings{
		ScreenWidth:     1200,
		ScreenHeight:    800,
		BackgroundColor: colorful.Color{R: 230.0 / 255, G: 230.0 / 255, B: 230.0 / 255},

		ShipLimit:  3,
		ShipWidth:  60,
		ShipHeight: 48,
		ShipColor:  colorful.Color{R: 0.25, G: 0.35, B: 0.8},

		BulletWidth:         3,
		BulletHeight:        15,
		BulletColor:         colorful.Color{R: 60.0 / 255, G: 60.0 / 255, B: 60.0 / 255},
		BulletsAllowed:      3,
		BulletCooldownTicks: BulletCooldownTicks,

		AlienWidth:     60,
		AlienHeight:    44,
		AlienColor:     colorful.Color{R: 0.2, G: 0.6, B: 0.2},
		FleetDropSpeed: 10,

		SpeedupScale: 1.1,
		ScoreScale:   1.5,

		TextColor:   colorful.Color{R: 30.0 / 255, G: 30.0 / 255, B: 30.0 / 255},
		ButtonColor: colorful.Color{G: 135.0 / 255},
	}
	s.InitializeDynamic()
	return s
}

// InitializeDynamic resets the settings that change throughout the game.
func (s *Settings) InitializeDynamic() {
	s.ShipSpeed = BaseShipSpeed
	s.BulletSpeed = BaseBulletSpeed
	s.AlienSpeed = BaseAlienSpeed
	s.AlienPoints = BaseAlienPoints
	s.FleetDirection = 1
}

// IncreaseSpeed scales speeds and the alien point value for the next level.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// ReverseFleet flips the horizontal direction of the fleet.
func (s *Settings) ReverseFleet() {
	s.FleetDirection *= -1
}

// Validate reports settings the game cannot run with.
func (s *Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return errors.Errorf("invalid screen size %dx%d", s.ScreenWidth, s.ScreenHeight)
	case s.ShipWidth <= 0 || s.ShipHeight <= 0:
		return errors.Errorf("invalid ship size %dx%d", s.ShipWidth, s.ShipHeight)
	case s.AlienWidth <= 0 || s.AlienHeight <= 0:
		return errors.Errorf("invalid alien size %dx%d", s.AlienWidth, s.AlienHeight)
	case s.BulletWidth <= 0 || s.BulletHeight <= 0:
		return errors.Errorf("invalid bullet size %dx%d", s.BulletWidth, s.BulletHeight)
	case s.BulletsAllowed <= 0:
		return errors.Errorf("bullets allowed must be positive, got %d", s.BulletsAllowed)
	case s.BulletCooldownTicks < 0:
		return errors.Errorf("bullet cooldown must not be negative, got %d", s.BulletCooldownTicks)
	case s.ShipLimit <= 0:
		return errors.Errorf("ship limit must be positive, got %d", s.ShipLimit)
	case s.SpeedupScale < 1 || s.ScoreScale < 1:
		return errors.Errorf("scales must be >= 1 (speedup %.2f, score %.2f)", s.SpeedupScale, s.ScoreScale)
	}
	return nil
}
