package settings

import (
	"math"
	"testing"
)

func TestInitializeDynamicResetsSpeeds(t *testing.T) {
	s := Default()
	s.IncreaseSpeed()
	s.IncreaseSpeed()
	s.ReverseFleet()

	s.InitializeDynamic()

	if s.ShipSpeed != BaseShipSpeed {
		t.Errorf("Expected ShipSpeed=%v, got %v", BaseShipSpeed, s.ShipSpeed)
	}
	if s.BulletSpeed != BaseBulletSpeed {
		t.Errorf("Expected BulletSpeed=%v, got %v", BaseBulletSpeed, s.BulletSpeed)
	}
	if s.AlienSpeed != BaseAlienSpeed {
		t.Errorf("Expected AlienSpeed=%v, got %v", BaseAlienSpeed, s.AlienSpeed)
	}
	if s.AlienPoints != BaseAlienPoints {
		t.Errorf("Expected AlienPoints=%d, got %d", BaseAlienPoints, s.AlienPoints)
	}
	if s.FleetDirection != 1 {
		t.Errorf("Expected FleetDirection=1, got %d", s.FleetDirection)
	}
}

func TestIncreaseSpeedScalesDynamicSettings(t *testing.T) {
	s := Default()
	s.IncreaseSpeed()

	if math.Abs(s.ShipSpeed-BaseShipSpeed*1.1) > 1e-9 {
		t.Errorf("Expected ShipSpeed=%v, got %v", BaseShipSpeed*1.1, s.ShipSpeed)
	}
	if math.Abs(s.AlienSpeed-BaseAlienSpeed*1.1) > 1e-9 {
		t.Errorf("Expected AlienSpeed=%v, got %v", BaseAlienSpeed*1.1, s.AlienSpeed)
	}
	if s.AlienPoints != 75 {
		t.Errorf("Expected AlienPoints=75, got %d", s.AlienPoints)
	}
	if s.BulletCooldownTicks != BulletCooldownTicks {
		t.Errorf("Expected cooldown untouched, got %d", s.BulletCooldownTicks)
	}
}

func TestIncreaseSpeedIsMonotonic(t *testing.T) {
	s := Default()
	prev := s.AlienSpeed
	prevPoints := s.AlienPoints
	for i := 0; i < 20; i++ {
		s.IncreaseSpeed()
		if s.AlienSpeed < prev {
			t.Fatalf("AlienSpeed decreased at step %d: %v < %v", i, s.AlienSpeed, prev)
		}
		if s.AlienPoints < prevPoints {
			t.Fatalf("AlienPoints decreased at step %d: %d < %d", i, s.AlienPoints, prevPoints)
		}
		prev = s.AlienSpeed
		prevPoints = s.AlienPoints
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero width", func(s *Settings) { s.ScreenWidth = 0 }, true},
		{"negative alien", func(s *Settings) { s.AlienHeight = -1 }, true},
		{"no bullets", func(s *Settings) { s.BulletsAllowed = 0 }, true},
		{"shrinking speedup", func(s *Settings) { s.SpeedupScale = 0.9 }, true},
		{"no ships", func(s *Settings) { s.ShipLimit = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
