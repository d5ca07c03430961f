// Package config reads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/tomz197/invasion/internal/score"
	"github.com/tomz197/invasion/internal/settings"
)

// Environment variables understood by the game.
const (
	EnvLogFile       = "INVASION_LOG_FILE"
	EnvLogLevel      = "INVASION_LOG_LEVEL"
	EnvHighScoreFile = "INVASION_HIGH_SCORE_FILE"
	EnvSound         = "INVASION_SOUND"
	EnvBgColor       = "INVASION_BG_COLOR"
	EnvScreenWidth   = "INVASION_SCREEN_WIDTH"
	EnvScreenHeight  = "INVASION_SCREEN_HEIGHT"
)

// Defaults for the variables above.
const (
	DefaultLogFile  = "invasion.log"
	DefaultLogLevel = "info"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the variable parsed as an integer, or fallback if it is not set.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback, errors.Wrapf(err, "%s", key)
	}
	return n, nil
}

// GetEnvBool returns the variable parsed as a boolean, or fallback if it is not set.
// Accepts the forms understood by strconv.ParseBool plus "on"/"off" and "yes"/"no".
func GetEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback, errors.Wrapf(err, "%s", key)
	}
	return b, nil
}

// HighScorePath returns where the high score file lives.
func HighScorePath() string {
	return GetEnv(EnvHighScoreFile, score.DefaultHighScorePath)
}

// SoundEnabled reports whether sound effects were switched on.
func SoundEnabled() (bool, error) {
	return GetEnvBool(EnvSound, false)
}

// ApplyEnv overrides settings from the environment and validates the result.
// Screen size overrides are only honored when allowResize is set, since the
// terminal frontend scales a fixed logical screen.
func ApplyEnv(s *settings.Settings, allowResize bool) error {
	if hex := GetEnv(EnvBgColor, ""); hex != "" {
		c, err := colorful.Hex(hex)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvBgColor)
		}
		s.BackgroundColor = c
	}

	if allowResize {
		w, err := GetEnvInt(EnvScreenWidth, s.ScreenWidth)
		if err != nil {
			return err
		}
		h, err := GetEnvInt(EnvScreenHeight, s.ScreenHeight)
		if err != nil {
			return err
		}
		s.ScreenWidth, s.ScreenHeight = w, h
	}

	return errors.Wrap(s.Validate(), "invalid settings")
}
