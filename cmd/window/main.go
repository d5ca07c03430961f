package main

import (
	"fmt"
	"os"

	"github.com/tomz197/invasion/internal/config"
	"github.com/tomz197/invasion/internal/game"
	"github.com/tomz197/invasion/internal/score"
	"github.com/tomz197/invasion/internal/settings"
	"github.com/tomz197/invasion/internal/sound"
	"github.com/tomz197/invasion/internal/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closer, err := config.NewLogger("invasion-window")
	if err != nil {
		return err
	}
	defer closer.Close()

	s := settings.Default()
	if err := config.ApplyEnv(s, true); err != nil {
		return err
	}

	store := score.NewFileStore(config.HighScorePath())
	highScore, err := store.Load()
	if err != nil {
		return err
	}

	soundOn, err := config.SoundEnabled()
	if err != nil {
		return err
	}
	player, err := sound.New(soundOn, 0)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}

	c := game.New(game.Options{
		Settings:  s,
		Store:     store,
		HighScore: highScore,
		Sound:     player,
		Logger:    logger,
	})
	return window.Run(c, "Alien Invasion", logger)
}
