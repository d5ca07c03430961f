package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/tomz197/invasion/internal/config"
	"github.com/tomz197/invasion/internal/game"
	"github.com/tomz197/invasion/internal/loop"
	"github.com/tomz197/invasion/internal/score"
	"github.com/tomz197/invasion/internal/settings"
	"github.com/tomz197/invasion/internal/sound"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("stdin is not a terminal")
	}

	logger, closer, err := config.NewLogger("invasion")
	if err != nil {
		return err
	}
	defer closer.Close()

	s := settings.Default()
	if err := config.ApplyEnv(s, false); err != nil {
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

	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "failed to enable raw mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx, loop.Options{
		Controller: c,
		Input:      os.Stdin,
		Output:     os.Stdout,
		Profile:    profile,
		Logger:     logger,
	})
}
