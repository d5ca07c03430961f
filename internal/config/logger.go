package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// NewLogger opens the log file named by INVASION_LOG_FILE and returns a logger writing
// to it. The terminal belongs to the game, so logs never go to stdout or stderr.
// An empty file name disables logging. The returned closer must be called on exit.
func NewLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, DefaultLogLevel))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s", EnvLogLevel)
	}

	path := GetEnv(EnvLogFile, DefaultLogFile)
	if path == "" {
		return newLogger(io.Discard, prefix, level), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, errors.Wrap(err, "create log directory")
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return newLogger(f, prefix, level), f, nil
}

func newLogger(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
