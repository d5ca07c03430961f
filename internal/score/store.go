package score

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultHighScorePath is where the high score lives relative to the working directory.
const DefaultHighScorePath = "json_files/high_score.json"

// Store loads and saves the high score.
type Store interface {
	Load() (int, error)
	Save(highScore int) error
}

// FileStore keeps the high score as a single JSON integer in a file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store for the given path, or the default path if empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultHighScorePath
	}
	return &FileStore{Path: path}
}

// Load reads the high score. The file must exist and hold a non-negative integer.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, errors.Wrap(err, "read high score")
	}

	var highScore int
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&highScore); err != nil {
		return 0, errors.Wrapf(err, "parse high score in %s", s.Path)
	}
	if dec.More() {
		return 0, errors.Errorf("parse high score in %s: trailing data", s.Path)
	}
	if highScore < 0 {
		return 0, errors.Errorf("parse high score in %s: negative value %d", s.Path, highScore)
	}
	return highScore, nil
}

// Save overwrites the file with the JSON-encoded high score.
func (s *FileStore) Save(highScore int) error {
	data, err := json.Marshal(highScore)
	if err != nil {
		return errors.Wrap(err, "encode high score")
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create high score directory")
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return errors.Wrap(err, "write high score")
	}
	return nil
}
