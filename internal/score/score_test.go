package score

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatsReset(t *testing.T) {
	s := NewStats(3, 500)
	s.ShipsLeft = 1
	s.Score = 120
	s.Level = 4

	s.Reset(3)

	if s.ShipsLeft != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("Expected ships=3 score=0 level=1, got ships=%d score=%d level=%d", s.ShipsLeft, s.Score, s.Level)
	}
	if s.HighScore != 500 {
		t.Errorf("Expected HighScore untouched at 500, got %d", s.HighScore)
	}
}

func TestStatsAddKillsAndHighScore(t *testing.T) {
	s := NewStats(3, 100)

	s.AddKills(50, 3)
	if s.Score != 150 {
		t.Fatalf("Expected Score=150, got %d", s.Score)
	}
	if !s.CheckHighScore() {
		t.Error("Expected high score to change")
	}
	if s.HighScore != 150 {
		t.Errorf("Expected HighScore=150, got %d", s.HighScore)
	}

	s.AddKills(50, 0)
	if s.CheckHighScore() {
		t.Error("Expected high score unchanged when score did not move")
	}
}

func TestRoundTens(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{4, 0},
		{6, 10},
		{15, 20},
		{25, 20},
		{1234, 1230},
		{1237, 1240},
	}
	for _, tt := range tests {
		if got := RoundTens(tt.in); got != tt.want {
			t.Errorf("RoundTens(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardFormatting(t *testing.T) {
	stats := NewStats(3, 98765)
	sb := NewScoreboard(stats)

	if sb.ScoreText != "0" {
		t.Errorf("Expected ScoreText=0, got %q", sb.ScoreText)
	}
	if sb.HighScoreText != "98,760" {
		t.Errorf("Expected HighScoreText=98,760, got %q", sb.HighScoreText)
	}
	if sb.LevelText != "L1" {
		t.Errorf("Expected LevelText=L1, got %q", sb.LevelText)
	}
	if sb.Ships != 3 {
		t.Errorf("Expected Ships=3, got %d", sb.Ships)
	}

	stats.Score = 123456
	sb.PrepScore()
	if sb.ScoreText != "123,460" {
		t.Errorf("Expected ScoreText=123,460, got %q", sb.ScoreText)
	}

	sb.CheckHighScore()
	if sb.HighScoreText != "123,460" {
		t.Errorf("Expected HighScoreText to follow the score, got %q", sb.HighScoreText)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "json_files", "high_score.json")
	store := NewFileStore(path)

	if err := store.Save(150); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "150" {
		t.Errorf("Expected raw JSON integer 150, got %q", data)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 150 {
		t.Errorf("Expected 150, got %d", got)
	}
}

func TestFileStoreLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		create  bool
	}{
		{"missing", "", false},
		{"not a number", `"abc"`, true},
		{"negative", "-5", true},
		{"trailing data", "5 6", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if tt.create {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			if _, err := NewFileStore(path).Load(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestNewFileStoreDefaultPath(t *testing.T) {
	if got := NewFileStore("").Path; got != DefaultHighScorePath {
		t.Errorf("Expected default path %q, got %q", DefaultHighScorePath, got)
	}
}
