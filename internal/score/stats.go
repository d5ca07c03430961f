// Package score tracks game statistics, formats them for display and persists the
// high score between sessions.
package score

// Stats holds the statistics of the current game and the all-time high score.
type Stats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int // Never reset during the process lifetime
}

// NewStats creates stats for a fresh game, keeping the given high score.
func NewStats(shipLimit, highScore int) *Stats {
	s := &Stats{HighScore: highScore}
	s.Reset(shipLimit)
	return s
}

// Reset starts a new game. The high score is kept.
func (s *Stats) Reset(shipLimit int) {
	s.ShipsLeft = shipLimit
	s.Score = 0
	s.Level = 1
}

// AddKills adds points for n destroyed aliens.
func (s *Stats) AddKills(points, n int) {
	if n <= 0 {
		return
	}
	s.Score += points * n
}

// CheckHighScore raises the high score to the current score if it was beaten.
// Returns true if the high score changed.
func (s *Stats) CheckHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}
