package score

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scoreboard caches the formatted HUD strings for a Stats value.
// Each Prep method must be called after the matching stat changes.
type Scoreboard struct {
	stats   *Stats
	printer *message.Printer

	ScoreText     string
	HighScoreText string
	LevelText     string
	Ships         int // Number of ship icons to draw
}

// NewScoreboard creates a scoreboard with all displays prepared.
func NewScoreboard(stats *Stats) *Scoreboard {
	sb := &Scoreboard{
		stats:   stats,
		printer: message.NewPrinter(language.English),
	}
	sb.PrepAll()
	return sb
}

// PrepAll refreshes every display.
func (sb *Scoreboard) PrepAll() {
	sb.PrepScore()
	sb.PrepHighScore()
	sb.PrepLevel()
	sb.PrepShips()
}

// PrepScore refreshes the score display.
func (sb *Scoreboard) PrepScore() {
	sb.ScoreText = sb.printer.Sprintf("%d", RoundTens(sb.stats.Score))
}

// PrepHighScore refreshes the high score display.
func (sb *Scoreboard) PrepHighScore() {
	sb.HighScoreText = sb.printer.Sprintf("%d", RoundTens(sb.stats.HighScore))
}

// PrepLevel refreshes the level display.
func (sb *Scoreboard) PrepLevel() {
	sb.LevelText = sb.printer.Sprintf("L%d", sb.stats.Level)
}

// PrepShips refreshes the remaining ships display.
func (sb *Scoreboard) PrepShips() {
	sb.Ships = sb.stats.ShipsLeft
}

// CheckHighScore updates the high score and its display if the score beat it.
func (sb *Scoreboard) CheckHighScore() {
	if sb.stats.CheckHighScore() {
		sb.PrepHighScore()
	}
}

// RoundTens rounds n to the nearest multiple of ten, halves to even.
func RoundTens(n int) int {
	if n < 0 {
		return -RoundTens(-n)
	}
	q, r := n/10, n%10
	switch {
	case r > 5:
		q++
	case r == 5 && q%2 == 1:
		q++
	}
	return q * 10
}
