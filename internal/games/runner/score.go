package runner

import "math"

// Scoreboard accumulates the run's score. It receives coin and phase events
// from the spawn director.
type Scoreboard struct {
	coinScore     float64
	distanceScore float64
	score         int
	highScore     int
	coins         int
	phase         int
}

// NewScoreboard creates a scoreboard seeded with a stored high score.
func NewScoreboard(highScore int) *Scoreboard {
	return &Scoreboard{highScore: highScore, phase: 1}
}

// ValueCollected adds a collected coin value.
func (s *Scoreboard) ValueCollected(value int) {
	s.coinScore += float64(value)
	s.coins++
	s.update()
}

// PhaseChanged records the phase reached.
func (s *Scoreboard) PhaseChanged(phase int) {
	s.phase = phase
}

// AddDistance adds distance score.
func (s *Scoreboard) AddDistance(v float64) {
	s.distanceScore += v
	s.update()
}

func (s *Scoreboard) update() {
	s.score = int(math.RoundToEven(s.coinScore + s.distanceScore))
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// Score returns the rounded total score.
func (s *Scoreboard) Score() int { return s.score }

// HighScore returns the best score seen, including this run.
func (s *Scoreboard) HighScore() int { return s.highScore }

// CoinScore returns the summed coin values.
func (s *Scoreboard) CoinScore() float64 { return s.coinScore }

// DistanceScore returns the accumulated distance score.
func (s *Scoreboard) DistanceScore() float64 { return s.distanceScore }

// Coins returns how many coins were picked up.
func (s *Scoreboard) Coins() int { return s.coins }

// Phase returns the last phase reported.
func (s *Scoreboard) Phase() int { return s.phase }

// Reset clears the run but keeps the high score.
func (s *Scoreboard) Reset() {
	*s = Scoreboard{highScore: s.highScore, phase: 1}
}
