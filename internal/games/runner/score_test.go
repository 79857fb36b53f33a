package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/lane-runner/internal/spawn"
)

var _ spawn.EventSink = (*Scoreboard)(nil)

func TestScoreboardTotals(t *testing.T) {
	s := NewScoreboard(0)

	s.AddDistance(10.4)
	assert.Equal(t, 10, s.Score())

	s.ValueCollected(2)
	assert.Equal(t, 12, s.Score())
	assert.Equal(t, 1, s.Coins())
	assert.Equal(t, 2.0, s.CoinScore())

	s.AddDistance(0.2)
	assert.Equal(t, 13, s.Score())
}

func TestScoreboardHighScore(t *testing.T) {
	s := NewScoreboard(50)
	s.AddDistance(30)
	assert.Equal(t, 50, s.HighScore())

	s.AddDistance(30)
	assert.Equal(t, 60, s.HighScore())

	s.Reset()
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 60, s.HighScore())
	assert.Equal(t, 1, s.Phase())
}

func TestScoreboardPhase(t *testing.T) {
	s := NewScoreboard(0)
	s.PhaseChanged(4)
	assert.Equal(t, 4, s.Phase())
}
