package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyManagerAdvancesPhases(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialPhase: 1, PhaseDuration: 60})

	var changes []int
	for i := 0; i < 1440; i++ { // 180 s at 8 Hz
		if phase, changed := d.Update(0.125); changed {
			changes = append(changes, phase)
		}
	}

	assert.Equal(t, []int{2, 3, 4}, changes)
	assert.Equal(t, 4, d.Phase())
	assert.InDelta(t, 180.0, d.Elapsed(), 1e-6)
}

func TestDifficultyManagerFixed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialPhase: 2, PhaseDuration: 60})

	_, changed := d.Update(600)
	assert.False(t, changed)
	assert.Equal(t, 2, d.Phase())
	assert.Equal(t, 0.0, d.PhaseProgress())
}

func TestDifficultyManagerMaxPhase(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialPhase: 1, PhaseDuration: 1, MaxPhase: 3})

	for i := 0; i < 10; i++ {
		d.Update(1)
	}
	assert.Equal(t, 3, d.Phase())
}

func TestDifficultyManagerOnePhasePerUpdate(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialPhase: 1, PhaseDuration: 10})

	phase, changed := d.Update(35)
	assert.True(t, changed)
	assert.Equal(t, 2, phase)
}

func TestDifficultyManagerProgressAndReset(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialPhase: 0, PhaseDuration: 60})
	assert.Equal(t, 1, d.Phase())

	d.Update(15)
	assert.InDelta(t, 0.25, d.PhaseProgress(), 1e-9)

	_, changed := d.Update(-1)
	assert.False(t, changed)

	d.Reset()
	assert.Equal(t, 0.0, d.Elapsed())
	assert.Equal(t, 0.0, d.PhaseProgress())
}
