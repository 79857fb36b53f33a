package spawn

import "github.com/vovakirdan/lane-runner/internal/core"

// DifficultyState is the per-tick difficulty signal seen by a scheduler.
type DifficultyState struct {
	Phase      int     // Pushed by the phase controller, starts at 1
	Elapsed    float64 // Clock value of the last update
	SpeedRatio float64 // current/max agent speed in [0, 1]
}

// Curve tracks difficulty for one scheduler. It never advances its own
// phase; it adopts whatever the controller last announced.
type Curve struct {
	state DifficultyState
}

// NewCurve returns a curve in phase 1.
func NewCurve() *Curve {
	return &Curve{state: DifficultyState{Phase: 1}}
}

// OnPhaseChange adopts the latest phase. Repeated and out-of-order values are
// accepted as-is.
func (c *Curve) OnPhaseChange(phase int) {
	c.state.Phase = phase
}

// Phase returns the current phase.
func (c *Curve) Phase() int {
	return c.state.Phase
}

// State returns a copy of the difficulty state.
func (c *Curve) State() DifficultyState {
	return c.state
}

// Update refreshes elapsed time and the speed ratio from the agent.
func (c *Curve) Update(now float64, agent AgentSnapshot) {
	if now > c.state.Elapsed {
		c.state.Elapsed = now
	}
	c.state.SpeedRatio = SpeedRatio(agent.CurrentSpeed, agent.MaxSpeed)
}

// SpawnRateBounds returns the spawn interval bounds for the current state.
func (c *Curve) SpawnRateBounds(minBase, maxBase, increasePerPhase float64) (minRate, maxRate float64) {
	return SpawnRateBounds(c.state.Phase, c.state.SpeedRatio, minBase, maxBase, increasePerPhase)
}

// SpeedRatio returns current/max clamped to [0, 1]. A non-positive max yields 0.
func SpeedRatio(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return core.ClampF(current/max, 0, 1)
}

// SpawnRateBounds interpolates the interval ceiling by speed and grows it by
// increasePerPhase for every phase past the first. The floor stays at minBase.
// For a fixed speed ratio the ceiling never decreases as phase increases.
func SpawnRateBounds(phase int, speedRatio, minBase, maxBase, increasePerPhase float64) (minRate, maxRate float64) {
	maxRate = core.Lerp(minBase, maxBase, speedRatio)
	maxRate *= 1 + float64(phase-1)*increasePerPhase
	return minBase, maxRate
}
