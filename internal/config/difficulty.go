package config

// DifficultyManager advances the difficulty phase over elapsed game time.
// It owns the phase timer; listeners are told about every change.
type DifficultyManager struct {
	cfg        DifficultyConfig
	phase      int
	phaseTimer float64
	elapsed    float64
}

// NewDifficultyManager creates a new difficulty manager at the configured
// initial phase.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns to the initial phase with a cleared timer.
func (d *DifficultyManager) Reset() {
	d.phase = max(1, d.cfg.InitialPhase)
	d.phaseTimer = 0
	d.elapsed = 0
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.PhaseDuration > 0
}

// Phase returns the current phase (1-based).
func (d *DifficultyManager) Phase() int {
	return d.phase
}

// Elapsed returns the game time seen so far.
func (d *DifficultyManager) Elapsed() float64 {
	return d.elapsed
}

// PhaseProgress returns how far the current phase has run, in [0, 1].
func (d *DifficultyManager) PhaseProgress() float64 {
	if !d.IsEnabled() || d.atCap() {
		return 0
	}
	return clampF(d.phaseTimer/d.cfg.PhaseDuration, 0, 1)
}

// Update advances the timer by dt and returns the new phase and true when
// the phase changed. At most one phase is crossed per call.
func (d *DifficultyManager) Update(dt float64) (int, bool) {
	if dt <= 0 {
		return d.phase, false
	}
	d.elapsed += dt
	if !d.IsEnabled() || d.atCap() {
		return d.phase, false
	}

	d.phaseTimer += dt
	if d.phaseTimer < d.cfg.PhaseDuration {
		return d.phase, false
	}
	d.phaseTimer = 0
	d.phase++
	return d.phase, true
}

func (d *DifficultyManager) atCap() bool {
	return d.cfg.MaxPhase > 0 && d.phase >= d.cfg.MaxPhase
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
