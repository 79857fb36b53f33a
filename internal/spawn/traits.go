package spawn

import "math"

// ObstacleScaleStep is the scale added per phase past the first, before the
// configured size multiplier is applied.
const ObstacleScaleStep = 0.1

// ItemTrait supplies the per-item metadata a scheduler attaches to every
// request it emits.
type ItemTrait interface {
	Family() Family
	Multiplier(phase int) float64
}

// ObstacleTrait scales obstacles up as phases advance.
type ObstacleTrait struct {
	SizeMultiplier float64
}

func (ObstacleTrait) Family() Family { return FamilyObstacle }

// Multiplier returns the uniform scale for an obstacle spawned in phase.
func (t ObstacleTrait) Multiplier(phase int) float64 {
	return 1 + float64(phase-1)*ObstacleScaleStep*t.SizeMultiplier
}

// CoinTrait raises coin value as phases advance.
type CoinTrait struct {
	BaseValue       int
	ValueMultiplier float64
}

func (CoinTrait) Family() Family { return FamilyCoin }

// Multiplier returns the coin value for phase, rounded to the nearest
// integer with ties to even.
func (t CoinTrait) Multiplier(phase int) float64 {
	return math.RoundToEven(float64(t.BaseValue) * (1 + float64(phase-1)*t.ValueMultiplier))
}
