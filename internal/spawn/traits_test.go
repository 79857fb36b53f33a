package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObstacleTraitMultiplier(t *testing.T) {
	tr := ObstacleTrait{SizeMultiplier: 1}
	assert.Equal(t, FamilyObstacle, tr.Family())
	assert.InDelta(t, 1.0, tr.Multiplier(1), 1e-9)
	assert.InDelta(t, 1.3, tr.Multiplier(4), 1e-9)

	half := ObstacleTrait{SizeMultiplier: 0.5}
	assert.InDelta(t, 1.15, half.Multiplier(4), 1e-9)
}

func TestCoinTraitMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		trait CoinTrait
		phase int
		want  float64
	}{
		{"phase one", CoinTrait{BaseValue: 1, ValueMultiplier: 1}, 1, 1},
		{"phase two", CoinTrait{BaseValue: 1, ValueMultiplier: 1}, 2, 2},
		{"rounds down", CoinTrait{BaseValue: 1, ValueMultiplier: 0.2}, 2, 1},
		{"half to even", CoinTrait{BaseValue: 1, ValueMultiplier: 0.5}, 4, 2},
		{"base five", CoinTrait{BaseValue: 5, ValueMultiplier: 0.5}, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, FamilyCoin, tt.trait.Family())
			assert.Equal(t, tt.want, tt.trait.Multiplier(tt.phase))
		})
	}
}
