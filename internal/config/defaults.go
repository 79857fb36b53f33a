package config

import (
	_ "embed"

	"github.com/vovakirdan/lane-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default lane runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Road: RoadConfig{
			Lanes:     3,
			LaneWidth: 3,
			Width:     9,
			Heading:   0,
		},
		Player: PlayerConfig{
			InitialSpeed:          5,
			MaxSpeed:              20,
			SpeedIncreaseInterval: 30,
			SpeedIncreaseAmount:   1,
			SteerSmoothTime:       0.1,
			MaxLateralSpeed:       15,
			Width:                 1,
			Depth:                 1,
			StopSpeed:             0.5,
			StopTime:              0.5,
		},
		Camera: CameraConfig{
			Offset:         core.V3(0, 5, -10),
			SmoothTime:     0.3,
			ShakeDuration:  0.3,
			ShakeMagnitude: 0.5,
			UseBoundaries:  false,
			Min:            core.V3(-50, 0, -50),
			Max:            core.V3(50, 50, 50),
		},
		Obstacles: SpawnerConfig{
			Enabled:              true,
			MinSpawnRate:         0.3,
			MaxSpawnRate:         2,
			RateIncreasePerPhase: 0.2,
			MinSpawnDistance:     20,
			MaxSpawnDistance:     40,
			PatternChance:        0.3,
			MinPatternCount:      2,
			MaxPatternCount:      3,
			PatternSpacing:       2,
			SpawnHeight:          0,
			SizeMultiplier:       1,
			ItemWidth:            1.6,
			ItemDepth:            1,
		},
		Coins: SpawnerConfig{
			Enabled:              true,
			MinSpawnRate:         0.2,
			MaxSpawnRate:         1,
			RateIncreasePerPhase: 0.1,
			MinSpawnDistance:     20,
			MaxSpawnDistance:     40,
			PatternChance:        0.4,
			MinPatternCount:      3,
			MaxPatternCount:      6,
			PatternSpacing:       2,
			SpawnHeight:          1,
			BaseValue:            1,
			ValueMultiplier:      1,
			ItemWidth:            1,
			ItemDepth:            1,
		},
		World: WorldConfig{
			DespawnBehind: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			InitialPhase:  1,
			PhaseDuration: 60,
			MaxPhase:      0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
