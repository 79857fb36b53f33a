// Package config provides YAML-based game configuration loading and
// difficulty phase management for the lane runner.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// RunnerConfig contains all configuration for the lane runner.
type RunnerConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Obstacles  SpawnerConfig    `yaml:"obstacles"`
	Coins      SpawnerConfig    `yaml:"coins"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoadConfig defines the road the lanes are laid on.
type RoadConfig struct {
	Lanes     int     `yaml:"lanes"`
	LaneWidth float64 `yaml:"lane_width"`
	Width     float64 `yaml:"width"`
	Heading   float64 `yaml:"heading"` // Degrees around the up axis, 0 = +Z
}

// PlayerConfig defines forward speed progression and lane steering.
type PlayerConfig struct {
	InitialSpeed          float64 `yaml:"initial_speed"`
	MaxSpeed              float64 `yaml:"max_speed"`
	SpeedIncreaseInterval float64 `yaml:"speed_increase_interval"` // Seconds between speed steps
	SpeedIncreaseAmount   float64 `yaml:"speed_increase_amount"`
	SteerSmoothTime       float64 `yaml:"steer_smooth_time"`
	MaxLateralSpeed       float64 `yaml:"max_lateral_speed"`
	Width                 float64 `yaml:"width"`
	Depth                 float64 `yaml:"depth"`
	StopSpeed             float64 `yaml:"stop_speed"` // Units per second below which the player counts as stopped
	StopTime              float64 `yaml:"stop_time"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Offset         core.Vec3 `yaml:"offset"`
	SmoothTime     float64   `yaml:"smooth_time"`
	ShakeDuration  float64   `yaml:"shake_duration"`
	ShakeMagnitude float64   `yaml:"shake_magnitude"`
	UseBoundaries  bool      `yaml:"use_boundaries"`
	Min            core.Vec3 `yaml:"min"`
	Max            core.Vec3 `yaml:"max"`
}

// SpawnerConfig tunes one spawn scheduler. Rates are intervals in seconds.
type SpawnerConfig struct {
	Enabled              bool    `yaml:"enabled"`
	MinSpawnRate         float64 `yaml:"min_spawn_rate"`
	MaxSpawnRate         float64 `yaml:"max_spawn_rate"`
	RateIncreasePerPhase float64 `yaml:"rate_increase_per_phase"`
	MinSpawnDistance     float64 `yaml:"min_spawn_distance"`
	MaxSpawnDistance     float64 `yaml:"max_spawn_distance"`
	PatternChance        float64 `yaml:"pattern_chance"`
	MinPatternCount      int     `yaml:"min_pattern_count"`
	MaxPatternCount      int     `yaml:"max_pattern_count"`
	PatternSpacing       float64 `yaml:"pattern_spacing"`
	SpawnHeight          float64 `yaml:"spawn_height"`
	SizeMultiplier       float64 `yaml:"size_multiplier"`  // Obstacles only
	BaseValue            int     `yaml:"base_value"`       // Coins only
	ValueMultiplier      float64 `yaml:"value_multiplier"` // Coins only
	ItemWidth            float64 `yaml:"item_width"`
	ItemDepth            float64 `yaml:"item_depth"`
}

// WorldConfig defines entity lifetime.
type WorldConfig struct {
	DespawnBehind float64 `yaml:"despawn_behind"`
}

// DifficultyConfig defines the phase progression.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	InitialPhase  int     `yaml:"initial_phase"`
	PhaseDuration float64 `yaml:"phase_duration"` // Seconds per phase
	MaxPhase      int     `yaml:"max_phase"`      // 0 = unbounded
}

// Validate reports every problem in the config at once.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Road.Lanes < 1 {
		errs = append(errs, fmt.Errorf("road.lanes must be at least 1, got %d", c.Road.Lanes))
	}
	if c.Road.LaneWidth <= 0 {
		errs = append(errs, fmt.Errorf("road.lane_width must be positive, got %v", c.Road.LaneWidth))
	}
	if c.Road.Width <= 0 {
		errs = append(errs, fmt.Errorf("road.width must be positive, got %v", c.Road.Width))
	}
	if c.Player.MaxSpeed < c.Player.InitialSpeed {
		errs = append(errs, fmt.Errorf("player.max_speed %v is below initial_speed %v", c.Player.MaxSpeed, c.Player.InitialSpeed))
	}
	if c.Difficulty.Enabled && c.Difficulty.PhaseDuration <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.phase_duration must be positive, got %v", c.Difficulty.PhaseDuration))
	}
	errs = append(errs, c.Obstacles.validate("obstacles"), c.Coins.validate("coins"))
	return errors.Join(errs...)
}

func (s SpawnerConfig) validate(name string) error {
	if !s.Enabled {
		return nil
	}
	var errs []error
	if s.MinSpawnRate <= 0 {
		errs = append(errs, fmt.Errorf("%s.min_spawn_rate must be positive, got %v", name, s.MinSpawnRate))
	}
	if s.MaxSpawnRate < s.MinSpawnRate {
		errs = append(errs, fmt.Errorf("%s.max_spawn_rate %v is below min_spawn_rate %v", name, s.MaxSpawnRate, s.MinSpawnRate))
	}
	if s.MaxSpawnDistance < s.MinSpawnDistance {
		errs = append(errs, fmt.Errorf("%s.max_spawn_distance %v is below min_spawn_distance %v", name, s.MaxSpawnDistance, s.MinSpawnDistance))
	}
	if s.PatternChance < 0 || s.PatternChance > 1 {
		errs = append(errs, fmt.Errorf("%s.pattern_chance must be within [0, 1], got %v", name, s.PatternChance))
	}
	if s.MaxPatternCount < s.MinPatternCount {
		errs = append(errs, fmt.Errorf("%s.max_pattern_count %d is below min_pattern_count %d", name, s.MaxPatternCount, s.MinPatternCount))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" (use config default).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialPhaseForPreset returns the starting phase for a difficulty preset.
func InitialPhaseForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
