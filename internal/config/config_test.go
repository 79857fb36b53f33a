package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultRunnerConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultRunnerConfig().Validate())
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Road.Lanes = 0
	cfg.Obstacles.MaxSpawnRate = 0.1
	cfg.Coins.PatternChance = 2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "road.lanes")
	assert.Contains(t, err.Error(), "obstacles.max_spawn_rate")
	assert.Contains(t, err.Error(), "coins.pattern_chance")
}

func TestValidateSkipsDisabledSpawner(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Obstacles.Enabled = false
	cfg.Obstacles.MinSpawnRate = -1
	assert.NoError(t, cfg.Validate())
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("road:\n  lanes: 5\ncoins:\n  pattern_chance: 0.9\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadRunner(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Road.Lanes)
	assert.Equal(t, 0.9, cfg.Coins.PatternChance)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 3.0, cfg.Road.LaneWidth)
	assert.Equal(t, 60.0, cfg.Difficulty.PhaseDuration)
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("road: [unterminated"), 0o644))
	cfg, err := LoadRunner(bad)
	assert.ErrorContains(t, err, "failed to parse config")
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		phase   int
	}{
		{DifficultyEasy, true, 1},
		{DifficultyNormal, true, 2},
		{DifficultyHard, true, 3},
		{DifficultyFixed, false, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tt.preset)
			assert.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			assert.Equal(t, tt.phase, cfg.Difficulty.InitialPhase)
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, "")
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("brutal"))
	assert.True(t, IsFixedPreset(ParsePreset("fixed")))
}
