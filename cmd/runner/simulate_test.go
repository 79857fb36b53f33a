package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

func TestSimulateIsDeterministic(t *testing.T) {
	opts := SimulationOptions{Mode: runner.ModeClassic, Seconds: 30, TickRate: 30, Seed: 42}

	a, err := simulate(opts)
	require.NoError(t, err)
	b, err := simulate(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Positive(t, a.Ticks)
}

func TestSimulateZenRunsToTheLimit(t *testing.T) {
	res, err := simulate(SimulationOptions{Mode: runner.ModeZen, Seconds: 10, TickRate: 60, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "time", res.Ended)
	assert.Equal(t, 600, res.Ticks)
	assert.InDelta(t, 10.0, res.State.Elapsed, 1e-6)
	assert.Zero(t, res.Obstacles)
	assert.Positive(t, res.Coins)
	assert.False(t, res.State.GameOver)
}

func TestSimulateUnknownMode(t *testing.T) {
	_, err := simulate(SimulationOptions{Mode: "nope", Seconds: 1, TickRate: 60})
	assert.Error(t, err)
}

func TestPrintSimulation(t *testing.T) {
	res, err := simulate(SimulationOptions{Mode: runner.ModeZen, Seconds: 2, TickRate: 30, Seed: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	printSimulation(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "Mode:      runner_zen")
	assert.Contains(t, out, "Seed:      1")
	assert.Contains(t, out, "Ended:     time")
	assert.Contains(t, out, "0 obstacles")
}
