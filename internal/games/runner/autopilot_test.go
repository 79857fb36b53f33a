package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

func TestAutopilotAvoidsObstacle(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime(1))

	ahead := g.Player().Position().Add(g.frame.Forward.Scale(5))
	g.World().Spawn(spawn.Request{Position: ahead, Lane: 1, Family: spawn.FamilyObstacle, Multiplier: 1})

	in := Autopilot(g)
	assert.True(t, in.Has(core.ActionLeft) || in.Has(core.ActionRight))
}

func TestAutopilotPrefersCoins(t *testing.T) {
	g := NewZen(registry.Options{})
	g.Reset(testRuntime(1))

	right := spawn.LaneOffset(2, 3, 3, 9)
	pos := g.Player().Position().Add(g.frame.Forward.Scale(6)).Add(g.frame.Right.Scale(right))
	g.World().Spawn(spawn.Request{Position: pos, Lane: 2, Family: spawn.FamilyCoin, Multiplier: 1})

	assert.True(t, Autopilot(g).Has(core.ActionRight))
}

func TestAutopilotIdleWhenClear(t *testing.T) {
	g := NewZen(registry.Options{})
	g.Reset(testRuntime(1))
	assert.Empty(t, Autopilot(g).Actions)
}
