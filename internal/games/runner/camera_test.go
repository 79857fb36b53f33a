package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestCameraStartsBehindTarget(t *testing.T) {
	c := NewCamera(config.DefaultRunnerConfig().Camera, straightFrame(), core.V3(1, 0, 10))
	assert.Equal(t, core.V3(1, 5, 0), c.Position())
	assert.Equal(t, c.Position(), c.View())
}

func TestCameraFollowConverges(t *testing.T) {
	c := NewCamera(config.DefaultRunnerConfig().Camera, straightFrame(), core.Vec3Zero)

	target := core.V3(3, 0, 20)
	for i := 0; i < 300; i++ {
		c.Follow(target, 1.0/60)
	}
	assert.InDelta(t, 3.0, c.Position().X, 0.01)
	assert.InDelta(t, 5.0, c.Position().Y, 0.01)
	assert.InDelta(t, 10.0, c.Position().Z, 0.01)
}

func TestCameraBoundaries(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Camera
	cfg.UseBoundaries = true
	cfg.Max = core.V3(50, 50, 30)

	c := NewCamera(cfg, straightFrame(), core.V3(0, 0, 100))
	assert.Equal(t, 30.0, c.Position().Z)
}

func TestCameraShake(t *testing.T) {
	c := NewCamera(config.DefaultRunnerConfig().Camera, straightFrame(), core.Vec3Zero)

	c.Shake(0.3, 1)
	assert.True(t, c.IsShaking())

	// A second shake does not extend the first
	c.Shake(10, 1)

	shook := false
	for i := 0; i < 10; i++ {
		c.Follow(core.Vec3Zero, 0.1)
		if c.View() != c.Position() {
			shook = true
		}
	}
	assert.True(t, shook)
	assert.False(t, c.IsShaking())
	assert.Equal(t, c.Position(), c.View())
}
