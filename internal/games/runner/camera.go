package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

// Camera follows a target with a damped spring and can shake.
// The offset is expressed in the road frame: X right, Y up, Z forward.
type Camera struct {
	cfg      config.CameraConfig
	frame    spawn.Frame
	position core.Vec3
	velocity core.Vec3

	clock          float64
	shakeElapsed   float64
	shakeDuration  float64
	shakeMagnitude float64
	shake          core.Vec3
}

// NewCamera creates a camera already placed at its resting spot behind target.
func NewCamera(cfg config.CameraConfig, frame spawn.Frame, target core.Vec3) *Camera {
	c := &Camera{cfg: cfg, frame: frame}
	c.position = c.desired(target)
	return c
}

// Position returns the camera position without shake.
func (c *Camera) Position() core.Vec3 { return c.position }

// View returns the position used for rendering, including shake.
func (c *Camera) View() core.Vec3 { return c.position.Add(c.shake) }

// IsShaking reports whether a shake is in progress.
func (c *Camera) IsShaking() bool { return c.shakeDuration > 0 }

// Shake starts a shake that decays linearly over duration. A shake already in
// progress is not interrupted.
func (c *Camera) Shake(duration, magnitude float64) {
	if c.IsShaking() || duration <= 0 {
		return
	}
	c.shakeElapsed = 0
	c.shakeDuration = duration
	c.shakeMagnitude = magnitude
}

// Follow moves the camera towards target and advances any shake.
func (c *Camera) Follow(target core.Vec3, dt float64) {
	if dt <= 0 {
		return
	}
	c.clock += dt

	want := c.desired(target)
	c.position.X = core.SmoothDamp(c.position.X, want.X, &c.velocity.X, c.cfg.SmoothTime, 0, dt)
	c.position.Y = core.SmoothDamp(c.position.Y, want.Y, &c.velocity.Y, c.cfg.SmoothTime, 0, dt)
	c.position.Z = core.SmoothDamp(c.position.Z, want.Z, &c.velocity.Z, c.cfg.SmoothTime, 0, dt)

	c.updateShake(dt)
}

func (c *Camera) desired(target core.Vec3) core.Vec3 {
	off := c.frame.Right.Scale(c.cfg.Offset.X).
		Add(core.Vec3Up.Scale(c.cfg.Offset.Y)).
		Add(c.frame.Forward.Scale(c.cfg.Offset.Z))
	pos := target.Add(off)
	if c.cfg.UseBoundaries {
		pos.X = core.ClampF(pos.X, c.cfg.Min.X, c.cfg.Max.X)
		pos.Y = core.ClampF(pos.Y, c.cfg.Min.Y, c.cfg.Max.Y)
		pos.Z = core.ClampF(pos.Z, c.cfg.Min.Z, c.cfg.Max.Z)
	}
	return pos
}

func (c *Camera) updateShake(dt float64) {
	if !c.IsShaking() {
		c.shake = core.Vec3Zero
		return
	}
	if c.shakeElapsed >= c.shakeDuration {
		c.shakeDuration = 0
		c.shake = core.Vec3Zero
		return
	}

	decay := 1 - c.shakeElapsed/c.shakeDuration
	x := noise(c.clock*10, 0)*2 - 1
	y := noise(0, c.clock*10)*2 - 1
	c.shake = c.frame.Right.Scale(x).Add(core.Vec3Up.Scale(y)).Scale(c.shakeMagnitude * decay)
	c.shakeElapsed += dt
}

// noise is a smooth deterministic value in [0, 1].
func noise(x, y float64) float64 {
	v := math.Sin(x*1.7+y*3.1) + math.Sin(x*2.9-y*1.3+1.1)
	return (v + 2) / 4
}
