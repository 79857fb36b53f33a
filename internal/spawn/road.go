// Package spawn implements the procedural lane-based spawn engine: it turns a
// rising difficulty signal into spawn cadence, lane choice and multi-item
// patterns, and projects lane offsets onto the road frame.
//
// The package is host-agnostic. Callers feed it agent snapshots and a clock
// once per tick and receive SpawnRequests to instantiate.
package spawn

import "github.com/vovakirdan/lane-runner/internal/core"

// DefaultRoadWidth is used when no road descriptor is available.
const DefaultRoadWidth = 9.0

// RoadDescriptor describes the road the lanes are laid on.
// Forward and Right are assumed perpendicular unit vectors.
type RoadDescriptor struct {
	Center  core.Vec3
	Forward core.Vec3
	Right   core.Vec3
	Width   float64
}

// AgentSnapshot is the read-only view of the controlled agent for one tick.
type AgentSnapshot struct {
	Position     core.Vec3
	Forward      core.Vec3
	Right        core.Vec3
	CurrentSpeed float64
	MaxSpeed     float64
}

// Frame is a resolved lane coordinate system.
type Frame struct {
	Center  core.Vec3
	Forward core.Vec3
	Right   core.Vec3
	Width   float64
}

// Resolve builds the lane frame from the road, falling back to the agent's own
// position and axes with defaultWidth when the road is absent.
func Resolve(road *RoadDescriptor, agent AgentSnapshot, defaultWidth float64) Frame {
	if road == nil {
		return Frame{
			Center:  agent.Position,
			Forward: agent.Forward,
			Right:   agent.Right,
			Width:   defaultWidth,
		}
	}
	width := road.Width
	if width <= 0 {
		width = defaultWidth
	}
	return Frame{
		Center:  road.Center,
		Forward: road.Forward,
		Right:   road.Right,
		Width:   width,
	}
}

// Project places point on the frame's forward axis and applies a lateral offset.
func (f Frame) Project(point core.Vec3, offset float64) core.Vec3 {
	return Project(f.Center, f.Forward, f.Right, point, offset)
}

// Local returns the lateral and along-road coordinates of a world point.
func (f Frame) Local(point core.Vec3) (lateral, along float64) {
	d := point.Sub(f.Center)
	return d.Dot(f.Right), d.Dot(f.Forward)
}
