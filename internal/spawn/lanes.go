package spawn

import "github.com/vovakirdan/lane-runner/internal/core"

// LaneOffset returns the lateral offset of a lane's center, with lanes laid
// out symmetrically around zero. The result never leaves the road: it is
// clamped to half the road width whatever the lane count or width.
func LaneOffset(lane, lanes int, laneWidth, roadWidth float64) float64 {
	half := roadWidth / 2
	pos := float64(lane) - float64(lanes-1)/2
	return core.ClampF(pos*laneWidth, -half, half)
}

// Project drops point onto the line through center along forward, then moves
// it offset units along right. Keeps spawn points on a road that is not
// aligned with the world axes.
func Project(center, forward, right, point core.Vec3, offset float64) core.Vec3 {
	along := point.Sub(center).Dot(forward)
	return center.Add(forward.Scale(along)).Add(right.Scale(offset))
}
