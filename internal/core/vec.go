package core

import "math"

// Vec3 is a world-space vector. X is lateral, Y is up, Z is forward.
type Vec3 struct {
	X, Y, Z float64
}

// Common axes.
var (
	Vec3Zero    = Vec3{}
	Vec3Up      = Vec3{Y: 1}
	Vec3Right   = Vec3{X: 1}
	Vec3Forward = Vec3{Z: 1}
)

// V3 builds a vector.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector, or zero for a zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance returns the distance between two points.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// YawAxes returns the forward and right unit vectors for a heading rotated
// around the up axis. Zero degrees faces +Z with +X to the right.
func YawAxes(degrees float64) (forward, right Vec3) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	forward = Vec3{X: sin, Z: cos}
	right = Vec3{X: cos, Z: -sin}
	return forward, right
}
