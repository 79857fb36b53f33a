package core

import (
	"math"
	"testing"
)

func TestFootprintOverlaps(t *testing.T) {
	player := Footprint{Lateral: 0, Along: 0, Width: 1, Depth: 1}

	tests := []struct {
		name     string
		other    Footprint
		expected bool
	}{
		{"same spot", Footprint{Lateral: 0, Along: 0, Width: 1, Depth: 1}, true},
		{"partial overlap", Footprint{Lateral: 0.5, Along: 0.5, Width: 1, Depth: 1}, true},
		{"adjacent lane", Footprint{Lateral: 3, Along: 0, Width: 1, Depth: 1}, false},
		{"touching edges", Footprint{Lateral: 1, Along: 0, Width: 1, Depth: 1}, false},
		{"far ahead", Footprint{Lateral: 0, Along: 5, Width: 1, Depth: 1}, false},
		{"wide obstacle", Footprint{Lateral: 1.2, Along: 0, Width: 2, Depth: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Overlaps(tc.other); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Overlaps(player); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if !r.Contains(5, 10) || r.Contains(25, 25) {
		t.Error("Contains() should be inclusive of top-left and exclusive of bottom-right")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0.3, 2, 0, 0.3},
		{0.3, 2, 1, 2},
		{0, 10, 0.25, 2.5},
		{0, 10, 2, 10},   // clamped
		{0, 10, -1, 0},   // clamped
		{2, 0.3, 1, 0.3}, // descending range
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}

func TestSmoothDampConverges(t *testing.T) {
	var vel float64
	x := 0.0
	for i := 0; i < 600; i++ {
		x = SmoothDamp(x, 3, &vel, 0.1, 15, 1.0/60.0)
		if x > 3+1e-9 {
			t.Fatalf("SmoothDamp overshot target: %v at step %d", x, i)
		}
	}
	if math.Abs(x-3) > 1e-3 {
		t.Errorf("SmoothDamp should converge to 3, got %v", x)
	}
}

func TestSmoothDampRespectsMaxSpeed(t *testing.T) {
	var vel float64
	dt := 1.0 / 60.0
	x := SmoothDamp(0, 100, &vel, 0.1, 15, dt)
	if x/dt > 15*1.01 {
		t.Errorf("first step moved %v units/s, expected at most 15", x/dt)
	}
}

func TestSmoothDampZeroDelta(t *testing.T) {
	var vel float64
	if got := SmoothDamp(1, 5, &vel, 0.1, 0, 0); got != 1 {
		t.Errorf("SmoothDamp with dt=0 should not move, got %v", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned an unexpected value")
	}
}
