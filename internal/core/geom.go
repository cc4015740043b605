// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Vec3 is a point in world space. X runs across the lanes, Y is height
// above the ground, Z is the longitudinal running direction.
type Vec3 struct {
	X, Y, Z float64
}

// Box3 is an axis-aligned bounding box used for collision detection.
type Box3 struct {
	Min, Max Vec3
}

// BoxAt builds a box of the given dimensions centered on c.
func BoxAt(c Vec3, w, h, d float64) Box3 {
	return Box3{
		Min: Vec3{X: c.X - w/2, Y: c.Y - h/2, Z: c.Z - d/2},
		Max: Vec3{X: c.X + w/2, Y: c.Y + h/2, Z: c.Z + d/2},
	}
}

// Intersects returns true if the two boxes overlap on all three axes.
// Touching faces do not count as an overlap.
func (b Box3) Intersects(o Box3) bool {
	if b.Max.X <= o.Min.X || o.Max.X <= b.Min.X {
		return false
	}
	if b.Max.Y <= o.Min.Y || o.Max.Y <= b.Min.Y {
		return false
	}
	if b.Max.Z <= o.Min.Z || o.Max.Z <= b.Min.Z {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Damp exponentially eases current toward target. rate controls how fast
// the gap closes (higher is snappier) and dt is the frame delta in
// seconds. The result is framerate independent for a fixed rate.
func Damp(current, target, rate, dt float64) float64 {
	return current + (target-current)*(1-math.Exp(-rate*dt))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
