// Package vmath holds the small amount of 2D float math the scene needs:
// vectors, interpolation and easing curves.
package vmath

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Scale returns a * k.
func (a Vec2) Scale(k float64) Vec2 { return Vec2{a.X * k, a.Y * k} }

// Len returns the Euclidean length.
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// IsZero reports whether both components are exactly zero.
func (a Vec2) IsZero() bool { return a.X == 0 && a.Y == 0 }

// Distance is the Euclidean distance between a and b. Never negative.
func Distance(a, b Vec2) float64 { return b.Sub(a).Len() }

// Lerp moves a toward b by factor t; t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// LerpVec is Lerp applied per axis.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// ClampMagnitude limits v to length max while preserving direction.
// Vectors already within max are returned unchanged.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
