package vmath

import "math"

// Ease maps normalized progress in [0,1] to eased progress in [0,1].
type Ease func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// SineInOut accelerates from rest and decelerates to rest.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseByName resolves a curve name as used in tuning files.
// Unknown names fall back to SineInOut.
func EaseByName(name string) Ease {
	switch name {
	case "linear", "Linear":
		return Linear
	default:
		return SineInOut
	}
}
