package game

import "math"

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// PolarAngle is a position on the lake border expressed only as an angle.
// Theta is always kept in [0, 2π).
type PolarAngle struct {
	Theta float64
}

// NewPolarAngle creates a PolarAngle, wrapping theta into [0, 2π)
func NewPolarAngle(theta float64) PolarAngle {
	return PolarAngle{Theta: NormalizeAngle(theta)}
}

// NormalizeAngle wraps any finite angle into [0, 2π)
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	// math.Mod of a tiny negative value can round back up to exactly 2π
	if theta >= TwoPi {
		theta = 0
	}
	return theta
}

// ArcCCW returns the counter-clockwise (increasing theta) distance from -> to, in [0, 2π)
func ArcCCW(from, to PolarAngle) float64 {
	return NormalizeAngle(to.Theta - from.Theta)
}

// ArcCW returns the clockwise (decreasing theta) distance from -> to, in [0, 2π)
func ArcCW(from, to PolarAngle) float64 {
	return NormalizeAngle(from.Theta - to.Theta)
}

// AngularDistance returns the shorter arc between a and b, in [0, π]
func AngularDistance(a, b PolarAngle) float64 {
	return math.Min(ArcCCW(a, b), ArcCW(a, b))
}
