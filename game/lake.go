package game

import (
	"fmt"
	"math"
)

// Lake is the circular playing field. The player swims inside it and the
// goblin runs along its border.
type Lake struct {
	Center Point2D
	Radius float64
}

// NewLake creates a lake. A non-positive radius is a programming error.
func NewLake(center Point2D, radius float64) Lake {
	if !(radius > 0) {
		panic(fmt.Sprintf("game: lake radius must be positive, got %v", radius))
	}
	return Lake{Center: center, Radius: radius}
}

// Contains reports whether pt lies strictly inside the lake.
// Points exactly on the border are outside.
func (l Lake) Contains(pt Point2D) bool {
	return Distance(l.Center, pt) < l.Radius
}

// DistanceToBorder is positive inside the lake, zero on the border and
// negative outside.
func (l Lake) DistanceToBorder(pt Point2D) float64 {
	return l.Radius - Distance(l.Center, pt)
}

// BorderProjection maps pt onto the border along the ray from the center.
// The center itself has no direction and maps to angle 0.
func (l Lake) BorderProjection(pt Point2D) Point2D {
	if pt == l.Center {
		return l.FromPolar(PolarAngle{})
	}
	return ProjectToward(l.Center, pt, l.Radius)
}

// Clamp returns pt when it is inside the lake, otherwise its border projection
func (l Lake) Clamp(pt Point2D) Point2D {
	if l.Contains(pt) {
		return pt
	}
	return l.BorderProjection(pt)
}

// ToPolar returns the direction of pt as seen from the center. Radial
// distance is discarded. The axis-aligned directions are resolved exactly
// because the arctangent of dy/dx is undefined at dx == 0.
func (l Lake) ToPolar(pt Point2D) PolarAngle {
	dx := pt.X - l.Center.X
	dy := pt.Y - l.Center.Y

	switch {
	case dx == 0 && dy == 0:
		return PolarAngle{}
	case dy == 0 && dx > 0:
		return PolarAngle{Theta: 0}
	case dy == 0 && dx < 0:
		return PolarAngle{Theta: math.Pi}
	case dx == 0 && dy > 0:
		return PolarAngle{Theta: math.Pi / 2}
	case dx == 0 && dy < 0:
		return PolarAngle{Theta: 3 * math.Pi / 2}
	}

	// Reference angle in (0, π/2), then place it in its quadrant
	base := math.Atan(math.Abs(dy) / math.Abs(dx))
	var theta float64
	switch {
	case dx > 0 && dy > 0:
		theta = base
	case dx < 0 && dy > 0:
		theta = math.Pi - base
	case dx < 0 && dy < 0:
		theta = math.Pi + base
	default:
		theta = TwoPi - base
	}
	return NewPolarAngle(theta)
}

// FromPolar returns the border point at angle a
func (l Lake) FromPolar(a PolarAngle) Point2D {
	return Point2D{
		X: l.Center.X + l.Radius*math.Cos(a.Theta),
		Y: l.Center.Y + l.Radius*math.Sin(a.Theta),
	}
}

// ArcAngle converts an arc length along the border into radians
func (l Lake) ArcAngle(arc float64) float64 {
	return arc / l.Radius
}
