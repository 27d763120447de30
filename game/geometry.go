package game

import "math"

// Point2D is a position in surface (pixel) coordinates
type Point2D struct {
	X, Y float64
}

// Add returns p + o
func (p Point2D) Add(o Point2D) Point2D {
	return Point2D{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o
func (p Point2D) Sub(o Point2D) Point2D {
	return Point2D{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p multiplied by k
func (p Point2D) Scale(k float64) Point2D {
	return Point2D{X: p.X * k, Y: p.Y * k}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Magnitude returns the length of a measured from the origin
func Magnitude(a Point2D) float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// ProjectToward returns the point at distance dist from origin along the ray
// origin->target. The result is not clamped to target: dist larger than the
// origin-target distance lands beyond it.
// Coincident origin and target return origin unchanged.
func ProjectToward(origin, target Point2D, dist float64) Point2D {
	delta := target.Sub(origin)
	length := Magnitude(delta)
	if length == 0 {
		return origin
	}

	// Normalize direction
	return origin.Add(delta.Scale(dist / length))
}
