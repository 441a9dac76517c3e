package annotate

import "math"

// Point is a position in device-space pixels.
type Point struct {
	X, Y int32
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// In reports whether the point lies inside r (after normalization,
// boundary inclusive).
func (p Point) In(r Rect) bool {
	n := r.Normalized()
	return p.X >= n.Left && p.X <= n.Right && p.Y >= n.Top && p.Y <= n.Bottom
}

// distanceToSegment returns the distance from p to the segment [a, b].
// Used by freehand and arrow hit-testing.
func distanceToSegment(p, a, b Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	px, py := float64(p.X), float64(p.Y)

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		// Degenerate segment: distance to the single point.
		return math.Hypot(px-ax, py-ay)
	}

	// Project p onto the segment, clamped to [0, 1].
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
