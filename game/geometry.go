package game

import "math"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ClosestPoint returns the point of r nearest to (x, y).
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return clamp(x, r.X, r.X+r.Width), clamp(y, r.Y, r.Y+r.Height)
}

// CirclesOverlap reports whether two circles overlap. Circles that only touch
// do not count.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x2-x1, y2-y1) < r1+r2
}

// CircleTouchesRect reports whether a circle overlaps or touches r.
func CircleTouchesRect(cx, cy, radius float64, r Rect) bool {
	px, py := r.ClosestPoint(cx, cy)
	dx, dy := cx-px, cy-py
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
