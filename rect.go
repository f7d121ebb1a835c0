package waveguide

import (
	"math"
)

// Bounds is an axis-aligned rectangle. Any side may be infinite, which makes
// it suitable for describing half planes and strips as well as boxes.
type Bounds struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Unbounded is the whole plane.
var Unbounded = Bounds{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}

// NewBounds returns the bounds spanning xb and yb. Each pair may be given in
// either order.
func NewBounds(xb, yb [2]float64) Bounds {
	return Bounds{xb[0], yb[0], xb[1], yb[1]}.Abs()
}

// NewBoundsFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewBoundsFromPoints(p0, p1 Point) Bounds {
	return Bounds{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Bounds) Abs() Bounds {
	return Bounds{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Bounds) Width() float64  { return r.X1 - r.X0 }
func (r Bounds) Height() float64 { return r.Y1 - r.Y0 }

// Contains reports whether pt lies inside r or on its boundary.
func (r Bounds) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsBounds reports whether o lies entirely within r.
func (r Bounds) ContainsBounds(o Bounds) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Overlaps reports whether r and o share at least one point.
func (r Bounds) Overlaps(o Bounds) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Bounds) UnionPoint(pt Point) Bounds {
	return Bounds{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Union returns the smallest rectangle enclosing r and o.
func (r Bounds) Union(o Bounds) Bounds {
	return Bounds{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

func (r Bounds) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsInf reports whether any side of r is infinite.
func (r Bounds) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y1, 0)
}

// corner returns the corner between two sides, numbered 0 (left), 1 (top),
// 2 (right), 3 (bottom).
func (r Bounds) corner(from, to int) Point {
	sides := [2]int{from % 4, to % 4}
	x, y := r.X0, r.Y0
	for _, s := range sides {
		switch s {
		case 0:
			x = r.X0
		case 1:
			y = r.Y1
		case 2:
			x = r.X1
		case 3:
			y = r.Y0
		}
	}
	return Point{x, y}
}
