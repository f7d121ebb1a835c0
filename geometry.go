package waveguide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FixAngle maps an angle in radians to the range (−π, π]. Both π and −π map
// to π.
func FixAngle(th float64) float64 {
	m := math.Mod(th+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	if m == 0 {
		return math.Pi
	}
	return m - math.Pi
}

// AngleBetween returns the signed angle, in radians, of the anti-clockwise
// rotation that takes v0 to v1. The result is in (−π, π].
func AngleBetween(v1, v0 Vec2) float64 {
	return FixAngle(v1.Angle() - v0.Angle())
}

// Project returns the orthogonal projection of p onto the infinite line
// through a and b.
func Project(p, a, b Point) Point {
	e := b.Sub(a).Normalize()
	return a.Translate(e.Mul(p.Sub(a).Dot(e)))
}

// Bisect returns the unit vector bisecting the angle between v1 and v2. The
// vectors need not have equal lengths.
//
// See https://math.stackexchange.com/questions/2285965
func Bisect(v1, v2 Vec2) Vec2 {
	return v2.Mul(v1.Hypot()).Add(v1.Mul(v2.Hypot())).Normalize()
}

// Intersect computes the crossing point of the line through a with direction
// ea and the line through b with direction eb. It reports false if the
// directions are parallel.
func Intersect(a Point, ea Vec2, b Point, eb Vec2) (Point, bool) {
	den := ea.Cross(eb)
	if mgl64.FloatEqualThreshold(den/(ea.Hypot()*eb.Hypot()), 0, 1e-12) {
		return Point{}, false
	}
	t := b.Sub(a).Cross(eb) / den
	return a.Translate(ea.Mul(t)), true
}

// FindArc returns the center and radius of the circle through a, b and c.
// If the points are collinear the radius is +Inf and the center is
// meaningless.
func FindArc(a, b, c Point) (Point, float64) {
	ab := b.Sub(a)
	bc := c.Sub(b)
	if math.Abs(ab.Cross(bc)) <= 1e-8 {
		return Point{}, math.Inf(1)
	}

	// Work relative to b to keep the determinant well conditioned.
	u := a.Sub(b)
	w := c.Sub(b)
	d := 2 * u.Cross(w)
	u2 := u.Hypot2()
	w2 := w.Hypot2()
	center := b.Translate(Vec2{
		X: (w.Y*u2 - u.Y*w2) / d,
		Y: (u.X*w2 - w.X*u2) / d,
	})
	return center, center.Distance(a)
}

// CurveLength returns the length of the polyline through points.
func CurveLength(points []Point) float64 {
	var l float64
	for i := 1; i < len(points); i++ {
		l += points[i].Distance(points[i-1])
	}
	return l
}

// minClearance returns how far a tangent arc of the given radius reaches
// along each leg of a vertex with interior angle th.
func minClearance(th, radius float64) float64 {
	t := math.Tan(th / 2)
	if t == 0 {
		return math.Inf(1)
	}
	return math.Abs(radius / t)
}

// cosAngle returns the cosine of the angle between two vectors, clamped to
// [−1, 1].
func cosAngle(v1, v2 Vec2) float64 {
	return mgl64.Clamp(v1.Dot(v2)/v1.Hypot()/v2.Hypot(), -1, 1)
}
