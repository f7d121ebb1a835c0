package waveguide

import "fmt"

// Line represents a straight segment of a path.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", l.P0, l.P1)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// CrossedBy reports whether the segment o touches or crosses the infinite
// line through l. Parallel segments never cross.
func (l Line) CrossedBy(o Line) bool {
	d := l.P1.Sub(l.P0)
	if d.Cross(o.P1.Sub(o.P0)) == 0 {
		return false
	}
	s0 := d.Cross(o.P0.Sub(l.P0))
	s1 := d.Cross(o.P1.Sub(l.P0))
	return (s0 <= 0 && s1 >= 0) || (s0 >= 0 && s1 <= 0)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point of the
// segment, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Tangents returns the unit direction of the line, at its start and its end.
func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0).Normalize()
	return d, d
}

// Points returns the line's two endpoints.
func (l Line) Points() []Point {
	return []Point{l.P0, l.P1}
}

func (l Line) Element() PathElement {
	return PathElement{Kind: LineKind, P0: l.P0, P1: l.P1}
}
