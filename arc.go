package waveguide

import (
	"fmt"
	"math"
)

// arcNudge is the angle, in radians, of the extra samples placed just after
// the start and just before the end of an arc. They pin the direction of
// the ribbon at the arc's ends to the tangent.
const arcNudge = 0.001

// Arc is a circular arc from P0 to P1 around Center, traversed
// anti-clockwise if CCW is set and clockwise otherwise.
//
// P0 and P1 must be equidistant from Center. Use [NewArc] to construct
// validated arcs.
type Arc struct {
	P0     Point
	Center Point
	P1     Point
	CCW    bool
}

// NewArc returns the arc from p0 to p1 around center. It returns an error
// wrapping [ErrInvalidArc] if the radius is zero or the two endpoints are
// not equidistant from center.
func NewArc(p0, center, p1 Point, ccw bool) (Arc, error) {
	r0 := p0.Distance(center)
	r1 := p1.Distance(center)
	if r0 == 0 || math.IsNaN(r0) || math.IsNaN(r1) {
		return Arc{}, fmt.Errorf("%w: zero radius at %s", ErrInvalidArc, center)
	}
	if math.Abs(r0-r1) > 1e-6*max(1, r0) {
		return Arc{}, fmt.Errorf("%w: radii %g and %g differ", ErrInvalidArc, r0, r1)
	}
	return Arc{p0, center, p1, ccw}, nil
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc(%s, %s, %s, %t)", a.P0, a.Center, a.P1, a.CCW)
}

// Radius returns the distance from the center to the start point.
func (a Arc) Radius() float64 {
	return a.P0.Distance(a.Center)
}

// Sweep returns the signed angle swept by the arc, positive for
// anti-clockwise arcs. Its magnitude is in [0, 2π).
func (a Arc) Sweep() float64 {
	th := FixAngle(a.P1.Sub(a.Center).Angle() - a.P0.Sub(a.Center).Angle())
	switch {
	case math.Abs(th) < 1e-12:
		return 0
	case a.CCW && th < 0:
		th += 2 * math.Pi
	case !a.CCW && th > 0:
		th -= 2 * math.Pi
	}
	return th
}

func (a Arc) Length() float64 {
	return a.Radius() * math.Abs(a.Sweep())
}

// Eval returns the point at parameter t ∈ [0, 1], proportional to angle.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(a.P0.Sub(a.Center).Rotate(a.Sweep() * t))
}

func (a Arc) Start() Point { return a.P0 }
func (a Arc) End() Point   { return a.P1 }

// Tangents returns the unit direction of travel at the arc's start and end.
func (a Arc) Tangents() (Vec2, Vec2) {
	t0 := a.P0.Sub(a.Center).Rotate90().Normalize()
	t1 := a.P1.Sub(a.Center).Rotate90().Normalize()
	if !a.CCW {
		t0, t1 = t0.Negate(), t1.Negate()
	}
	return t0, t1
}

func (a Arc) Translate(v Vec2) Arc {
	return Arc{
		P0:     a.P0.Translate(v),
		Center: a.Center.Translate(v),
		P1:     a.P1.Translate(v),
		CCW:    a.CCW,
	}
}

// Points samples the arc in the direction of travel so that the polyline
// through the points stays within tol of the circle. The first and last
// points are exactly P0 and P1.
func (a Arc) Points(tol float64) []Point {
	sweep := a.Sweep()
	if sweep == 0 || a.Radius() == 0 {
		return []Point{a.P0, a.P1}
	}
	samples := SampleCurve(a.Eval, 0, 1, tol)
	if nudge := arcNudge / math.Abs(sweep); nudge < 0.5 {
		samples = insertSample(samples, Sample{nudge, a.Eval(nudge)})
		samples = insertSample(samples, Sample{1 - nudge, a.Eval(1 - nudge)})
	}
	pts := make([]Point, len(samples))
	for i, s := range samples {
		pts[i] = s.P
	}
	pts[0] = a.P0
	pts[len(pts)-1] = a.P1
	return pts
}

func (a Arc) Element() PathElement {
	return PathElement{Kind: ArcKind, P0: a.P0, Center: a.Center, P1: a.P1, CCW: a.CCW}
}
