package waveguide

import (
	"math"
)

type outcomeKind int

const (
	// The window was rounded. The elements are final and rest holds the
	// points that replace the window in the remaining path.
	solved outcomeKind = iota
	// The incoming segment is too short for the corner; the corner has to
	// be solved together with the previous one.
	needRewind
	// The outgoing segment is too short for the corner; the corner has to
	// be solved together with the next one.
	needForward
	// No construction of the requested radius fits the window.
	infeasible
)

func (k outcomeKind) String() string {
	switch k {
	case solved:
		return "solved"
	case needRewind:
		return "needRewind"
	case needForward:
		return "needForward"
	case infeasible:
		return "infeasible"
	default:
		return "invalid"
	}
}

type solveOutcome struct {
	kind     outcomeKind
	elements []PathElement
	rest     []Point
}

// clearanceSlack is the relative amount by which a segment may fall short
// of the clearance and still be accepted. It absorbs rounding error for
// waypoints that were placed exactly one clearance apart.
const clearanceSlack = 1e-9

func fail(kind outcomeKind) solveOutcome {
	return solveOutcome{kind: kind}
}

// appendLine appends the line from p0 to p1 unless it is degenerate.
func appendLine(els []PathElement, p0, p1 Point) []PathElement {
	if p0 == p1 {
		return els
	}
	return append(els, Line{p0, p1}.Element())
}

func isStraight(alpha float64) bool {
	return math.Abs(math.Abs(alpha)-math.Pi) < 1e-12
}

func solve2(a, b Point) solveOutcome {
	return solveOutcome{kind: solved, elements: appendLine(nil, a, b)}
}

// solve3 rounds the corner at b with a single tangent arc.
func solve3(a, b, c Point, radius float64) solveOutcome {
	alpha := AngleBetween(a.Sub(b), c.Sub(b))
	if isStraight(alpha) {
		return solveOutcome{kind: solved, rest: []Point{a, c}}
	}

	clear := minClearance(alpha, radius)
	if math.IsInf(clear, 0) {
		// The path doubles back on itself.
		return fail(needRewind)
	}
	len1 := b.Distance(a)
	len2 := c.Distance(b)
	slack := clearanceSlack * max(clear, 1)
	if len1 < clear-slack {
		return fail(needRewind)
	}
	if len2 < clear-slack {
		return fail(needForward)
	}

	e1 := b.Sub(a).Div(len1)
	e2 := c.Sub(b).Div(len2)
	t1 := b.Translate(e1.Mul(-clear))
	if len1-clear <= slack {
		t1 = a
	}
	t2 := b.Translate(e2.Mul(clear))
	if len2-clear <= slack {
		t2 = c
	}
	cos := math.Cos(alpha / 2)
	center := b.Translate(e2.Sub(e1).Mul(0.5 * clear / (cos * cos)))

	els := appendLine(nil, a, t1)
	els = append(els, Arc{t1, center, t2, alpha > 0}.Element())
	return solveOutcome{kind: solved, elements: els, rest: []Point{t2, c}}
}

// solve4 rounds the corners at b and c jointly, for when they are too
// close to be rounded one at a time.
func solve4(a, b, c, d Point, radius float64) solveOutcome {
	bc := c.Sub(b)
	a1 := AngleBetween(bc.Negate(), b.Sub(a))
	a2 := AngleBetween(bc.Negate(), d.Sub(c))
	if a1*a2 > 0 {
		return solveZ(a, b, c, d, radius)
	}
	return solveU(a, b, c, d, radius)
}

// onSegment reports whether p, which must lie on the line through a and b,
// is between a and b.
func onSegment(p, a, b Point) bool {
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab) / ab.Hypot2()
	return t >= -clearanceSlack && t <= 1+clearanceSlack
}

// solveZ joins two opposite turns through a pair of arcs. The first arc is
// tangent to AB, the second to CD, and they touch at a point X on the line
// through B and C.
//
// With the tangent points at B + t·AB/|AB| and C + u·CD/|CD|, the centers
// O1 and O2 lie one radius to the side of the turns. X, the midpoint of
// O1 and O2, being on BC makes u linear in t, and |O1 − O2| = 2·radius then
// leaves a quadratic in t. Of its roots, the shortest bend whose tangent
// points lie on their segments and whose arcs turn by at most π wins.
func solveZ(a, b, c, d Point, radius float64) solveOutcome {
	abLen := b.Distance(a)
	cdLen := d.Distance(c)
	d1 := b.Sub(a).Div(abLen)
	d3 := d.Sub(c).Div(cdLen)
	e := c.Sub(b).Normalize()

	k1 := e.Cross(d1)
	k3 := e.Cross(d3)
	if k1 == 0 || k3 == 0 {
		return fail(infeasible)
	}
	// +1 if the path turns left at B.
	side := math.Copysign(1, d1.Cross(e))
	n1 := d1.Rotate90().Mul(side * radius)
	n3 := d3.Rotate90().Mul(-side * radius)

	// O1 = p1 + t·d1, O2 = p2 + u·d3, u = -(c0 + t·k1) / k3
	p1 := b.Translate(n1)
	p2 := c.Translate(n3)
	c0 := e.Cross(p1.Sub(b)) + e.Cross(p2.Sub(b))
	w := p1.Sub(p2).Add(d3.Mul(c0 / k3))
	v := d1.Add(d3.Mul(k1 / k3))

	qa := v.Dot(v)
	qb := 2 * w.Dot(v)
	qc := w.Dot(w) - 4*radius*radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return fail(infeasible)
	}
	sq := math.Sqrt(disc)

	best := fail(infeasible)
	bestLen := math.Inf(1)
	for _, t := range [2]float64{(-qb + sq) / (2 * qa), (-qb - sq) / (2 * qa)} {
		u := -(c0 + t*k1) / k3
		if t > clearanceSlack*abLen || t < -abLen*(1+clearanceSlack) ||
			u < -clearanceSlack*cdLen || u > cdLen*(1+clearanceSlack) {
			continue
		}
		aP := b.Translate(d1.Mul(t))
		if abLen+t <= clearanceSlack*abLen {
			aP = a
		}
		dP := c.Translate(d3.Mul(u))
		if cdLen-u <= clearanceSlack*cdLen {
			dP = d
		}
		o1 := aP.Translate(n1)
		o2 := dP.Translate(n3)
		x := o1.Midpoint(o2)

		arc1 := Arc{aP, o1, x, side > 0}
		arc2 := Arc{x, o2, dP, side < 0}
		sw1, sw2 := math.Abs(arc1.Sweep()), math.Abs(arc2.Sweep())
		if sw1 > math.Pi+1e-9 || sw2 > math.Pi+1e-9 {
			continue
		}
		l := aP.Distance(a) + radius*(sw1+sw2) + d.Distance(dP)
		if l >= bestLen {
			continue
		}
		bestLen = l
		els := appendLine(nil, a, aP)
		els = append(els, arc1.Element(), arc2.Element())
		best = solveOutcome{kind: solved, elements: els, rest: []Point{dP, d}}
	}
	return best
}

// solveU turns the path around through four arcs: one bulging outward from
// each of AB and CD, and one around the point X where the bisectors at B and
// C meet.
func solveU(a, b, c, d Point, radius float64) solveOutcome {
	xb := Bisect(a.Sub(b), c.Sub(b))
	xc := Bisect(b.Sub(c), d.Sub(c))
	orientation := xb.Cross(xc) > 0

	X, ok := Intersect(b, xb, c, xc)
	if !ok {
		return fail(infeasible)
	}
	h := Project(X, b, c).Distance(X)
	if h == 0 {
		return fail(infeasible)
	}

	if h >= radius*(1-clearanceSlack) {
		// A circle of radius h around X touches all three segments, so
		// corners of the requested radius fit one after the other.
		first := solve3(a, b, c, radius)
		if first.kind != solved {
			return fail(infeasible)
		}
		second := solve3(first.rest[0], c, d, radius)
		if second.kind != solved {
			return fail(infeasible)
		}
		return solveOutcome{
			kind:     solved,
			elements: append(first.elements, second.elements...),
			rest:     second.rest,
		}
	}

	eAB := b.Sub(a).Normalize()
	eDC := c.Sub(d).Normalize()
	eP := Project(X, a, b)
	gP := Project(X, d, c)
	E := X.Translate(eP.Sub(X).Mul(radius / h))
	G := X.Translate(gP.Sub(X).Mul(radius / h))

	tangent := func(E, eP Point, e Vec2) Point {
		dd := E.Distance(eP)
		return eP.Translate(e.Mul(-math.Sqrt(dd * (4*radius - dd))))
	}
	aP := tangent(E, eP, eAB)
	dP := tangent(G, gP, eDC)
	if !onSegment(aP, a, b) || !onSegment(dP, d, c) {
		// The outer arcs would start before A or end after D.
		return fail(infeasible)
	}

	aSec := aP.Translate(E.Sub(X))
	dSec := dP.Translate(G.Sub(X))
	H := aSec.Midpoint(X)
	I := dSec.Midpoint(X)

	els := appendLine(nil, a, aP)
	els = append(els,
		Arc{aP, aSec, H, !orientation}.Element(),
		Arc{H, X, I, orientation}.Element(),
		Arc{I, dSec, dP, !orientation}.Element(),
	)
	return solveOutcome{kind: solved, elements: els, rest: []Point{dP, d}}
}
