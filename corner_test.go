package waveguide

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestSolve3(t *testing.T) {
	res := solve3(Pt(0, 0), Pt(10, 0), Pt(10, 10), 3)
	if res.kind != solved {
		t.Fatalf("got %s, want solved", res.kind)
	}
	want := []PathElement{
		Line{Pt(0, 0), Pt(7, 0)}.Element(),
		Arc{Pt(7, 0), Pt(7, 3), Pt(10, 3), true}.Element(),
	}
	diff(t, want, res.elements, approx)
	diff(t, []Point{{10, 3}, {10, 10}}, res.rest, approx)

	// Turning right gives a clockwise arc.
	res = solve3(Pt(0, 0), Pt(10, 0), Pt(10, -10), 3)
	want = []PathElement{
		Line{Pt(0, 0), Pt(7, 0)}.Element(),
		Arc{Pt(7, 0), Pt(7, -3), Pt(10, -3), false}.Element(),
	}
	diff(t, want, res.elements, approx)
}

func TestSolve3Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    outcomeKind
	}{
		{"fits", Pt(0, 0), Pt(10, 0), Pt(10, 10), solved},
		{"straight", Pt(0, 0), Pt(10, 0), Pt(20, 0), solved},
		{"short incoming", Pt(9, 0), Pt(10, 0), Pt(10, 10), needRewind},
		{"short outgoing", Pt(0, 0), Pt(10, 0), Pt(10, 1), needForward},
		{"reversal", Pt(0, 0), Pt(10, 0), Pt(5, 0), needRewind},
		{"exact", Pt(0, 0), Pt(3, 0), Pt(3, 3), solved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := solve3(tt.a, tt.b, tt.c, 3).kind; got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSolve3Straight(t *testing.T) {
	res := solve3(Pt(0, 0), Pt(10, 0), Pt(20, 0), 3)
	if len(res.elements) != 0 {
		t.Errorf("straight window produced elements %v", res.elements)
	}
	diff(t, []Point{{0, 0}, {20, 0}}, res.rest)
}

func TestSolve3ExactClearance(t *testing.T) {
	res := solve3(Pt(0, 0), Pt(3, 0), Pt(3, 3), 3)
	if len(res.elements) != 1 {
		t.Fatalf("got %d elements, want a single arc: %v", len(res.elements), res.elements)
	}
	el := res.elements[0]
	// The tangent points snap onto the waypoints.
	if el.P0 != Pt(0, 0) || el.P1 != Pt(3, 3) {
		t.Errorf("got arc from %s to %s", el.P0, el.P1)
	}
	assertNear(t, el.Center, Pt(0, 3), 1e-12)
}

func TestOnSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	for _, p := range []Point{{0, 0}, {5, 0}, {10, 0}} {
		if !onSegment(p, a, b) {
			t.Errorf("%s should be on the segment", p)
		}
	}
	for _, p := range []Point{{-0.1, 0}, {10.1, 0}} {
		if onSegment(p, a, b) {
			t.Errorf("%s should not be on the segment", p)
		}
	}
}

// checkBend verifies that the elements and rest of a solved four-point
// window form a path from a to d whose arcs have the given radius, that
// starts along AB, ends along CD and has no kinks.
func checkBend(t *testing.T, a, b, c, d Point, radius float64, res solveOutcome) {
	t.Helper()
	if res.kind != solved {
		t.Fatalf("got %s, want solved", res.kind)
	}
	els := res.elements
	if len(els) == 0 || len(res.rest) != 2 {
		t.Fatalf("got elements %v and rest %v", els, res.rest)
	}
	if els[0].P0 != a || res.rest[1] != d || els[len(els)-1].P1 != res.rest[0] {
		t.Fatalf("bend from %s to %s does not connect %s and %s", els[0].P0, res.rest[0], a, d)
	}
	dAB := b.Sub(a).Normalize()
	dCD := d.Sub(c).Normalize()
	if start, _ := els[0].Tangents(); start.Sub(dAB).Hypot() > 1e-9 {
		t.Errorf("bend starts in direction %s, want %s", start, dAB)
	}
	if _, end := els[len(els)-1].Tangents(); end.Sub(dCD).Hypot() > 1e-9 {
		t.Errorf("bend ends in direction %s, want %s", end, dCD)
	}
	if off := dCD.Cross(res.rest[0].Sub(c)); math.Abs(off) > 1e-9*max(1, c.Distance(d)) {
		t.Errorf("bend ends %g away from CD", off)
	}
	for i, el := range els {
		if el.Kind == ArcKind {
			r0 := el.P0.Distance(el.Center)
			r1 := el.P1.Distance(el.Center)
			if !approxEqual(r0, radius, 1e-9*max(1, radius)) || !approxEqual(r1, radius, 1e-9*max(1, radius)) {
				t.Errorf("arc %d has radii %v and %v, want %v", i, r0, r1, radius)
			}
		}
		if i == 0 {
			continue
		}
		if els[i-1].P1 != el.P0 {
			t.Errorf("element %d starts at %s, previous one ends at %s", i, el.P0, els[i-1].P1)
		}
		_, out := els[i-1].Tangents()
		in, _ := el.Tangents()
		if out.Sub(in).Hypot() > 1e-9 {
			t.Errorf("direction changes from %s to %s at element %d", out, in, i)
		}
	}
}

func TestSolveZ(t *testing.T) {
	res := solve4(Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(30, 4), 3)
	if res.kind != solved {
		t.Fatalf("got %s, want solved", res.kind)
	}
	x0 := 10 - 2*math.Sqrt2
	x1 := 10 + 2*math.Sqrt2
	want := []PathElement{
		Line{Pt(0, 0), Pt(x0, 0)}.Element(),
		Arc{Pt(x0, 0), Pt(x0, 3), Pt(10, 2), true}.Element(),
		Arc{Pt(10, 2), Pt(x1, 1), Pt(x1, 4), false}.Element(),
	}
	diff(t, want, res.elements, approx)
	diff(t, []Point{{x1, 4}, {30, 4}}, res.rest, approx)
}

func TestSolveZOblique(t *testing.T) {
	// BC is not perpendicular to AB. The arcs touch where BC crosses the
	// midline between AB and CD.
	a, b, c, d := Pt(0, 0), Pt(20, 0), Pt(23, 4), Pt(43, 4)
	res := solveZ(a, b, c, d, 3)
	x0 := 21.5 - 2*math.Sqrt2
	x1 := 21.5 + 2*math.Sqrt2
	want := []PathElement{
		Line{Pt(0, 0), Pt(x0, 0)}.Element(),
		Arc{Pt(x0, 0), Pt(x0, 3), Pt(21.5, 2), true}.Element(),
		Arc{Pt(21.5, 2), Pt(x1, 1), Pt(x1, 4), false}.Element(),
	}
	diff(t, want, res.elements, approx)
	checkBend(t, a, b, c, d, 3, res)

	// Mirrored, the path turns right first.
	a, b, c, d = Pt(0, 0), Pt(20, 0), Pt(23, -4), Pt(43, -4)
	res = solveZ(a, b, c, d, 3)
	if len(res.elements) != 3 || res.elements[1].CCW || !res.elements[2].CCW {
		t.Errorf("got %v, want a clockwise then an anti-clockwise arc", res.elements)
	}
	checkBend(t, a, b, c, d, 3, res)
}

func TestSolveZSkew(t *testing.T) {
	// Build a bend from known arcs, with AB and CD not parallel, and check
	// that the solver finds a valid bend for the waypoints that bound it.
	const r = 1
	o1 := Pt(0, 1)
	dir := VecFromAngle(-math.Pi / 6)
	x := o1.Translate(dir.Mul(r))
	o2 := o1.Translate(dir.Mul(2 * r))
	dCD := VecFromAngle(math.Pi / 6)
	dP := o2.Translate(dCD.Rotate90().Mul(r))

	a, b := Pt(-5, 0), Pt(1, 0)
	c, ok := Intersect(b, x.Sub(b), dP, dCD)
	if !ok {
		t.Fatal("BC does not meet CD")
	}
	d := dP.Translate(dCD.Mul(10))
	checkBend(t, a, b, c, d, r, solveZ(a, b, c, d, r))
}

func TestSolveZRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var ok int
	for range 20000 {
		pts := make([]Point, 4)
		for i := range pts {
			pts[i] = Pt(100*rng.Float64(), 100*rng.Float64())
		}
		a, b, c, d := pts[0], pts[1], pts[2], pts[3]
		bc := c.Sub(b)
		if b.Sub(a).Cross(bc)*bc.Cross(d.Sub(c)) >= 0 {
			// Not a Z.
			continue
		}
		radius := 1 + 9*rng.Float64()
		res := solveZ(a, b, c, d, radius)
		if res.kind != solved {
			continue
		}
		ok++
		checkBend(t, a, b, c, d, radius, res)
		if t.Failed() {
			t.Fatalf("window %v", pts)
		}
	}
	if ok == 0 {
		t.Error("no random window could be solved")
	}
}

func TestSolveU(t *testing.T) {
	res := solve4(Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(0, 4), 3)
	if res.kind != solved {
		t.Fatalf("got %s, want solved", res.kind)
	}
	s := math.Sqrt(11)
	want := []PathElement{
		Line{Pt(0, 0), Pt(8-s, 0)}.Element(),
		Arc{Pt(8-s, 0), Pt(8-s, -3), Pt(8-s/2, -0.5), false}.Element(),
		Arc{Pt(8-s/2, -0.5), Pt(8, 2), Pt(8-s/2, 4.5), true}.Element(),
		Arc{Pt(8-s/2, 4.5), Pt(8-s, 7), Pt(8-s, 4), false}.Element(),
	}
	diff(t, want, res.elements, approx)
	diff(t, []Point{{8 - s, 4}, {0, 4}}, res.rest, approx)
}

func TestSolveUFallback(t *testing.T) {
	// The circle inscribed between the three segments has exactly the
	// requested radius, so the turn is two ordinary corners.
	res := solveU(Pt(0, 0), Pt(10, 0), Pt(10, 6), Pt(0, 6), 3)
	if res.kind != solved {
		t.Fatalf("got %s, want solved", res.kind)
	}
	want := []PathElement{
		Line{Pt(0, 0), Pt(7, 0)}.Element(),
		Arc{Pt(7, 0), Pt(7, 3), Pt(10, 3), true}.Element(),
		Arc{Pt(10, 3), Pt(7, 3), Pt(7, 6), true}.Element(),
	}
	diff(t, want, res.elements, approx)
	diff(t, []Point{{7, 6}, {0, 6}}, res.rest, approx)
}

func TestSolveUNarrow(t *testing.T) {
	// The inscribed circle is slightly smaller than the radius, so the turn
	// needs all four arcs, each of the full radius.
	a, b, c, d := Pt(0, 0), Pt(10, 0), Pt(10, 5.999), Pt(0, 5.999)
	res := solveU(a, b, c, d, 3)
	if got := kinds(res.elements); len(got) != 4 || got[0] != LineKind {
		t.Fatalf("got %v, want a line and three arcs", got)
	}
	checkBend(t, a, b, c, d, 3, res)
}

func TestSolveUInfeasible(t *testing.T) {
	// The outer arcs would have to start before the first waypoint.
	res := solve4(Pt(0, 0), Pt(3, 0), Pt(3, 1), Pt(0, 1), 3)
	if res.kind != infeasible {
		t.Errorf("got %s, want infeasible", res.kind)
	}
}

func TestOutcomeKindString(t *testing.T) {
	for kind, want := range map[outcomeKind]string{
		solved:         "solved",
		needRewind:     "needRewind",
		needForward:    "needForward",
		infeasible:     "infeasible",
		outcomeKind(9): "invalid",
	} {
		if got := kind.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
