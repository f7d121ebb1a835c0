package waveguide

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box returns the parallelogram with opposite corners p1 and p3 and sides
// parallel to ex and ey, as p1, p2, p3, p4:
//
//	p2 ----- p3
//	|        |
//	p1 ----- p4
//	ex --->
func Box(p1, p3 Point, ex, ey Vec2) (Polygon, error) {
	frame := Frame(p1, ex, ey)
	if frame.Determinant() == 0 {
		return nil, fmt.Errorf("waveguide: box axes %s and %s are parallel", ex, ey)
	}
	local := p3.Transform(frame.Invert())
	p2 := Pt(0, local.Y).Transform(frame)
	p4 := Pt(local.X, 0).Transform(frame)
	return Polygon{p1, p2, p3, p4}, nil
}

// Rectangle returns the rectangle of the given width along ex and height
// along ey, centered on center.
func Rectangle(center Point, width, height float64, ex, ey Vec2) (Polygon, error) {
	p1 := center.Translate(ex.Mul(-width / 2)).Translate(ey.Mul(-height / 2))
	p3 := center.Translate(ex.Mul(width / 2)).Translate(ey.Mul(height / 2))
	return Box(p1, p3, ex, ey)
}

func Square(center Point, width float64, ex, ey Vec2) (Polygon, error) {
	return Rectangle(center, width, width, ex, ey)
}

// ArcSpec describes a circular waveguide section. Angles are in radians and
// measured in the frame whose x axis is Ex.
type ArcSpec struct {
	Center     Point
	Radius     float64
	Width      float64
	Start, End float64
	// Ex is the direction of the local x axis; its length is ignored. The
	// zero value means ⟨1, 0⟩.
	Ex Vec2
	// Clip, if set, bounds the section in local coordinates relative to
	// Center, before rotation by Ex.
	Clip *Bounds
	// Tolerance is the maximum chordal deviation. Zero means
	// DefaultArcTolerance.
	Tolerance float64
	// DBU is the database unit. Zero means DefaultDBU.
	DBU float64
}

// ArcDegrees is like constructing an ArcSpec directly, but takes the angles
// in degrees.
func ArcDegrees(center Point, radius, width, start, end float64) ArcSpec {
	return ArcSpec{
		Center: center,
		Radius: radius,
		Width:  width,
		Start:  mgl64.DegToRad(start),
		End:    mgl64.DegToRad(end),
	}
}

// arcEndNudge is the angle of the samples added next to an arc section's
// ends.
const arcEndNudge = 1e-4

// ArcRibbon returns the outline of the arc section described by spec. The
// result is empty, with a nil error, if Clip excludes the whole section.
func ArcRibbon(spec ArcSpec) (Polygon, error) {
	if !(spec.Radius > 0) || math.IsInf(spec.Radius, 0) {
		return nil, fmt.Errorf("%w: arc radius %g", ErrDegenerateInput, spec.Radius)
	}
	t0, t1 := spec.Start, spec.End
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	if t0 == t1 {
		return nil, fmt.Errorf("%w: arc spans no angle", ErrDegenerateInput)
	}

	r := spec.Radius
	f := func(t float64) Point { return Point(VecFromAngle(t).Mul(r)) }
	samples := SampleCurve(f, t0, t1, spec.Tolerance)
	if t1-t0 > 2*arcEndNudge {
		samples = insertSample(samples, Sample{t0 + arcEndNudge, f(t0 + arcEndNudge)})
		samples = insertSample(samples, Sample{t1 - arcEndNudge, f(t1 - arcEndNudge)})
	}
	pts := make([]Point, len(samples))
	for i, s := range samples {
		pts[i] = s.P
	}

	poly, err := Ribbon(pts, Constant(spec.Width), spec.DBU, true)
	if err != nil {
		return nil, err
	}
	return placeClipped(poly, spec.Center, spec.Ex, spec.Clip), nil
}

// placeClipped clips poly, given relative to the origin, to clip and moves
// it to center with its x axis along ex. A nil clip keeps everything.
func placeClipped(poly Polygon, center Point, ex Vec2, clip *Bounds) Polygon {
	b := Unbounded
	if clip != nil {
		b = *clip
	}
	poly = poly.Clip([2]float64{b.X0, b.X1}, [2]float64{b.Y0, b.Y1})
	if poly.IsEmpty() {
		return nil
	}
	if ex == (Vec2{}) {
		ex = Vec2{1, 0}
	}
	return poly.Place(center, ex.Normalize()).Compress(true)
}

// sampleCircle samples the arc of radius r around the origin from t0 to t1.
func sampleCircle(r, t0, t1, tol float64) []Point {
	f := func(t float64) Point { return Point(VecFromAngle(t).Mul(r)) }
	samples := SampleCurve(f, t0, t1, tol)
	pts := make([]Point, len(samples))
	for i, s := range samples {
		pts[i] = s.P
	}
	return pts
}

// Circle returns an anti-clockwise polygon approximating the disk of radius
// r around center, to within tol. Zero tol means DefaultArcTolerance.
func Circle(center Point, r, tol float64) (Polygon, error) {
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("%w: circle radius %g", ErrDegenerateInput, r)
	}
	pts := sampleCircle(r, 0, 2*math.Pi, tol)
	// The last sample repeats the first.
	return Polygon(pts[:len(pts)-1]).Translate(center.Sub(Point{})), nil
}

// Donut returns the annulus between radii r1 and r2 around center as two
// contours: the anti-clockwise outer circle and the clockwise hole. Fill the
// result with the even-odd rule.
func Donut(center Point, r1, r2, tol float64) ([]Polygon, error) {
	if !(r1 > 0 && r2 > r1) {
		return nil, fmt.Errorf("%w: donut radii %g and %g", ErrDegenerateInput, r1, r2)
	}
	outer, err := Circle(center, r2, tol)
	if err != nil {
		return nil, err
	}
	inner, err := Circle(center, r1, tol)
	if err != nil {
		return nil, err
	}
	return []Polygon{outer, inner.Reverse()}, nil
}

// Ring returns a circular waveguide of width w whose center line has radius
// r. See [Donut] for the shape of the result.
func Ring(center Point, r, w, tol float64) ([]Polygon, error) {
	if !(w > 0) {
		return nil, fmt.Errorf("%w: ring width %g", ErrInvalidWidth, w)
	}
	if r-w/2 <= 0 {
		return nil, fmt.Errorf("%w: ring of width %g is too wide for radius %g", ErrDegenerateInput, w, r)
	}
	return Donut(center, r-w/2, r+w/2, tol)
}

// SectionSpec describes a circular sector: the region between the center
// and an arc. Angles are in radians and measured in the frame whose x axis
// is Ex.
type SectionSpec struct {
	Center     Point
	Radius     float64
	Start, End float64
	// Ex is the direction of the local x axis; its length is ignored. The
	// zero value means ⟨1, 0⟩.
	Ex Vec2
	// Clip, if set, bounds the sector in local coordinates relative to
	// Center, before rotation by Ex.
	Clip *Bounds
	// Tolerance is the maximum chordal deviation. Zero means
	// DefaultArcTolerance.
	Tolerance float64
}

// sectionOverlap is the angle by which a sector extends past each end, so
// that adjacent sectors overlap.
const sectionOverlap = 1e-3

// Section returns the outline of the sector described by spec. The result is
// empty, with a nil error, if Clip excludes the whole sector.
func Section(spec SectionSpec) (Polygon, error) {
	if !(spec.Radius > 0) || math.IsInf(spec.Radius, 0) {
		return nil, fmt.Errorf("%w: section radius %g", ErrDegenerateInput, spec.Radius)
	}
	t0, t1 := spec.Start, spec.End
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	if t0 == t1 {
		return nil, fmt.Errorf("%w: section spans no angle", ErrDegenerateInput)
	}

	var poly Polygon
	if t1-t0+2*sectionOverlap >= 2*math.Pi {
		var err error
		if poly, err = Circle(Point{}, spec.Radius, spec.Tolerance); err != nil {
			return nil, err
		}
	} else {
		poly = Polygon(sampleCircle(spec.Radius, t0-sectionOverlap, t1+sectionOverlap, spec.Tolerance))
		poly = append(poly, Point{})
	}
	return placeClipped(poly, spec.Center, spec.Ex, spec.Clip), nil
}

// WaveguideAngle outlines a waveguide along points whose cross section is
// perpendicular to a fixed direction th, in radians, rather than to the
// path. This suits sampled curves whose direction is known at the ends.
func WaveguideAngle(points []Point, width WidthSpec, th float64) (Polygon, error) {
	return WaveguideAngle2(points, width, th, th)
}

// WaveguideAngle2 is like [WaveguideAngle], but the direction changes
// linearly with the point index from thFrom at the first point to thTo at
// the last one.
func WaveguideAngle2(points []Point, width WidthSpec, thFrom, thTo float64) (Polygon, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d points", ErrDegenerateInput, len(points))
	}
	ws, err := width.Resolve(points)
	if err != nil {
		return nil, err
	}
	n := len(points)
	out := make(Polygon, 2*n)
	for i, pt := range points {
		th := thFrom + (thTo-thFrom)*float64(i)/float64(n-1)
		off := VecFromAngle(th).Rotate90().Mul(ws[i] / 2)
		out[i] = pt.Translate(off)
		out[2*n-1-i] = pt.Translate(off.Negate())
	}
	return out, nil
}
