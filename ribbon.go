package waveguide

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// Consecutive edges turning by less than this are candidates for being
	// samples of an arc.
	arcCosThreshold = math.Cos(mgl64.DegToRad(30))
	// With smoothing, boundary vertices turning by more than this are
	// dropped.
	smoothCosThreshold = math.Cos(mgl64.DegToRad(130))
)

// Ribbon returns the outline of a waveguide following points, at least two
// of which are required.
//
// At every interior point the two boundaries are offset by half the local
// width. Points that look like samples of an arc, that is points where the
// path turns by less than 30° over a distance shorter than the width, are
// offset radially from the circle through them and their neighbours. At
// other corners the offset edges are mitered where they cross. Where they
// don't, the outer side gets both offset points if they are more than dbu
// apart, and the inner side gets their average.
//
// Boundary vertices closer than dbu to the line through their neighbours
// are merged. If smooth is set, vertices turning by more than 130° are
// dropped as well.
//
// The result is the upper boundary followed by the reversed lower one.
func Ribbon(points []Point, width WidthSpec, dbu float64, smooth bool) (Polygon, error) {
	ws, err := width.Resolve(points)
	if err != nil {
		return nil, err
	}
	if dbu <= 0 {
		dbu = DefaultDBU
	}

	pts := make([]Point, 0, len(points))
	widths := make([]float64, 0, len(points))
	for i, pt := range points {
		if len(pts) > 0 && pts[len(pts)-1] == pt {
			continue
		}
		pts = append(pts, pt)
		widths = append(widths, ws[i])
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: ribbon needs two distinct points, got %d", ErrDegenerateInput, len(pts))
	}
	return ribbon(pts, widths, dbu, smooth), nil
}

// offset returns pt moved by w/2 to the left and to the right of dir.
func offset(pt Point, dir Vec2, w float64) (high, low Point) {
	n := dir.Normalize().Rotate90().Mul(w / 2)
	return pt.Translate(n), pt.Translate(n.Negate())
}

// ribbon expects len(pts) == len(ws) >= 2 and no repeated points.
func ribbon(pts []Point, ws []float64, dbu float64, smooth bool) Polygon {
	n := len(pts)
	high := make([]Point, 0, n+2)
	low := make([]Point, 0, n+2)

	h, l := offset(pts[0], pts[1].Sub(pts[0]), ws[0])
	high = append(high, h)
	low = append(low, l)

	for i := 1; i < n-1; i++ {
		prev, pt, next := pts[i-1], pts[i], pts[i+1]
		w := ws[i]
		dPrev := pt.Sub(prev)
		dNext := next.Sub(pt)
		cos := cosAngle(dNext, dPrev)

		if cos > arcCosThreshold && min(dNext.Hypot(), dPrev.Hypot()) < w {
			if center, r := FindArc(prev, pt, next); !math.IsInf(r, 1) {
				ray := pt.Sub(center).Normalize()
				o := -1.0
				if ray.Cross(dPrev) > 0 {
					// anti-clockwise
					o = 1
				}
				off := ray.Mul(o * w / 2)
				low = append(low, pt.Translate(off))
				high = append(high, pt.Translate(off.Negate()))
				continue
			}
		}

		fwdH, fwdL := offset(pt, dNext, w)
		nextH, nextL := offset(next, dNext, ws[i+1])
		bwdH, bwdL := offset(pt, dPrev, w)
		prevH, prevL := offset(prev, dPrev, ws[i-1])

		turn := FixAngle(dNext.Angle() - dPrev.Angle())
		bevel := w*(1-cos) > dbu
		high = joinCorner(high, Line{fwdH, nextH}, Line{bwdH, prevH}, bevel && turn < 0)
		low = joinCorner(low, Line{fwdL, nextL}, Line{bwdL, prevL}, bevel && turn > 0)
	}

	last := pts[n-1]
	delta := last.Sub(pts[n-2])
	h, l = offset(last, delta, ws[n-1])
	if h.Sub(high[len(high)-1]).Dot(delta) > 0 {
		high = append(high, h)
	}
	if l.Sub(low[len(low)-1]).Dot(delta) > 0 {
		low = append(low, l)
	}

	high = smoothPoints(high, dbu, smooth)
	low = smoothPoints(low, dbu, smooth)

	poly := make(Polygon, 0, len(high)+len(low))
	poly = append(poly, high...)
	for i := len(low) - 1; i >= 0; i-- {
		poly = append(poly, low[i])
	}
	return poly
}

// joinCorner appends the boundary vertex at a corner between the offset
// edges prev and next, both starting at the corner.
func joinCorner(side []Point, next, prev Line, bevel bool) []Point {
	if next.CrossedBy(prev) {
		if x, ok := next.CrossingPoint(prev); ok {
			return append(side, x)
		}
	}
	if bevel {
		return append(side, prev.P0, next.P0)
	}
	return append(side, prev.P0.Midpoint(next.P0))
}

func smoothPoints(pts []Point, dbu float64, smooth bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, pt := range pts {
		out = smoothAppend(out, pt, dbu, smooth)
	}
	return out
}

// smoothAppend appends pt to pts unless the last vertex of pts is
// redundant, in which case pt replaces it.
func smoothAppend(pts []Point, pt Point, dbu float64, smooth bool) []Point {
	if len(pts) == 0 {
		return append(pts, pt)
	}
	last := pts[len(pts)-1]
	cur := pt.Sub(last)
	if cur.Hypot2() == 0 {
		return pts
	}
	if len(pts) == 1 {
		return append(pts, pt)
	}

	prev := last.Sub(pts[len(pts)-2])
	if math.Abs(prev.Cross(cur)) <= dbu*dbu/2 {
		pts[len(pts)-1] = pt
		return pts
	}
	if !smooth || cosAngle(cur, prev) > smoothCosThreshold {
		return append(pts, pt)
	}
	// Sharp turn: keep only the longer of the two edges.
	if cur.Hypot() > prev.Hypot() {
		pts[len(pts)-1] = pt
	}
	return pts
}
