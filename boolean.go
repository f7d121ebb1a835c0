package waveguide

import (
	polyclip "github.com/akavel/polyclip-go"
)

func toPolyclip(ps ...Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(ps))
	for _, p := range ps {
		if p.IsEmpty() {
			continue
		}
		c := make(polyclip.Contour, len(p))
		for i, pt := range p {
			c[i] = polyclip.Point{X: pt.X, Y: pt.Y}
		}
		out = append(out, c)
	}
	return out
}

func fromPolyclip(pp polyclip.Polygon) []Polygon {
	out := make([]Polygon, 0, len(pp))
	for _, c := range pp {
		p := make(Polygon, len(c))
		for i, pt := range c {
			p[i] = Point{pt.X, pt.Y}
		}
		if p = p.Compress(false); !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

func construct(op polyclip.Op, a, b []Polygon) []Polygon {
	return fromPolyclip(toPolyclip(a...).Construct(op, toPolyclip(b...)))
}

// Union returns the contours of the region covered by a or b. Holes are
// returned as contours of their own; the result is meant to be filled with
// the even-odd rule.
func Union(a, b []Polygon) []Polygon {
	return construct(polyclip.UNION, a, b)
}

// Intersection returns the contours of the region covered by both a and b.
func Intersection(a, b []Polygon) []Polygon {
	return construct(polyclip.INTERSECTION, a, b)
}

// XorArea returns the area covered by exactly one of the simple polygons a
// and b. It is zero for identical shapes, regardless of vertex order or
// redundant vertices.
func XorArea(a, b Polygon) float64 {
	// The intersection of two simple polygons has no holes, so its area is
	// the sum of its contours' areas.
	var common float64
	for _, p := range Intersection([]Polygon{a}, []Polygon{b}) {
		common += p.Area()
	}
	return max(0, a.Area()+b.Area()-2*common)
}

// Merge returns the outline of the union of polys.
func Merge(polys []Polygon) []Polygon {
	var out []Polygon
	for _, p := range polys {
		if p.IsEmpty() {
			continue
		}
		if out == nil {
			out = []Polygon{p.Clone()}
			continue
		}
		out = Union(out, []Polygon{p})
	}
	return out
}
