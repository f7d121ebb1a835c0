package waveguide

import (
	"math"
	"slices"
)

// Polygon is a simple polygon given by its vertices. The closing edge from
// the last vertex back to the first is implicit.
//
// Methods never modify the receiver; transforms return new polygons.
type Polygon []Point

// Clone returns a copy of p.
func (p Polygon) Clone() Polygon {
	return slices.Clone(p)
}

// IsEmpty reports whether p has too few vertices to enclose any area.
func (p Polygon) IsEmpty() bool {
	return len(p) < 3
}

// SignedArea returns the signed area of p. It is positive for anti-clockwise
// polygons in a y-up coordinate system.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var a float64
	prev := p[len(p)-1]
	for _, pt := range p {
		a += Vec2(prev).Cross(Vec2(pt))
		prev = pt
	}
	return 0.5 * a
}

// Area returns the unsigned area of p.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// BoundingBox returns the smallest rectangle enclosing all vertices.
func (p Polygon) BoundingBox() Bounds {
	if len(p) == 0 {
		return Bounds{}
	}
	bbox := NewBoundsFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Contains reports whether pt lies inside p, using the even-odd rule.
func (p Polygon) Contains(pt Point) bool {
	in := false
	if len(p) < 3 {
		return false
	}
	prev := p[len(p)-1]
	for _, cur := range p {
		if (cur.Y > pt.Y) != (prev.Y > pt.Y) {
			x := cur.X + (pt.Y-cur.Y)*(prev.X-cur.X)/(prev.Y-cur.Y)
			if pt.X < x {
				in = !in
			}
		}
		prev = cur
	}
	return in
}

func (p Polygon) Translate(v Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

func (p Polygon) Transform(aff Affine) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}

// TransformAndRotate re-expresses p, whose coordinates are taken relative to
// the local frame (ex, ey), in global coordinates and moves it to center.
// Every vertex (x, y) becomes center + x·ex + y·ey.
//
// For example, transforming the unit square with center (0, 1) and ex = (0,
// 1), ey = (−1, 0) rotates it by 90° and moves it up by one unit.
func (p Polygon) TransformAndRotate(center Point, ex, ey Vec2) Polygon {
	return p.Transform(Frame(center, ex, ey))
}

// Place rotates p about the origin so that the x axis points along ex, then
// moves the origin to center. The length of ex is ignored.
func (p Polygon) Place(center Point, ex Vec2) Polygon {
	return p.Transform(Identity.ThenRotate(ex.Angle()).ThenTranslate(center.Sub(Point{})))
}

// Reverse returns p with its vertex order reversed.
func (p Polygon) Reverse() Polygon {
	out := p.Clone()
	slices.Reverse(out)
	return out
}

// Compress removes consecutive duplicate vertices and, if removeCollinear
// is set, vertices that lie on the straight line between their neighbours.
func (p Polygon) Compress(removeCollinear bool) Polygon {
	out := make(Polygon, 0, len(p))
	for _, pt := range p {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	if !removeCollinear {
		return out
	}

	// Dropping vertices can create new collinear triples, so iterate until
	// stable.
	for len(out) >= 3 {
		n := len(out)
		keep := make(Polygon, 0, n)
		for i, pt := range out {
			if isCollinear(out[(i+n-1)%n], pt, out[(i+1)%n]) {
				continue
			}
			keep = append(keep, pt)
		}
		if len(keep) == n {
			break
		}
		out = keep
	}
	return out
}

// isCollinear reports whether b lies on the segment between a and c.
func isCollinear(a, b, c Point) bool {
	ab := b.Sub(a)
	bc := c.Sub(b)
	if ab.Cross(bc) != 0 {
		return false
	}
	return ab.Dot(bc) >= 0
}

// Equal reports whether p and o have the same vertex set, regardless of
// starting vertex and order, to within eps.
func (p Polygon) Equal(o Polygon, eps float64) bool {
	if len(p) != len(o) {
		return false
	}
	used := make([]bool, len(o))
outer:
	for _, pt := range p {
		for j, q := range o {
			if !used[j] && pt.Near(q, eps) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
