package waveguide

import (
	"fmt"
	"iter"
)

type ElementKind int

const (
	// A straight segment from P0 to P1.
	LineKind ElementKind = iota + 1
	// A circular arc from P0 to P1 around Center.
	ArcKind
)

func (k ElementKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case ArcKind:
		return "Arc"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// PathElement is one piece of a rounded path: either a line or an arc.
// Center and CCW are only meaningful for arcs.
//
// Use [PathElement.Line] and [PathElement.Arc] to get typed views.
type PathElement struct {
	Kind   ElementKind
	P0     Point
	Center Point
	P1     Point
	CCW    bool
}

func (el PathElement) String() string {
	switch el.Kind {
	case LineKind:
		return el.Line().String()
	case ArcKind:
		return el.Arc().String()
	default:
		return fmt.Sprintf("InvalidPathElement(%s, %s, %s, %t)", el.P0, el.Center, el.P1, el.CCW)
	}
}

func (el PathElement) Line() Line {
	return Line{P0: el.P0, P1: el.P1}
}

func (el PathElement) Arc() Arc {
	return Arc{P0: el.P0, Center: el.Center, P1: el.P1, CCW: el.CCW}
}

func (el PathElement) Start() Point { return el.P0 }
func (el PathElement) End() Point   { return el.P1 }

// Tangents returns the unit direction of travel at the start and the end of
// the element.
func (el PathElement) Tangents() (Vec2, Vec2) {
	if el.Kind == ArcKind {
		return el.Arc().Tangents()
	}
	return el.Line().Tangents()
}

func (el PathElement) Length() float64 {
	if el.Kind == ArcKind {
		return el.Arc().Length()
	}
	return el.Line().Length()
}

// Points returns the points outlining the element in the direction of
// travel. Arcs are sampled to within tol.
func (el PathElement) Points(tol float64) []Point {
	if el.Kind == ArcKind {
		return el.Arc().Points(tol)
	}
	return el.Line().Points()
}

func (el PathElement) Translate(v Vec2) PathElement {
	if el.Kind == ArcKind {
		return el.Arc().Translate(v).Element()
	}
	return el.Line().Translate(v).Element()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.Center.IsNaN() || el.P1.IsNaN()
}

// PathPoints yields the points of a sequence of path elements, omitting the
// start of each element that coincides with the end of the previous one.
func PathPoints(path []PathElement, tol float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		first := true
		var last Point
		for _, el := range path {
			for i, pt := range el.Points(tol) {
				if i == 0 && !first && pt == last {
					continue
				}
				if !yield(pt) {
					return
				}
				last = pt
			}
			first = false
		}
	}
}

// PathLength returns the total length of path.
func PathLength(path []PathElement) float64 {
	var l float64
	for _, el := range path {
		l += el.Length()
	}
	return l
}
