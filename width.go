package waveguide

import (
	"fmt"
	"math"
	"slices"
)

type widthKind int

const (
	constantWidth widthKind = iota + 1
	interpolatedWidth
	perPointWidth
)

// WidthSpec describes the width of a waveguide along its waypoints. Create
// one with [Constant], [Interpolated] or [PerPoint]. The zero value is
// invalid.
type WidthSpec struct {
	kind   widthKind
	values []float64
}

// Constant is the same width everywhere.
func Constant(w float64) WidthSpec {
	return WidthSpec{constantWidth, []float64{w}}
}

// Interpolated changes linearly from w0 at the first point to w1 at the last
// one, in proportion to the distance travelled along the path.
func Interpolated(w0, w1 float64) WidthSpec {
	return WidthSpec{interpolatedWidth, []float64{w0, w1}}
}

// PerPoint assigns one width to every point.
func PerPoint(ws ...float64) WidthSpec {
	return WidthSpec{perPointWidth, slices.Clone(ws)}
}

func (s WidthSpec) String() string {
	switch s.kind {
	case constantWidth:
		return fmt.Sprintf("Constant(%g)", s.values[0])
	case interpolatedWidth:
		return fmt.Sprintf("Interpolated(%g, %g)", s.values[0], s.values[1])
	case perPointWidth:
		return fmt.Sprintf("PerPoint(%v)", s.values)
	default:
		return "InvalidWidthSpec"
	}
}

// Max returns the largest width the spec can produce.
func (s WidthSpec) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return slices.Max(s.values)
}

func (s WidthSpec) validate() error {
	if s.kind == 0 {
		return &WidthError{Reason: "no width given"}
	}
	for _, w := range s.values {
		if !(w > 0) || math.IsInf(w, 0) {
			return &WidthError{Reason: fmt.Sprintf("width %g is not positive and finite", w)}
		}
	}
	return nil
}

// Resolve returns the width at every one of points.
func (s WidthSpec) Resolve(points []Point) ([]float64, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	out := make([]float64, len(points))
	switch s.kind {
	case constantWidth:
		for i := range out {
			out[i] = s.values[0]
		}
	case interpolatedWidth:
		w0, w1 := s.values[0], s.values[1]
		total := CurveLength(points)
		var dist float64
		for i := range out {
			if i > 0 {
				dist += points[i].Distance(points[i-1])
			}
			t := 0.0
			if total > 0 {
				t = dist / total
			}
			out[i] = (1-t)*w0 + t*w1
		}
	case perPointWidth:
		if len(s.values) != len(points) {
			return nil, &WidthError{Points: len(points), Widths: len(s.values)}
		}
		copy(out, s.values)
	}
	return out, nil
}
