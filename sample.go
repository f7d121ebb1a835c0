package waveguide

import (
	"slices"
)

const (
	sampleInitial  = 16
	sampleMaxDepth = 16
)

// Sample is a point of a parametric curve together with its parameter.
type Sample struct {
	T float64
	P Point
}

// SampleCurve evaluates f on [t0, t1] at enough parameter values that the
// polyline through the returned samples deviates from f by no more than tol.
//
// Sampling starts with 16 uniform intervals. Every interval whose midpoint
// is farther than tol from its chord is split in two, up to 16 times. The
// samples are ordered by parameter and always include t0 and t1.
//
// A non-positive tol selects [DefaultArcTolerance].
func SampleCurve(f func(float64) Point, t0, t1, tol float64) []Sample {
	if tol <= 0 {
		tol = DefaultArcTolerance
	}
	if t0 == t1 {
		return []Sample{{t0, f(t0)}}
	}

	out := make([]Sample, 0, sampleInitial+1)
	out = append(out, Sample{t0, f(t0)})

	var subdivide func(a, b Sample, depth int)
	subdivide = func(a, b Sample, depth int) {
		tm := 0.5 * (a.T + b.T)
		m := Sample{tm, f(tm)}
		distSq, _ := Line{a.P, b.P}.Nearest(m.P)
		if depth < sampleMaxDepth && distSq > tol*tol {
			subdivide(a, m, depth+1)
			subdivide(m, b, depth+1)
			return
		}
		out = append(out, b)
	}

	prev := out[0]
	for i := 1; i <= sampleInitial; i++ {
		t := t0 + (t1-t0)*float64(i)/sampleInitial
		if i == sampleInitial {
			t = t1
		}
		cur := Sample{t, f(t)}
		subdivide(prev, cur, 0)
		prev = cur
	}
	return out
}

// insertSample adds s to samples, which must be sorted by parameter in
// the direction of increasing or decreasing T. Samples already present at
// s.T are left alone.
func insertSample(samples []Sample, s Sample) []Sample {
	if len(samples) < 2 {
		return append(samples, s)
	}
	asc := samples[0].T <= samples[len(samples)-1].T
	i, found := slices.BinarySearchFunc(samples, s.T, func(e Sample, t float64) int {
		if e.T == t {
			return 0
		}
		if (e.T < t) == asc {
			return -1
		}
		return 1
	})
	if found {
		return samples
	}
	return slices.Insert(samples, i, s)
}
