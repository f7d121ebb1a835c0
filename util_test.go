package waveguide

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var cmpAllowUnexported = cmp.AllowUnexported(options{})

// approx compares floats, and therefore points and path elements, to
// within 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if !got.Near(want, epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func approxEqual(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}
