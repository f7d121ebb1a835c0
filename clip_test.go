package waveguide

import (
	"math"
	"testing"
)

func TestClip(t *testing.T) {
	inf := math.Inf(1)
	all := [2]float64{-inf, inf}
	square := Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	triangle := Polygon{{0, 0}, {0, 1}, {1, 1}}

	tests := []struct {
		name   string
		p      Polygon
		xb, yb [2]float64
		want   Polygon
	}{
		{
			name: "box inside polygon",
			p:    square,
			xb:   [2]float64{0.2, 0.8}, yb: [2]float64{0.2, 0.8},
			want: Polygon{{0.2, 0.2}, {0.2, 0.8}, {0.8, 0.8}, {0.8, 0.2}},
		},
		{
			name: "polygon inside box",
			p:    square,
			xb:   [2]float64{-1, 1.5}, yb: [2]float64{-1, 1.5},
			want: square,
		},
		{
			name: "strip",
			p:    square,
			xb:   [2]float64{0.2, 0.8}, yb: all,
			want: Polygon{{0.2, 0}, {0.2, 1}, {0.8, 0}, {0.8, 1}},
		},
		{
			name: "single cut",
			p:    square,
			xb:   [2]float64{0.2, 1.5}, yb: all,
			want: Polygon{{0.2, 0}, {0.2, 1}, {1, 0}, {1, 1}},
		},
		{
			name: "half plane containing polygon",
			p:    square,
			xb:   [2]float64{-1, 1.5}, yb: all,
			want: square,
		},
		{
			name: "disjoint",
			p:    square,
			xb:   [2]float64{1.2, 1.5}, yb: all,
			want: nil,
		},
		{
			name: "overlapping corner",
			p:    square,
			xb:   [2]float64{0.5, 1.5}, yb: [2]float64{0.4, -1},
			want: Polygon{{0.5, 0.4}, {1, 0.4}, {1, 0}, {0.5, 0}},
		},
		{
			name: "triangle",
			p:    triangle,
			xb:   [2]float64{0.2, inf}, yb: [2]float64{-inf, 0.8},
			want: Polygon{{0.2, 0.2}, {0.2, 0.8}, {0.8, 0.8}},
		},
		{
			name: "anti-clockwise corner",
			p:    square.Reverse(),
			xb:   [2]float64{0.5, 2}, yb: [2]float64{0.5, 2},
			want: Polygon{{0.5, 0.5}, {1, 0.5}, {1, 1}, {0.5, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Clip(tt.xb, tt.yb)
			if tt.want == nil {
				if !got.IsEmpty() {
					t.Fatalf("got %v, want empty polygon", got)
				}
				return
			}
			if !got.Equal(tt.want, 1e-12) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if math.Signbit(got.SignedArea()) != math.Signbit(tt.p.SignedArea()) {
				t.Errorf("clipping changed the orientation: %v", got)
			}
		})
	}
}

func TestClipArea(t *testing.T) {
	rect, err := Rectangle(Pt(0, 0), 10, 20, Vec(1, 0), Vec(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if a := rect.Area(); !approxEqual(a, 200, 1e-9) {
		t.Fatalf("got area %v, want 200", a)
	}

	clipped := rect.Clip([2]float64{0, math.Inf(1)}, [2]float64{-5, 5})
	if a := clipped.Area(); !approxEqual(a, 50, 1e-9) {
		t.Errorf("got clipped area %v, want 50", a)
	}

	// The diamond cuts off the box's corners, leaving an octagon.
	diamond, err := Square(Pt(0, 0), math.Sqrt2, Vec(1, 1).Normalize(), Vec(-1, 1).Normalize())
	if err != nil {
		t.Fatal(err)
	}
	clipped = diamond.Clip([2]float64{-0.6, 0.6}, [2]float64{-0.6, 0.6})
	if len(clipped) != 8 {
		t.Errorf("got %d vertices, want 8", len(clipped))
	}
	if a := clipped.Area(); !approxEqual(a, 1.36, 1e-9) {
		t.Errorf("got clipped area %v, want 1.36", a)
	}
}
