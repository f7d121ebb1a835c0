package waveguide

import (
	"testing"
)

func TestTaperPath(t *testing.T) {
	path := []PathElement{Line{Pt(0, 0), Pt(100, 0)}.Element()}
	runs := TaperPath(path, 0.5, &Taper{Width: 3, Length: 10}, DefaultTaperMinLength, 0)
	want := []Run{
		{[]Point{{0, 0}, {10, 0}}, []float64{0.5, 3}},
		{[]Point{{10, 0}, {90, 0}}, []float64{3, 3}},
		{[]Point{{90, 0}, {100, 0}}, []float64{3, 0.5}},
	}
	diff(t, want, runs, approx)

	pts, ws := joinRuns(runs)
	diff(t, []Point{{0, 0}, {10, 0}, {90, 0}, {100, 0}}, pts, approx)
	diff(t, []float64{0.5, 3, 3, 0.5}, ws)
}

func TestTaperPathThreshold(t *testing.T) {
	taper := &Taper{Width: 3, Length: 10}
	tests := []struct {
		length float64
		runs   int
	}{
		{40, 1},
		{49.9, 1},
		{50, 3},
		{51, 3},
	}
	for _, tt := range tests {
		path := []PathElement{Line{Pt(0, 0), Pt(0, tt.length)}.Element()}
		if got := len(TaperPath(path, 0.5, taper, 30, 0)); got != tt.runs {
			t.Errorf("line of length %v: got %d runs, want %d", tt.length, got, tt.runs)
		}
	}
}

func TestTaperPathArcs(t *testing.T) {
	arc := Arc{Pt(100, 0), Pt(0, 0), Pt(0, 100), true}
	path := []PathElement{arc.Element()}
	runs := TaperPath(path, 0.5, &Taper{Width: 3, Length: 10}, 30, 1e-3)
	if len(runs) != 1 {
		t.Fatalf("arc was split into %d runs", len(runs))
	}
	for i, w := range runs[0].Widths {
		if w != 0.5 {
			t.Fatalf("width %d is %v, want 0.5", i, w)
		}
	}
	diff(t, arc.Points(1e-3), runs[0].Points)
}

func TestTaperPathNoTaper(t *testing.T) {
	path := []PathElement{
		Line{Pt(0, 0), Pt(100, 0)}.Element(),
		Arc{Pt(100, 0), Pt(100, 10), Pt(110, 10), true}.Element(),
	}
	runs := TaperPath(path, 0.5, nil, 30, 1e-3)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	pts, ws := joinRuns(runs)
	if len(pts) != len(ws) {
		t.Fatalf("got %d points and %d widths", len(pts), len(ws))
	}
	if want := len(runs[0].Points) + len(runs[1].Points) - 1; len(pts) != want {
		t.Errorf("got %d points, want %d", len(pts), want)
	}
}
