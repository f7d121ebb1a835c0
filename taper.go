package waveguide

import (
	"log/slog"
)

// Taper widens or narrows a waveguide to Width over Length.
type Taper struct {
	Width  float64
	Length float64
}

// Run is a stretch of ribbon with a width for each of its points.
type Run struct {
	Points []Point
	Widths []float64
}

func constantRun(points []Point, w float64) Run {
	ws := make([]float64, len(points))
	for i := range ws {
		ws[i] = w
	}
	return Run{points, ws}
}

// TaperPath converts a rounded path into runs of points with widths.
//
// Without a taper every element becomes a run of constant width. With a
// taper, every Line at least minBase + 2·taper.Length long is split into a
// linear transition from width to taper.Width, a run of constant
// taper.Width and a transition back. Arcs always keep width. Arcs are
// sampled to within tol.
func TaperPath(path []PathElement, width float64, taper *Taper, minBase, tol float64) []Run {
	runs := make([]Run, 0, len(path))
	for _, el := range path {
		if el.Kind != LineKind || taper == nil {
			runs = append(runs, constantRun(el.Points(tol), width))
			continue
		}
		runs = append(runs, taperLine(el.Line(), width, *taper, minBase)...)
	}
	return runs
}

func taperLine(l Line, width float64, taper Taper, minBase float64) []Run {
	length := l.Length()
	if length < minBase+2*taper.Length {
		return []Run{constantRun(l.Points(), width)}
	}
	Logger().Debug("tapering line",
		slog.String("line", l.String()),
		slog.Float64("width", taper.Width),
		slog.Float64("length", taper.Length))

	t := taper.Length / length
	in := l.Subsegment(0, t)
	mid := l.Subsegment(t, 1-t)
	out := l.Subsegment(1-t, 1)
	// Lerp at t = 1 may be off by an ulp.
	out.P1 = l.P1
	return []Run{
		{in.Points(), []float64{width, taper.Width}},
		constantRun(mid.Points(), taper.Width),
		{out.Points(), []float64{taper.Width, width}},
	}
}

// joinRuns concatenates runs, dropping points that repeat their
// predecessor exactly. The width of the first occurrence is kept.
func joinRuns(runs []Run) ([]Point, []float64) {
	var pts []Point
	var ws []float64
	for _, r := range runs {
		for i, pt := range r.Points {
			if len(pts) > 0 && pts[len(pts)-1] == pt {
				continue
			}
			pts = append(pts, pt)
			ws = append(ws, r.Widths[i])
		}
	}
	return pts, ws
}
