package waveguide

import (
	"fmt"
	"log/slog"
)

// WaveguideFromPoints rounds the corners of the polyline through points with
// bends of the given radius and returns the outline of a waveguide of the
// given width along it.
//
// The radius must exceed half the largest width. Per-point widths are not
// supported, since rounding replaces the waypoints.
//
// If rounding fails and [WithStraightFallback] was given, a straight ribbon
// through the waypoints is returned instead and the failure is logged.
func WaveguideFromPoints(points []Point, width WidthSpec, radius float64, opts ...Option) (Polygon, error) {
	return waveguideFromPoints(points, width, radius, buildOptions(opts))
}

// LayoutWaveguide is like [WaveguideFromPoints], but additionally inserts
// the polygon into sink on layer. Unless [WithDBU] was given, the database
// unit is taken from sink.
func LayoutWaveguide(sink ShapeSink, layer Layer, points []Point, width WidthSpec, radius float64, opts ...Option) (Polygon, error) {
	o := buildOptions(opts)
	if o.dbu <= 0 {
		o.dbu = sink.DBU()
	}
	poly, err := waveguideFromPoints(points, width, radius, o)
	if err != nil {
		return nil, err
	}
	if err := sink.Insert(poly, layer); err != nil {
		return nil, err
	}
	return poly, nil
}

func waveguideFromPoints(points []Point, width WidthSpec, radius float64, o options) (Polygon, error) {
	if err := width.validate(); err != nil {
		return nil, err
	}
	if width.kind == perPointWidth {
		return nil, &WidthError{Reason: "per-point widths cannot follow a rounded path"}
	}
	if !(radius > width.Max()/2) {
		return nil, fmt.Errorf("%w: radius %g is not larger than half the width %g",
			ErrDegenerateInput, radius, width.Max())
	}
	if o.taper != nil && (!(o.taper.Width > 0) || !(o.taper.Length > 0)) {
		return nil, &WidthError{Reason: fmt.Sprintf("invalid taper %+v", *o.taper)}
	}
	if o.dbu <= 0 {
		o.dbu = DefaultDBU
	}

	path, err := RoundPath(points, radius)
	if err != nil {
		if o.fallbackWidth > 0 {
			Logger().Warn("rounding failed, drawing straight waveguide",
				slog.Any("err", err), slog.Float64("width", o.fallbackWidth))
			return Ribbon(UniquePoints(points, DedupeTolerance), Constant(o.fallbackWidth), o.dbu, false)
		}
		return nil, err
	}

	w, w1 := width.values[0], width.values[0]
	if width.kind == interpolatedWidth {
		w1 = width.values[1]
	}
	runs := TaperPath(path, w, o.taper, o.taperMinLength, o.arcTolerance)
	pts, ws := joinRuns(runs)
	if w1 != w {
		ws = interpolateRuns(pts, ws, w, w1)
	}

	poly, err := Ribbon(pts, PerPoint(ws...), o.dbu, o.smooth)
	if err != nil {
		return nil, err
	}
	return poly.Compress(true), nil
}

// interpolateRuns scales widths that were computed for a path of width w0
// so that the nominal width changes linearly from w0 to w1 along pts.
// Tapered stretches keep their shape relative to the nominal width.
func interpolateRuns(pts []Point, ws []float64, w0, w1 float64) []float64 {
	nominal, _ := Interpolated(w0, w1).Resolve(pts)
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = w * nominal[i] / w0
	}
	return out
}
