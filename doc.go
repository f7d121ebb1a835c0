// Package waveguide turns coarse polylines into the outlines of optical
// waveguides for integrated photonic layouts. Waypoints describe the rough
// route of a waveguide; this package rounds every corner with circular bends
// of a minimum radius and builds a polygon of the requested width along the
// result.
//
// # Features
//
// We provide the following notable features:
//
//   - Rounding polylines with tangent arcs (see [RoundPath])
//   - Constant, interpolated and per-point widths (see [WidthSpec])
//   - Adiabatic tapers on long straight stretches (see [WithTaper])
//   - Building ribbon polygons from points and widths (see [Ribbon])
//   - Clipping polygons against axis-aligned boxes (see [Polygon.Clip])
//   - Boolean operations on polygons (see [Union], [XorArea])
//   - Writing layouts as SVG (see [Cell.WriteSVG])
//
// # Rounding
//
// [RoundPath] walks the waypoints from the start. Each corner is replaced by
// a single arc whose tangent points lie on the two segments meeting at the
// corner. The distance from the corner to the tangent points, the
// clearance, grows as the corner gets sharper. When a segment is shorter
// than the clearance that its corners need, the corners at both ends of it
// are rounded jointly. If the path turns the same way at both corners as
// seen from the short segment, two arcs meeting on the segment form a Z
// bend. Otherwise the path turns around in four arcs, a U bend. If neither
// fits, rounding fails with a [*ClearanceError].
//
// The result is a slice of [PathElement], each either a [Line] or an [Arc].
// Consecutive elements share endpoints and are tangent to one another.
//
// # Ribbons
//
// [WaveguideFromPoints] and [LayoutWaveguide] combine rounding with
// [Ribbon], which offsets a sequence of points by half the local width on
// either side. Arcs are sampled adaptively with [SampleCurve] so that the
// polygon stays within a tolerance of the true circle.
//
// Widths are in micrometers, as are all coordinates. The y axis points up,
// so positive angles are anti-clockwise.
//
// # Layouts
//
// Polygons are handed to a [ShapeSink], which supplies the database unit
// used as the precision of the ribbon. [Cell] is a simple in-memory sink.
//
// Nothing in this package holds state across calls, other than the logger
// configured with [SetLogger]. Independent waveguides can be computed
// concurrently.
package waveguide
