package waveguide

import (
	"fmt"
	"log/slog"
	"slices"
)

// UniquePoints returns points without consecutive entries closer than tol
// to the last kept point.
func UniquePoints(points []Point, tol float64) []Point {
	if len(points) < 2 {
		return slices.Clone(points)
	}
	out := []Point{points[0]}
	for _, pt := range points[1:] {
		if pt.Distance(out[len(out)-1]) > tol {
			out = append(out, pt)
		}
	}
	return out
}

// dropCollinear removes interior waypoints that lie on the straight segment
// between their neighbours. Waypoints where the path reverses are kept.
func dropCollinear(points []Point) []Point {
	if len(points) < 3 {
		return points
	}
	out := []Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		if isStraight(AngleBetween(prev.Sub(points[i]), points[i+1].Sub(points[i]))) {
			continue
		}
		out = append(out, points[i])
	}
	return append(out, points[len(points)-1])
}

// RoundPath replaces the corners of the polyline through points with
// tangent circular arcs of the given radius.
//
// Waypoints closer than [DedupeTolerance] to their predecessor are dropped,
// as are waypoints on a straight line between their neighbours. Corners are
// then rounded one at a time from the start of the path. When a segment is
// too short to hold the arcs at both of its ends, the two corners are
// rounded jointly, either with a pair of arcs (Z bend) or, if the path
// turns around, with four arcs (U bend).
//
// The first element starts at the first waypoint and the last element ends
// at the last waypoint. Consecutive elements share their endpoints and are
// tangent to each other.
//
// RoundPath returns an error wrapping [ErrDegenerateInput] if a waypoint is
// not finite or fewer than two distinct waypoints remain, and a [*ClearanceError] if the waypoints are
// too close together for the radius.
func RoundPath(points []Point, radius float64) ([]PathElement, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: radius %g", ErrDegenerateInput, radius)
	}
	for i, pt := range points {
		if pt.IsInf() || pt.IsNaN() {
			return nil, fmt.Errorf("%w: waypoint %d is %s", ErrDegenerateInput, i, pt)
		}
	}
	pts := dropCollinear(UniquePoints(points, DedupeTolerance))
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: %d distinct waypoints", ErrDegenerateInput, len(pts))
	}

	c := compiler{radius: radius, points: pts}
	if err := c.run(); err != nil {
		return nil, err
	}
	return c.path, nil
}

// compiler holds the state of one RoundPath call. points is the part of the
// path that remains to be rounded.
type compiler struct {
	radius    float64
	path      []PathElement
	points    []Point
	canRewind bool

	// The state before the last successful single-corner solve.
	prevPath   []PathElement
	prevPoints []Point
}

func (c *compiler) fatal(window []Point) error {
	return &ClearanceError{Window: slices.Clone(window), Radius: c.radius}
}

// advance consumes the first n points and replaces them with rest.
func (c *compiler) advance(res solveOutcome, n int) {
	next := append(slices.Clone(res.rest), c.points[n:]...)
	if len(next) >= 2 && next[0] == next[1] {
		next = next[1:]
	}
	c.path = append(c.path, res.elements...)
	c.points = next
}

func (c *compiler) solve4() error {
	if len(c.points) < 4 {
		return c.fatal(c.points)
	}
	window := c.points[:4]
	res := solve4(window[0], window[1], window[2], window[3], c.radius)
	if res.kind != solved {
		return c.fatal(window)
	}
	c.advance(res, 4)
	c.canRewind = false
	return nil
}

func (c *compiler) run() error {
	log := Logger()
	// Every iteration either fails or makes progress, but bound the loop
	// anyway.
	limit := 2*len(c.points) + 4
	for i := 0; len(c.points) > 2; i++ {
		if i >= limit {
			return fmt.Errorf("waveguide: path compiler did not terminate: %w", c.fatal(c.points))
		}

		window := c.points[:3]
		res := solve3(window[0], window[1], window[2], c.radius)
		switch res.kind {
		case solved:
			c.prevPath = slices.Clone(c.path)
			c.prevPoints = slices.Clone(c.points)
			c.advance(res, 3)
			c.canRewind = true

		case needRewind:
			if !c.canRewind {
				return c.fatal(window)
			}
			log.Debug("rounding corner together with previous one",
				slog.Any("window", window), slog.Float64("radius", c.radius))
			c.path = c.prevPath
			c.points = c.prevPoints
			if err := c.solve4(); err != nil {
				return err
			}

		case needForward:
			log.Debug("rounding corner together with next one",
				slog.Any("window", window), slog.Float64("radius", c.radius))
			if err := c.solve4(); err != nil {
				return err
			}

		default:
			return c.fatal(window)
		}
	}

	if len(c.points) == 2 {
		res := solve2(c.points[0], c.points[1])
		c.path = append(c.path, res.elements...)
	}
	return nil
}
