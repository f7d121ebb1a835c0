package waveguide

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput is returned for paths with fewer than two distinct
	// waypoints.
	ErrDegenerateInput = errors.New("waveguide: degenerate input")

	// ErrInsufficientClearance is returned when the waypoints are too close
	// together to fit a bend of the requested radius.
	ErrInsufficientClearance = errors.New("waveguide: insufficient clearance")

	// ErrInvalidWidth is returned for width specifications that don't match
	// the path they are applied to.
	ErrInvalidWidth = errors.New("waveguide: invalid width")

	// ErrInvalidArc is returned for arcs whose endpoints are not on a
	// common circle of positive radius.
	ErrInvalidArc = errors.New("waveguide: invalid arc")
)

// ClearanceError describes a window of waypoints that cannot be rounded with
// the requested radius. It matches [ErrInsufficientClearance].
type ClearanceError struct {
	Window []Point
	Radius float64
}

func (e *ClearanceError) Error() string {
	return fmt.Sprintf("waveguide: insufficient clearance for radius %g at %v", e.Radius, e.Window)
}

func (e *ClearanceError) Is(target error) bool {
	return target == ErrInsufficientClearance
}

// WidthError is returned when a width specification is invalid for a path.
// It matches [ErrInvalidWidth].
type WidthError struct {
	// Points is the number of waypoints, Widths the number of widths.
	Points int
	Widths int
	Reason string
}

func (e *WidthError) Error() string {
	if e.Reason != "" {
		return "waveguide: invalid width: " + e.Reason
	}
	return fmt.Sprintf("waveguide: %d widths for %d points", e.Widths, e.Points)
}

func (e *WidthError) Is(target error) bool {
	return target == ErrInvalidWidth
}
