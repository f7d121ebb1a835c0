package waveguide

const (
	// DefaultDBU is the database unit assumed when neither the caller nor
	// the shape sink provides one, in micrometers.
	DefaultDBU = 0.001

	// DefaultArcTolerance is the maximum distance, in micrometers, between
	// a sampled arc and the true circle.
	DefaultArcTolerance = 5e-4

	// DefaultTaperMinLength is the length of straight segment, in addition
	// to the two tapers themselves, below which a Line is not tapered.
	DefaultTaperMinLength = 30.0

	// DedupeTolerance is the distance below which consecutive waypoints are
	// considered identical.
	DedupeTolerance = 1e-4
)

// Option configures [WaveguideFromPoints] and [LayoutWaveguide].
//
// Example:
//
//	poly, err := waveguide.WaveguideFromPoints(pts, waveguide.Constant(0.5), 5,
//		waveguide.WithTaper(3, 10),
//		waveguide.WithDBU(0.001),
//	)
type Option func(*options)

type options struct {
	taper          *Taper
	taperMinLength float64
	smooth         bool
	arcTolerance   float64
	dbu            float64
	fallbackWidth  float64
}

func defaultOptions() options {
	return options{
		taperMinLength: DefaultTaperMinLength,
		arcTolerance:   DefaultArcTolerance,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTaper widens long straight segments to width over length at either
// end. See [TaperPath].
func WithTaper(width, length float64) Option {
	return func(o *options) {
		o.taper = &Taper{Width: width, Length: length}
	}
}

// WithTaperMinLength sets the straight length, excluding the tapers, that a
// Line needs before it gets tapered. The default is
// [DefaultTaperMinLength].
func WithTaperMinLength(base float64) Option {
	return func(o *options) {
		o.taperMinLength = base
	}
}

// WithSmoothing drops ribbon vertices that turn by more than 130°. It is off
// by default, because rounded paths have no sharp corners.
func WithSmoothing(smooth bool) Option {
	return func(o *options) {
		o.smooth = smooth
	}
}

// WithArcTolerance sets the maximum chordal deviation used when sampling
// arcs.
func WithArcTolerance(tol float64) Option {
	return func(o *options) {
		o.arcTolerance = tol
	}
}

// WithDBU sets the database unit. For [LayoutWaveguide] it overrides the
// sink's value.
func WithDBU(dbu float64) Option {
	return func(o *options) {
		o.dbu = dbu
	}
}

// WithStraightFallback draws a straight, unrounded ribbon of the given width
// through the waypoints when rounding fails, instead of returning the error.
// The failure is logged as a warning.
func WithStraightFallback(width float64) Option {
	return func(o *options) {
		o.fallbackWidth = width
	}
}
