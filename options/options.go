// Package options provides functional options controlling the tolerance
// used by the voronoi package's epsilon-aware comparisons.
package options

// Options holds configuration shared by the voronoi construction and
// diagnostic passes.
type Options struct {
	// Epsilon is the tolerance used for approximate point equality and for
	// the duplicate-site diagnostic. Zero means exact comparison, which is
	// the default: the core algorithm is documented as finite-precision and
	// brittle on exact degeneracies, and silently widening every comparison
	// would mask that rather than surface it.
	Epsilon float64
}

// Func mutates an Options value. It is the functional-options pattern used
// throughout this module for optional construction-time configuration.
type Func func(*Options)

// WithEpsilon sets the tolerance used for approximate comparisons.
//
// A negative epsilon is treated as zero.
func WithEpsilon(epsilon float64) Func {
	return func(o *Options) {
		if epsilon < 0 {
			epsilon = 0
		}
		o.Epsilon = epsilon
	}
}

// Apply builds an Options value from a list of Func, starting from the
// zero value (exact comparison).
func Apply(opts ...Func) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
