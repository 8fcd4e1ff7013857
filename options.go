package composite

import "log/slog"

// Option configures a Compositor during creation.
//
// Example:
//
//	// Default: nearest-neighbour resizing, single goroutine
//	c := composite.New()
//
//	// Smoother resizing and band-parallel compositing
//	c := composite.New(
//	    composite.WithInterpolation(composite.InterpBilinear),
//	    composite.WithWorkers(4),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	resizer  Resizer
	interp   Interpolation
	workers  int
	logger   *slog.Logger
	poolSize int
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		resizer:  nil, // built-in resizer using interp
		interp:   InterpNearest,
		workers:  1,
		logger:   nil, // package logger, see SetLogger
		poolSize: 4,
	}
}

// WithResizer replaces the built-in resizer.
// Use this to plug in a different resampling library or a deterministic
// stub in tests. WithInterpolation has no effect on a custom resizer.
func WithResizer(r Resizer) Option {
	return func(o *options) {
		o.resizer = r
	}
}

// WithInterpolation selects the kernel of the built-in resizer.
// The default is InterpNearest.
func WithInterpolation(k Interpolation) Option {
	return func(o *options) {
		o.interp = k
	}
}

// WithWorkers splits each layer into row bands composited on n goroutines.
// n <= 0 uses GOMAXPROCS; 1 (the default) composites on the calling
// goroutine. Output is identical either way.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets a logger for this compositor only.
// Without it the package logger (see SetLogger) is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPoolSize sets how many idle resize buffers of each size are kept
// between calls. 0 keeps an unlimited number.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}
