// Package buffer: configuration options and diagnostic reason codes.
package buffer

import (
	"github.com/rs/zerolog"

	"github.com/maretto/framebuf/telemetry"
	"github.com/maretto/framebuf/tftime"
)

// Diagnostic reasons attached to rejected samples.
const (
	// ReasonOldData: the sample trails the edge's newest stamp by more
	// than the retention window.
	ReasonOldData = "TF_OLD_DATA"

	// ReasonRepeatedData: a sample with the identical stamp is already
	// stored on the edge.
	ReasonRepeatedData = "TF_REPEATED_DATA"

	// ReasonNaNInput: a non-finite component or degenerate rotation.
	ReasonNaNInput = "TF_NAN_INPUT"

	// ReasonSelfParent: the sample names the same frame as parent and
	// child.
	ReasonSelfParent = "TF_SELF_PARENT"

	// ReasonInvalidData: anything else AddSample refuses outright —
	// empty frame ids or a variant conflict with an existing edge.
	ReasonInvalidData = "TF_INVALID_DATA"
)

// Options holds the tunables a Buffer is built with.
type Options struct {
	// CacheWindow is the retention window of every timed edge.
	// Zero keeps the cache default of 10 s.
	CacheWindow tftime.Duration

	// MaxGraphDepth bounds path discovery. Zero keeps the graph
	// default of 1000.
	MaxGraphDepth int

	// Logger receives structured rejection diagnostics.
	Logger zerolog.Logger

	// Observer mirrors ingest and lookup outcomes as metrics.
	Observer telemetry.Observer
}

// DefaultOptions returns the tunables New starts from: the default
// cache window and depth bound, a no-op logger, a no-op observer.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Observer: telemetry.Nop(),
	}
}

// Option configures a Buffer via functional arguments.
type Option func(*Options)

// WithCacheWindow overrides the retention window for timed edges.
func WithCacheWindow(d tftime.Duration) Option {
	return func(o *Options) { o.CacheWindow = d }
}

// WithMaxGraphDepth overrides the path-discovery depth bound.
// Non-positive values keep the default.
func WithMaxGraphDepth(d int) Option {
	return func(o *Options) {
		if d > 0 {
			o.MaxGraphDepth = d
		}
	}
}

// WithLogger routes rejection diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithObserver mirrors outcomes to obs.
func WithObserver(obs telemetry.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}
