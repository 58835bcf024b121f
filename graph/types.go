// Package graph: sentinel errors and functional options.
package graph

import (
	"errors"

	"github.com/maretto/framebuf/tftime"
)

// DefaultMaxDepth bounds breadth-first path discovery.
const DefaultMaxDepth = 1000

// Sentinel errors for graph mutation and path discovery.
var (
	// ErrInvalidArgument indicates a sample that can never be stored:
	// empty or self-referential frame ids, non-finite numbers, or a
	// variant conflict with an existing edge.
	ErrInvalidArgument = errors.New("graph: invalid argument")

	// ErrNoPath indicates the two frames are not connected.
	ErrNoPath = errors.New("graph: no path between frames")

	// ErrGraphTooDeep indicates path discovery hit the depth bound
	// before reaching the target.
	ErrGraphTooDeep = errors.New("graph: path search exceeded depth bound")
)

// ReparentHook observes a timed child frame switching parents. Used for
// diagnostics only; the sample is stored either way.
type ReparentHook func(child, oldParent, newParent string)

// Option configures a Graph at construction.
type Option func(*Graph)

// WithCacheWindow sets the retention window applied to every timed
// edge the graph creates. Zero keeps the cache default.
func WithCacheWindow(d tftime.Duration) Option {
	return func(g *Graph) { g.window = d }
}

// WithReparentHook registers fn to run whenever a timed sample names a
// different parent than the child's previous samples.
func WithReparentHook(fn ReparentHook) Option {
	return func(g *Graph) {
		if fn != nil {
			g.onReparent = fn
		}
	}
}
