// Package lookup: the path-walking composition engine.
package lookup

import (
	"errors"
	"fmt"

	"github.com/maretto/framebuf/cache"
	"github.com/maretto/framebuf/graph"
	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// ErrNilGraph is returned by queries against an Engine built around no
// graph.
var ErrNilGraph = errors.New("lookup: graph is nil")

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth bounds path discovery. Non-positive keeps the graph
// default.
func WithMaxDepth(d int) Option {
	return func(e *Engine) {
		if d > 0 {
			e.maxDepth = d
		}
	}
}

// Engine answers transform queries against one frame graph. It holds
// no mutable state; the owning buffer provides synchronization.
type Engine struct {
	g        *graph.Graph
	maxDepth int
}

// New builds an Engine over g.
func New(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{g: g, maxDepth: graph.DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lookup returns the transform expressing source in the target frame
// at time t (tftime.Zero = latest common instant).
func (e *Engine) Lookup(target, source string, t tftime.Time) (transform.TransformStamped, error) {
	if e.g == nil {
		return transform.TransformStamped{}, ErrNilGraph
	}
	if target == source {
		stamp := t
		if t.IsZero() {
			stamp = e.latestCommonAll()
		}
		return transform.TransformStamped{
			Parent:    target,
			Child:     source,
			Stamp:     stamp,
			Transform: transform.Identity(),
		}, nil
	}

	path, err := e.g.FindPath(source, target, e.maxDepth)
	if err != nil {
		return transform.TransformStamped{}, err
	}

	tEff := t
	if t.IsZero() {
		tEff = e.latestCommonOnPath(path)
	}

	// Walking [source, …, target]: the pair (a, b) contributes the
	// transform of the edge whose parent is b, i.e. b←a, so the running
	// product grows on the left toward the target frame.
	acc := transform.Identity()
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		c, ok := e.g.Edge(b, a)
		if !ok {
			return transform.TransformStamped{}, fmt.Errorf("%w: edge %s→%s vanished mid-walk", graph.ErrNoPath, b, a)
		}
		ts, err := c.At(tEff)
		if err != nil {
			return transform.TransformStamped{}, fmt.Errorf("edge %s→%s: %w", b, a, err)
		}
		acc = transform.Compose(ts.Transform, acc)
	}

	return transform.TransformStamped{
		Parent:    target,
		Child:     source,
		Stamp:     tEff,
		Transform: acc,
	}, nil
}

// LookupTimeTravel expresses source at tSource in the target frame at
// tTarget, resolving both ends through the fixed frame.
func (e *Engine) LookupTimeTravel(target string, tTarget tftime.Time, source string, tSource tftime.Time, fixed string) (transform.TransformStamped, error) {
	if e.g == nil {
		return transform.TransformStamped{}, ErrNilGraph
	}
	sourceFixed, err := e.Lookup(source, fixed, tSource)
	if err != nil {
		return transform.TransformStamped{}, err
	}
	targetFixed, err := e.Lookup(target, fixed, tTarget)
	if err != nil {
		return transform.TransformStamped{}, err
	}

	return transform.TransformStamped{
		Parent:    target,
		Child:     source,
		Stamp:     tSource,
		Transform: transform.Compose(targetFixed.Transform, sourceFixed.Transform.Invert()),
	}, nil
}

// latestCommonOnPath resolves the Zero sentinel for a concrete path:
// the minimum over the path's timed edges of their newest stamp.
// Static edges do not constrain the minimum.
func (e *Engine) latestCommonOnPath(path []string) tftime.Time {
	var common tftime.Time
	have := false
	for i := 1; i < len(path); i++ {
		c, ok := e.g.Edge(path[i], path[i-1])
		if !ok || c.Static() {
			continue
		}
		stamp, _, ok := c.Latest()
		if !ok {
			continue
		}
		if !have || stamp.Before(common) {
			common, have = stamp, true
		}
	}
	return common
}

// latestCommonAll resolves the Zero sentinel for the identity query,
// where no path narrows the candidate set: the minimum newest stamp
// over every timed edge in the graph.
func (e *Engine) latestCommonAll() tftime.Time {
	var common tftime.Time
	have := false
	e.g.VisitEdges(func(_, _ string, c cache.Cache) bool {
		if c.Static() {
			return true
		}
		if stamp, _, ok := c.Latest(); ok && (!have || stamp.Before(common)) {
			common, have = stamp, true
		}
		return true
	})
	return common
}
