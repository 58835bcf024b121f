// Package graph: the frame graph structure and paired-edge ingestion.
package graph

import (
	"fmt"
	"sort"

	"github.com/maretto/framebuf/cache"
	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// Graph is the in-memory frame graph. Frames materialize on the first
// sample that names them; edges never disappear, their samples age out.
//
// Not safe for concurrent use on its own; the buffer layer serializes.
type Graph struct {
	window     tftime.Duration
	onReparent ReparentHook

	// edges[parent][child] holds the samples mapping child→parent.
	edges map[string]map[string]cache.Cache

	// children[parent] preserves insertion order for deterministic
	// neighbor enumeration during path discovery.
	children map[string][]string

	// parentOf tracks the most recent parent each timed child named,
	// to flag reparenting for diagnostics.
	parentOf map[string]string
}

// New builds an empty frame graph and applies options left to right.
func New(opts ...Option) *Graph {
	g := &Graph{
		edges:    make(map[string]map[string]cache.Cache),
		children: make(map[string][]string),
		parentOf: make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// newCache builds a cache of the requested variant with the graph's
// retention window.
func (g *Graph) newCache(static bool) cache.Cache {
	if static {
		return cache.NewStatic()
	}
	if g.window.IsZero() {
		return cache.NewTimed()
	}
	return cache.NewTimed(cache.WithMaxStorage(g.window))
}

// edge returns the cache for parent→child, creating it with the given
// variant if absent. A variant conflict on an existing edge refuses.
func (g *Graph) edge(parent, child string, static bool) (cache.Cache, error) {
	row, ok := g.edges[parent]
	if !ok {
		row = make(map[string]cache.Cache)
		g.edges[parent] = row
	}
	c, ok := row[child]
	if !ok {
		c = g.newCache(static)
		row[child] = c
		g.children[parent] = append(g.children[parent], child)
		return c, nil
	}
	if c.Static() != static {
		return nil, fmt.Errorf("%w: edge %s→%s is %s, sample is %s",
			ErrInvalidArgument, parent, child, variantName(c.Static()), variantName(static))
	}
	return c, nil
}

func variantName(static bool) string {
	if static {
		return "static"
	}
	return "timed"
}

// AddSample validates and stores one stamped transform together with
// its inverse on the opposite edge, at identical stamps. If the inverse
// insert fails the first one is rolled back, so the pairing invariant
// holds even on refusal.
func (g *Graph) AddSample(ts transform.TransformStamped, static bool) error {
	if err := ts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	forward, err := g.edge(ts.Parent, ts.Child, static)
	if err != nil {
		return err
	}
	backward, err := g.edge(ts.Child, ts.Parent, static)
	if err != nil {
		return err
	}

	ts.Transform = ts.Transform.Normalized()
	inverse := ts.Invert()

	if err := forward.Insert(ts); err != nil {
		return fmt.Errorf("edge %s→%s: %w", ts.Parent, ts.Child, err)
	}
	if err := backward.Insert(inverse); err != nil {
		forward.Remove(ts.Stamp)
		return fmt.Errorf("edge %s→%s: %w", ts.Child, ts.Parent, err)
	}

	if !static {
		if prev, ok := g.parentOf[ts.Child]; ok && prev != ts.Parent && g.onReparent != nil {
			g.onReparent(ts.Child, prev, ts.Parent)
		}
		g.parentOf[ts.Child] = ts.Parent
	}
	return nil
}

// Edge exposes the cache for parent→child, if that edge exists.
func (g *Graph) Edge(parent, child string) (cache.Cache, bool) {
	c, ok := g.edges[parent][child]
	return c, ok
}

// HasFrame reports whether id appears in the graph. Because every edge
// is paired, any frame that exists is a parent of at least one edge.
func (g *Graph) HasFrame(id string) bool {
	_, ok := g.edges[id]
	return ok
}

// Frames returns all known frame ids in lexical order.
func (g *Graph) Frames() []string {
	out := make([]string, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VisitEdges calls fn for every directed edge, in no particular order
// (Go map iteration order). Returning false stops the walk.
func (g *Graph) VisitEdges(fn func(parent, child string, c cache.Cache) bool) {
	for parent, kids := range g.edges {
		for child, c := range kids {
			if !fn(parent, child, c) {
				return
			}
		}
	}
}

// EdgeCount reports the number of directed edges (twice the number of
// published relationships).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, row := range g.edges {
		n += len(row)
	}
	return n
}
