// Package graph: breadth-first path discovery between frames.
package graph

import "fmt"

// queueItem pairs a frame with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one FindPath call.
type walker struct {
	graph     *Graph
	maxDepth  int
	queue     []queueItem
	parent    map[string]string
	truncated bool
}

// FindPath returns the shortest frame sequence [from, …, to] following
// directed edges, breaking ties by edge insertion order. maxDepth <= 0
// falls back to DefaultMaxDepth.
//
// Refusals: ErrNoPath when the frames are not connected (or unknown),
// ErrGraphTooDeep when the target lies beyond the depth bound.
func (g *Graph) FindPath(from, to string, maxDepth int) ([]string, error) {
	if from == to {
		return []string{from}, nil
	}
	if !g.HasFrame(from) || !g.HasFrame(to) {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, from, to)
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	w := &walker{
		graph:    g,
		maxDepth: maxDepth,
		queue:    []queueItem{{id: from}},
		parent:   map[string]string{from: ""},
	}
	if !w.run(to) {
		if w.truncated {
			return nil, fmt.Errorf("%w: %q → %q beyond depth %d", ErrGraphTooDeep, from, to, maxDepth)
		}
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, from, to)
	}
	return w.pathTo(from, to), nil
}

// run drains the queue until the target is reached or the frontier
// empties. Returns whether the target was found.
func (w *walker) run(target string) bool {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.id == target {
			return true
		}
		if item.depth == w.maxDepth {
			// Neighbors would exceed the bound; remember we pruned.
			w.truncated = true
			continue
		}
		for _, nbr := range w.graph.children[item.id] {
			if _, seen := w.parent[nbr]; seen {
				continue
			}
			w.parent[nbr] = item.id
			w.queue = append(w.queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}
	return false
}

// pathTo reconstructs from→to by walking the parent links backwards.
func (w *walker) pathTo(from, to string) []string {
	var rev []string
	for cur := to; cur != ""; cur = w.parent[cur] {
		rev = append(rev, cur)
		if cur == from {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
