// Package graph maintains the directed frame graph: which frames exist,
// which edges connect them, and the per-edge sample caches.
//
// What
//
//   - AddSample ingests one stamped transform, materializing frames and
//     the edge pair (parent→child and its inverse) atomically.
//   - FindPath discovers the shortest route between two frames by
//     breadth-first search with a configurable depth bound.
//   - Edge / HasFrame / Frames expose read access for the lookup engine.
//
// Why
//
//	Producers publish edges independently; queries span whatever chain
//	of edges happens to connect two frames. Keeping both directions of
//	every edge makes path search symmetric and lets the engine compose
//	without caring which direction the producer published.
//
// Pairing invariant
//
//	For every stored parent→child cache there is a child→parent cache
//	holding the inverse samples at identical stamps. AddSample rolls the
//	first insert back if the second fails, so readers never observe a
//	half-paired edge.
//
// Cycles and reparenting
//
//	A frame may acquire a new parent over time; the edges remember
//	per-time parentage and the change is surfaced through the reparent
//	hook for diagnostics. A true cycle at one instant cannot be ruled
//	out cheaply: BFS still terminates via its visited set and uses the
//	first (shortest, insertion-ordered) path it finds.
//
// Concurrency
//
//	Graph performs no locking of its own; the buffer layer serializes
//	writers and shields readers behind its lock.
//
// Complexity (V = frames, E = edges, n = samples per edge)
//
//   - AddSample: O(log n) search + O(n) shift per timed cache insert.
//   - FindPath:  O(V + E).
package graph
