// Package framebuf keeps track of timestamped rigid-body coordinate
// frames and answers transform queries between any two of them.
//
// What is framebuf?
//
//	A thread-safe, in-memory transform buffer for robotic processes:
//
//	  • Ingest streams of stamped parent→child transforms (dynamic or static)
//	  • Look up the transform between any two frames at any instant,
//	    interpolating between samples where needed
//	  • "Time-travel" between two instants through a fixed reference frame
//
// Why choose framebuf?
//
//   - Bounded memory      — each edge retains a sliding time window of samples
//   - Rock-solid          — single-writer/many-reader locking, consistent snapshots
//   - Extensible          — plug in your own logger and metrics observer
//   - Honest errors       — every failed lookup names the edge and the reason
//
// The module is organized by concern:
//
//	tftime/    — nanosecond-resolution stamps with saturating arithmetic
//	transform/ — rigid-body transform values and the pure SE(3) algebra
//	cache/     — per-edge time-indexed sample stores (timed and static)
//	graph/     — the frame graph: paired edge insertion and path discovery
//	lookup/    — composition of per-edge samples into an end-to-end transform
//	buffer/    — the concurrent front door: Ingest, Lookup, CanTransform
//	telemetry/ — optional Prometheus counters for ingest and lookup outcomes
//
// Quick ASCII example:
//
//	    world──item
//	      │
//	  base_link──camera
//
//	lookup("camera", "item", t) walks item→world→base_link→camera and
//	chains one interpolated sample per edge.
//
//	go get github.com/maretto/framebuf
package framebuf
