// Package buffer is the concurrent front door of the module: it owns
// the frame graph, serializes ingestion, and exposes the query surface.
//
// What
//
//   - New builds a Buffer; Ingest feeds it batches of stamped
//     transforms from the dynamic or static stream.
//   - Lookup / LookupTimeTravel answer queries under a read lock, each
//     query seeing one consistent snapshot of the graph.
//   - CanTransform blocks cooperatively (bounded by a timeout) until
//     the data a future-dated query needs has arrived.
//   - Listener adapts two channel-shaped sample streams onto Ingest.
//
// Why
//
//	Producers and consumers run on different goroutines at different
//	rates. A single-writer/many-reader lock around one shared graph
//	keeps readers wait-free against each other while batches apply
//	atomically with respect to any query.
//
// Concurrency model
//
//   - Ingest takes the write lock once per batch; per-sample rejections
//     are logged and counted but never fail the batch.
//   - Queries take the read lock for the duration of one call.
//   - After every batch that stored at least one sample, the buffer
//     broadcasts to CanTransform waiters parked on its condition
//     variable. Waiters re-check and give up at their deadline.
//
// Diagnostics
//
//	Rejections emit structured zerolog events carrying the reason
//	(TF_OLD_DATA, TF_REPEATED_DATA, TF_NAN_INPUT, TF_SELF_PARENT, …),
//	the frame pair, and the stamp. An optional telemetry.Observer
//	mirrors the same outcomes as counters.
//
// Usage
//
//	buf := buffer.New(
//	    buffer.WithCacheWindow(tftime.Duration{Sec: 30}),
//	    buffer.WithLogger(log),
//	)
//	buf.Ingest(batch, false)
//	ts, err := buf.Lookup("camera", "item", tftime.Zero)
package buffer
