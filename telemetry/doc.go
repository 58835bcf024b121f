// Package telemetry exposes ingest and lookup outcomes as metrics.
//
// What
//
//   - Observer: the hook the buffer drives on every ingested sample and
//     every answered query. Nop() is the default no-op.
//   - Prometheus: an Observer backed by prometheus counters, labeled by
//     outcome and rejection reason.
//
// Why
//
//	A transform buffer fails quietly by design — rejected samples are
//	logged, not fatal. Counters make the quiet failures visible on a
//	dashboard: a climbing TF_OLD_DATA rate means a producer's clock is
//	drifting long before any query starts erroring.
//
// Usage
//
//	obs := telemetry.NewPrometheus(prometheus.DefaultRegisterer)
//	buf := buffer.New(buffer.WithObserver(obs))
package telemetry
