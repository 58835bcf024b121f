// Package buffer: the Buffer itself — locking, ingestion, queries.
package buffer

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maretto/framebuf/cache"
	"github.com/maretto/framebuf/graph"
	"github.com/maretto/framebuf/lookup"
	"github.com/maretto/framebuf/telemetry"
	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// Buffer owns one frame graph behind a readers-writer lock and exposes
// the module's public query surface. All methods are safe for
// concurrent use.
type Buffer struct {
	mu   sync.RWMutex
	cond *sync.Cond // waiters for future-dated data; see CanTransform

	g      *graph.Graph
	engine *lookup.Engine

	log zerolog.Logger
	obs telemetry.Observer
}

// New builds a Buffer, applying options left to right over
// DefaultOptions.
func New(opts ...Option) *Buffer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Buffer{log: o.Logger, obs: o.Observer}
	b.cond = sync.NewCond(b.mu.RLocker())
	b.g = graph.New(
		graph.WithCacheWindow(o.CacheWindow),
		graph.WithReparentHook(func(child, oldParent, newParent string) {
			b.log.Warn().
				Str("child", child).
				Str("old_parent", oldParent).
				Str("new_parent", newParent).
				Msg("frame changed parents")
		}),
	)

	var engineOpts []lookup.Option
	if o.MaxGraphDepth > 0 {
		engineOpts = append(engineOpts, lookup.WithMaxDepth(o.MaxGraphDepth))
	}
	b.engine = lookup.New(b.g, engineOpts...)
	return b
}

// Ingest applies one batch of samples under a single writer critical
// section, in the order given. Rejected samples are logged and counted
// but do not fail the batch. Waiters are woken once per batch that
// stored at least one sample.
func (b *Buffer) Ingest(batch []transform.TransformStamped, static bool) {
	if len(batch) == 0 {
		return
	}

	b.mu.Lock()
	stored := 0
	for _, ts := range batch {
		if err := b.g.AddSample(ts, static); err != nil {
			b.reject(ts, static, err)
			continue
		}
		b.obs.OnIngest(true, "")
		stored++
	}
	b.mu.Unlock()

	if stored > 0 {
		b.cond.Broadcast()
	}
}

// reject emits the structured diagnostic for a refused sample.
func (b *Buffer) reject(ts transform.TransformStamped, static bool, err error) {
	reason := rejectionReason(err)
	b.obs.OnIngest(false, reason)
	b.log.Warn().
		Str("reason", reason).
		Str("parent", ts.Parent).
		Str("child", ts.Child).
		Stringer("stamp", ts.Stamp).
		Bool("static", static).
		Err(err).
		Msg("transform sample rejected")
}

// rejectionReason maps an AddSample error onto its diagnostic code.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, cache.ErrOldData):
		return ReasonOldData
	case errors.Is(err, cache.ErrRepeatedData):
		return ReasonRepeatedData
	case errors.Is(err, transform.ErrNotFinite), errors.Is(err, transform.ErrZeroRotation):
		return ReasonNaNInput
	case errors.Is(err, transform.ErrSameFrame):
		return ReasonSelfParent
	default:
		return ReasonInvalidData
	}
}

// Lookup answers a single-time query: source expressed in the target
// frame at t (tftime.Zero = latest common instant on the path).
func (b *Buffer) Lookup(target, source string, t tftime.Time) (transform.TransformStamped, error) {
	b.mu.RLock()
	ts, err := b.engine.Lookup(target, source, t)
	b.mu.RUnlock()

	b.obs.OnLookup(err == nil)
	return ts, err
}

// LookupTimeTravel answers a two-instant query through a fixed frame.
// The timeout parameter exists for interface parity with CanTransform;
// this call does not wait.
func (b *Buffer) LookupTimeTravel(target string, tTarget tftime.Time, source string, tSource tftime.Time, fixed string, _ tftime.Duration) (transform.TransformStamped, error) {
	b.mu.RLock()
	ts, err := b.engine.LookupTimeTravel(target, tTarget, source, tSource, fixed)
	b.mu.RUnlock()

	b.obs.OnLookup(err == nil)
	return ts, err
}

// CanTransform reports whether Lookup(target, source, t) would succeed,
// waiting up to timeout for data that has not arrived yet.
//
// Only ErrLookupInFuture is worth waiting out — anything else cannot be
// fixed by new samples alone within one retention window, so it returns
// immediately as an error. Timeout expiry is (false, nil), not an error.
func (b *Buffer) CanTransform(target, source string, t tftime.Time, timeout tftime.Duration) (bool, error) {
	deadline := time.Now().Add(timeout.Std())

	b.mu.RLock()
	defer b.mu.RUnlock()

	for {
		_, err := b.engine.Lookup(target, source, t)
		if err == nil {
			b.obs.OnWait(true)
			return true, nil
		}
		if !errors.Is(err, cache.ErrLookupInFuture) {
			b.obs.OnWait(false)
			return false, err
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			b.obs.OnWait(false)
			return false, nil
		}

		// cond.Wait releases the read lock, so a pending writer can
		// ingest and broadcast. The timer bounds the park in case no
		// batch ever arrives.
		timer := time.AfterFunc(remaining, b.cond.Broadcast)
		b.cond.Wait()
		timer.Stop()
	}
}

// Frames returns all frames the buffer currently knows, sorted.
func (b *Buffer) Frames() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.g.Frames()
}
