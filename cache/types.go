// Package cache: the Cache contract, sentinel errors, and options.
package cache

import (
	"errors"

	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// DefaultMaxStorage is the retention window applied to timed caches
// when no WithMaxStorage option overrides it.
var DefaultMaxStorage = tftime.Duration{Sec: 10}

// Sentinel errors for cache insertion and lookup.
var (
	// ErrOldData indicates an insert older than the retention window
	// behind the newest stored sample.
	ErrOldData = errors.New("cache: sample predates the storage window")

	// ErrRepeatedData indicates an insert whose stamp duplicates a
	// stored sample.
	ErrRepeatedData = errors.New("cache: sample with identical stamp already stored")

	// ErrLookupInPast indicates a query older than the oldest retained
	// sample (or any query against an empty cache).
	ErrLookupInPast = errors.New("cache: requested time predates retained history")

	// ErrLookupInFuture indicates a query newer than the newest sample.
	ErrLookupInFuture = errors.New("cache: requested time is ahead of newest sample")
)

// Cache is the shared contract of the Timed and Static edge stores.
//
// Implementations are not safe for concurrent use on their own; the
// owning graph serializes access.
type Cache interface {
	// Insert stores one sample. Timed caches refuse ErrOldData and
	// ErrRepeatedData; static caches overwrite unconditionally.
	Insert(ts transform.TransformStamped) error

	// At resolves the edge at time t. tftime.Zero selects the newest
	// sample. Refusals are ErrLookupInPast and ErrLookupInFuture.
	At(t tftime.Time) (transform.TransformStamped, error)

	// Latest reports the newest stamp and its parent frame.
	// ok is false while the cache is empty.
	Latest() (stamp tftime.Time, parent string, ok bool)

	// Parent reports the parent frame in effect at time t.
	Parent(t tftime.Time) (string, bool)

	// Remove drops the sample with exactly the given stamp, reporting
	// whether one was stored. Used to roll back a paired insertion.
	Remove(stamp tftime.Time) bool

	// Len reports the number of retained samples.
	Len() int

	// Static reports the variant. The variant of an edge never changes.
	Static() bool
}

// Option configures a Timed cache at construction.
type Option func(*Timed)

// WithMaxStorage overrides the retention window for a timed cache.
// Non-positive windows fall back to DefaultMaxStorage.
func WithMaxStorage(d tftime.Duration) Option {
	return func(c *Timed) {
		if !d.IsZero() {
			c.maxStorage = d
		}
	}
}
