// Package cache: the Timed variant — a newest-first bounded history.
package cache

import (
	"fmt"
	"sort"

	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// Timed stores a sliding window of samples ordered by stamp descending
// (newest first), the layout binary search and pruning both want.
type Timed struct {
	samples    []transform.TransformStamped
	maxStorage tftime.Duration
}

// NewTimed builds an empty timed cache with the default retention
// window, then applies options left to right.
func NewTimed(opts ...Option) *Timed {
	c := &Timed{maxStorage: DefaultMaxStorage}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Static reports the variant; a Timed cache is never static.
func (c *Timed) Static() bool { return false }

// Len reports the number of retained samples.
func (c *Timed) Len() int { return len(c.samples) }

// MaxStorage reports the configured retention window.
func (c *Timed) MaxStorage() tftime.Duration { return c.maxStorage }

// search returns the position of the first sample with stamp <= t in
// the descending order, i.e. the "older or equal" side of t.
func (c *Timed) search(t tftime.Time) int {
	return sort.Search(len(c.samples), func(i int) bool {
		return !c.samples[i].Stamp.After(t)
	})
}

// Insert stores one sample in descending-stamp position.
//
// Refusals: ErrOldData when the sample trails the newest stamp by more
// than the retention window, ErrRepeatedData on a duplicate stamp.
// A successful insert prunes samples that fell out of the window.
func (c *Timed) Insert(ts transform.TransformStamped) error {
	if len(c.samples) > 0 {
		newest := c.samples[0].Stamp
		if c.maxStorage.Less(newest.Sub(ts.Stamp)) {
			return fmt.Errorf("%w: stamp %v trails newest %v by more than %v",
				ErrOldData, ts.Stamp, newest, c.maxStorage)
		}
	}

	i := c.search(ts.Stamp)
	if i < len(c.samples) && c.samples[i].Stamp.Equal(ts.Stamp) {
		return fmt.Errorf("%w: stamp %v", ErrRepeatedData, ts.Stamp)
	}

	c.samples = append(c.samples, transform.TransformStamped{})
	copy(c.samples[i+1:], c.samples[i:])
	c.samples[i] = ts

	c.prune()
	return nil
}

// prune drops samples older than newest − maxStorage.
func (c *Timed) prune() {
	if len(c.samples) == 0 {
		return
	}
	horizon := c.samples[0].Stamp
	for n := len(c.samples); n > 1; n-- {
		if !c.maxStorage.Less(horizon.Sub(c.samples[n-1].Stamp)) {
			c.samples = c.samples[:n]
			return
		}
	}
	c.samples = c.samples[:1]
}

// At resolves the edge at time t.
//
//   - tftime.Zero returns the newest sample.
//   - An exact stamp match returns that sample.
//   - A time inside the history interpolates between the bracketing
//     pair, unless the pair straddles a parent change, in which case
//     the older sample is returned unchanged.
//   - Ahead of the newest sample: ErrLookupInFuture. Behind the oldest
//     (or empty cache): ErrLookupInPast.
func (c *Timed) At(t tftime.Time) (transform.TransformStamped, error) {
	if len(c.samples) == 0 {
		return transform.TransformStamped{}, fmt.Errorf("%w: cache is empty", ErrLookupInPast)
	}
	if t.IsZero() {
		return c.samples[0], nil
	}

	i := c.search(t)
	switch {
	case i == len(c.samples):
		return transform.TransformStamped{}, fmt.Errorf("%w: %v < oldest %v",
			ErrLookupInPast, t, c.samples[len(c.samples)-1].Stamp)
	case c.samples[i].Stamp.Equal(t):
		return c.samples[i], nil
	case i == 0:
		return transform.TransformStamped{}, fmt.Errorf("%w: %v > newest %v",
			ErrLookupInFuture, t, c.samples[0].Stamp)
	}

	older, younger := c.samples[i], c.samples[i-1]
	if older.Parent != younger.Parent {
		// Reparented inside the bracket: interpolating across two
		// different parents is meaningless, keep the older sample.
		return older, nil
	}

	total := younger.Stamp.Sub(older.Stamp).Nanoseconds()
	part := t.Sub(older.Stamp).Nanoseconds()
	w := float64(part) / float64(total)

	return transform.TransformStamped{
		Parent:    older.Parent,
		Child:     older.Child,
		Stamp:     t,
		Transform: transform.Interpolate(older.Transform, younger.Transform, w),
	}, nil
}

// Latest reports the newest stamp and its parent frame.
func (c *Timed) Latest() (tftime.Time, string, bool) {
	if len(c.samples) == 0 {
		return tftime.Time{}, "", false
	}
	return c.samples[0].Stamp, c.samples[0].Parent, true
}

// Parent reports the parent frame in effect at t: the parent of the
// older side of the bracket, matching the interpolation rule.
func (c *Timed) Parent(t tftime.Time) (string, bool) {
	ts, err := c.At(t)
	if err != nil {
		return "", false
	}
	return ts.Parent, true
}

// Remove drops the sample stored at exactly stamp.
func (c *Timed) Remove(stamp tftime.Time) bool {
	i := c.search(stamp)
	if i == len(c.samples) || !c.samples[i].Stamp.Equal(stamp) {
		return false
	}
	c.samples = append(c.samples[:i], c.samples[i+1:]...)
	return true
}
