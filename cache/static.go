// Package cache: the Static variant — one timeless sample.
package cache

import (
	"fmt"

	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// Static holds exactly one sample whose stamp is ignored on lookup.
// Rigidly mounted sensors publish such edges once.
type Static struct {
	sample transform.TransformStamped
	filled bool
}

// NewStatic builds an empty static cache.
func NewStatic() *Static {
	return &Static{}
}

// Static reports the variant; always true.
func (c *Static) Static() bool { return true }

// Len reports 1 once a sample has been stored.
func (c *Static) Len() int {
	if c.filled {
		return 1
	}
	return 0
}

// Insert overwrites the stored sample. It never refuses.
func (c *Static) Insert(ts transform.TransformStamped) error {
	c.sample = ts
	c.filled = true
	return nil
}

// At returns the stored sample verbatim for any query time, including
// tftime.Zero. An empty cache refuses with ErrLookupInPast.
func (c *Static) At(tftime.Time) (transform.TransformStamped, error) {
	if !c.filled {
		return transform.TransformStamped{}, fmt.Errorf("%w: static edge has no sample", ErrLookupInPast)
	}
	return c.sample, nil
}

// Latest reports the stored sample's stamp and parent.
func (c *Static) Latest() (tftime.Time, string, bool) {
	if !c.filled {
		return tftime.Time{}, "", false
	}
	return c.sample.Stamp, c.sample.Parent, true
}

// Parent reports the stored sample's parent for any query time.
func (c *Static) Parent(tftime.Time) (string, bool) {
	if !c.filled {
		return "", false
	}
	return c.sample.Parent, true
}

// Remove clears the stored sample when the stamp matches.
func (c *Static) Remove(stamp tftime.Time) bool {
	if !c.filled || !c.sample.Stamp.Equal(stamp) {
		return false
	}
	c.sample = transform.TransformStamped{}
	c.filled = false
	return true
}
