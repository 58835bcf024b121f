// Package tftime: stamp and span value types with saturating arithmetic.
//
// This file declares Time and Duration, their constructors, ordering
// predicates, and the conversions to and from the standard library.
package tftime

import (
	"fmt"
	"math"
	"time"
)

// nanosPerSecond is the carry base for the (Sec, NSec) representation.
const nanosPerSecond = 1_000_000_000

// Time is a wall-clock stamp with nanosecond resolution.
//
// The zero value is the Zero sentinel: lookups interpret it as
// "the latest available sample", never as an actual instant.
type Time struct {
	// Sec counts whole seconds since the epoch of the producing clock.
	Sec uint32

	// NSec counts nanoseconds within the current second, always < 1e9.
	NSec uint32
}

// Duration is a non-negative span between two Times.
type Duration struct {
	Sec  uint32
	NSec uint32
}

// Zero is the sentinel stamp meaning "latest available".
var Zero = Time{}

// NewTime builds a normalized Time, carrying nanosecond overflow into
// seconds and clamping at the representable maximum.
func NewTime(sec, nsec uint64) Time {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond
	if sec > math.MaxUint32 {
		return Time{Sec: math.MaxUint32, NSec: nanosPerSecond - 1}
	}
	return Time{Sec: uint32(sec), NSec: uint32(nsec)}
}

// FromSeconds converts a floating-point second count into a Time.
// Negative inputs clamp to the Zero instant.
func FromSeconds(s float64) Time {
	if s <= 0 || math.IsNaN(s) {
		return Time{}
	}
	sec := math.Floor(s)
	return NewTime(uint64(sec), uint64(math.Round((s-sec)*nanosPerSecond)))
}

// Seconds returns the stamp as a floating-point second count.
func (t Time) Seconds() float64 {
	return float64(t.Sec) + float64(t.NSec)/nanosPerSecond
}

// Nanos returns the stamp as a total nanosecond count.
func (t Time) Nanos() int64 {
	return int64(t.Sec)*nanosPerSecond + int64(t.NSec)
}

// IsZero reports whether t is the "latest available" sentinel.
func (t Time) IsZero() bool { return t.Sec == 0 && t.NSec == 0 }

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool {
	if t.Sec != u.Sec {
		return t.Sec < u.Sec
	}
	return t.NSec < u.NSec
}

// After reports whether t is strictly later than u.
func (t Time) After(u Time) bool { return u.Before(t) }

// Equal reports whether t and u denote the same instant.
func (t Time) Equal(u Time) bool { return t == u }

// Compare orders two stamps: -1 if t < u, 0 if equal, +1 if t > u.
func (t Time) Compare(u Time) int {
	switch {
	case t.Before(u):
		return -1
	case u.Before(t):
		return 1
	default:
		return 0
	}
}

// Add advances t by d, saturating at the maximum representable Time.
func (t Time) Add(d Duration) Time {
	return NewTime(uint64(t.Sec)+uint64(d.Sec), uint64(t.NSec)+uint64(d.NSec))
}

// Sub returns t-u, saturating at zero when u is later than t.
func (t Time) Sub(u Time) Duration {
	if !u.Before(t) {
		return Duration{}
	}
	n := uint64(t.Nanos() - u.Nanos())
	return NewDuration(n/nanosPerSecond, n%nanosPerSecond)
}

// Diff returns the absolute difference between t and u.
func (t Time) Diff(u Time) Duration {
	if t.Before(u) {
		return u.Sub(t)
	}
	return t.Sub(u)
}

// String renders the stamp as "sec.nsec" for diagnostics.
func (t Time) String() string {
	return fmt.Sprintf("%d.%09d", t.Sec, t.NSec)
}

// NewDuration builds a normalized Duration, carrying overflow and
// clamping at the representable maximum.
func NewDuration(sec, nsec uint64) Duration {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond
	if sec > math.MaxUint32 {
		return Duration{Sec: math.MaxUint32, NSec: nanosPerSecond - 1}
	}
	return Duration{Sec: uint32(sec), NSec: uint32(nsec)}
}

// DurationFromSeconds converts a floating-point second count into a
// Duration. Negative inputs clamp to zero.
func DurationFromSeconds(s float64) Duration {
	t := FromSeconds(s)
	return Duration{Sec: t.Sec, NSec: t.NSec}
}

// DurationFromStd converts a time.Duration. Negative inputs clamp to zero.
func DurationFromStd(d time.Duration) Duration {
	if d <= 0 {
		return Duration{}
	}
	return NewDuration(uint64(d/time.Second), uint64(d%time.Second))
}

// Std converts the Duration into a time.Duration. The uint32 second
// range (~136 years) lies inside the time.Duration horizon (~292 years),
// so the conversion never overflows.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Nanoseconds())
}

// Nanoseconds returns the span as a total nanosecond count.
func (d Duration) Nanoseconds() int64 {
	return int64(d.Sec)*nanosPerSecond + int64(d.NSec)
}

// Seconds returns the span as a floating-point second count.
func (d Duration) Seconds() float64 {
	return float64(d.Sec) + float64(d.NSec)/nanosPerSecond
}

// IsZero reports whether d is the empty span.
func (d Duration) IsZero() bool { return d.Sec == 0 && d.NSec == 0 }

// Less reports whether d is strictly shorter than e.
func (d Duration) Less(e Duration) bool {
	if d.Sec != e.Sec {
		return d.Sec < e.Sec
	}
	return d.NSec < e.NSec
}

// String renders the span as "sec.nsec" for diagnostics.
func (d Duration) String() string {
	return fmt.Sprintf("%d.%09d", d.Sec, d.NSec)
}
