// Package bounds provides clamping and range-mapping helpers used for
// validation bounds and index safety.
//
// Ranges are closed: both Lo and Hi are members.
package bounds

import "cmp"

// Clamp returns v constrained to [lo, hi].
//
// If hi < lo, lo wins.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// AtLeast returns v, or lo if v is smaller.
func AtLeast[T cmp.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}

// AtMost returns v, or hi if v is larger.
func AtMost[T cmp.Ordered](v, hi T) T {
	if v > hi {
		return hi
	}
	return v
}

// Range is a closed range over an ordered type.
type Range[T cmp.Ordered] struct {
	Lo T
	Hi T
}

// Valid reports whether Lo <= Hi.
func (r Range[T]) Valid() bool { return r.Lo <= r.Hi }

func (r Range[T]) Contains(v T) bool { return v >= r.Lo && v <= r.Hi }

func (r Range[T]) Clamp(v T) T { return Clamp(v, r.Lo, r.Hi) }

// Ordered is implemented by value types that compare themselves, such as
// decimal numbers.
type Ordered[T any] interface {
	Cmp(T) int
}

// Interval is a closed range over a self-comparing type.
type Interval[T Ordered[T]] struct {
	Lo T
	Hi T
}

func (r Interval[T]) Valid() bool { return r.Lo.Cmp(r.Hi) <= 0 }

func (r Interval[T]) Contains(v T) bool {
	return v.Cmp(r.Lo) >= 0 && v.Cmp(r.Hi) <= 0
}

// Clamp returns v constrained to the interval.
func (r Interval[T]) Clamp(v T) T {
	if v.Cmp(r.Hi) > 0 {
		v = r.Hi
	}
	if v.Cmp(r.Lo) < 0 {
		v = r.Lo
	}
	return v
}

// Signed is the set of built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Wrap maps v into [lo, hi] by wrapping around, so hi+1 becomes lo and lo-1
// becomes hi. It panics if hi < lo.
func Wrap[T Signed](v, lo, hi T) T {
	if hi < lo {
		panic("bounds: Wrap on empty range")
	}
	length := hi - lo + 1
	offset := (v - lo) % length
	if offset < 0 {
		offset += length
	}
	return offset + lo
}

// Float is the set of built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// LinearMap maps v from its relative position between from.Lo and from.Hi to
// the equivalent position between to.Lo and to.Hi.
//
// Either pair may be inverted (Hi < Lo), which inverts the relative position.
// If constrained is true the result is clamped to lie between to.Lo and to.Hi.
// A degenerate source (from.Lo == from.Hi) maps everything to to.Lo.
func LinearMap[T Float](v T, from, to [2]T, constrained bool) T {
	span := from[1] - from[0]
	if span == 0 {
		return to[0]
	}
	result := (v-from[0])*(to[1]-to[0])/span + to[0]
	if !constrained {
		return result
	}
	return Clamp(result, min(to[0], to[1]), max(to[0], to[1]))
}
