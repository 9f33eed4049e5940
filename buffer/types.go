package buffer

import "github.com/iw2rmb/fieldedit/bounds"

// Range is a half-open selection [Start, End) in grapheme indices.
type Range struct {
	Start int
	End   int
}

// Caret returns the empty range at i.
func Caret(i int) Range { return Range{Start: i, End: i} }

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// ClampRange clamps both ends of r into [0, n] and normalizes it.
func ClampRange(r Range, n int) Range {
	if n < 0 {
		n = 0
	}
	return NormalizeRange(Range{
		Start: bounds.Clamp(r.Start, 0, n),
		End:   bounds.Clamp(r.End, 0, n),
	})
}

// Delegate intercepts proposed edits and observes editing state.
type Delegate interface {
	// ShouldChangeText is called before the buffer applies a proposed
	// replacement of r with replacement. Returning false vetoes the raw edit.
	ShouldChangeText(r Range, replacement string) bool
	DidBeginEditing()
	DidEndEditing()
}
