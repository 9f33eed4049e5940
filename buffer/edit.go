package buffer

import "github.com/iw2rmb/fieldedit/internal/grapheme"

// ReplaceRange proposes replacing r with text.
//
// The delegate (if any) is asked first. When it allows the edit the buffer
// applies it, places the caret after the inserted text and reports true.
// A vetoed edit reports false; the delegate may have changed the buffer
// itself in the meantime.
func (b *Buffer) ReplaceRange(r Range, text string) bool {
	r = ClampRange(r, len(b.clusters))
	if r.IsEmpty() && text == "" {
		return false
	}
	if b.delegate != nil && !b.delegate.ShouldChangeText(r, text) {
		return false
	}
	b.applyReplace(r, text)
	return true
}

func (b *Buffer) applyReplace(r Range, text string) {
	prev := b.Text()
	next, caret := grapheme.Replace(prev, r.Start, r.End, text)
	if next != prev {
		b.clusters = grapheme.Split(next)
		b.textVersion++
	}
	b.sel = selectionState{anchor: caret, end: caret}
	b.version++
}

// InsertText inserts text at the caret, or replaces the active selection.
func (b *Buffer) InsertText(s string) bool {
	r := b.Selection()
	if s == "" && r.IsEmpty() {
		return false
	}
	return b.ReplaceRange(r, s)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() bool {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	c := b.sel.end
	if c == 0 {
		return false
	}
	return b.ReplaceRange(Range{Start: c - 1, End: c}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() bool {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	c := b.sel.end
	if c == len(b.clusters) {
		return false
	}
	return b.ReplaceRange(Range{Start: c, End: c + 1}, "")
}

// DeleteWordBackward deletes from the previous word boundary to the caret.
func (b *Buffer) DeleteWordBackward() bool {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	c := b.sel.end
	start := prevWordBoundary(b.clusters, c)
	if start == c {
		return false
	}
	return b.ReplaceRange(Range{Start: start, End: c}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() bool {
	r := b.Selection()
	if r.IsEmpty() {
		return false
	}
	return b.ReplaceRange(r, "")
}
