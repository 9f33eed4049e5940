package buffer

import (
	"github.com/iw2rmb/fieldedit/bounds"
	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

type Options struct {
	Placeholder string
}

type selectionState struct {
	anchor int
	end    int
}

// Buffer is the control state: text, caret/selection, editing flag.
type Buffer struct {
	clusters    []string
	version     uint64
	textVersion uint64

	sel     selectionState
	editing bool

	placeholder string
	delegate    Delegate
}

func New(text string, opt Options) *Buffer {
	b := &Buffer{
		clusters:    grapheme.Split(text),
		placeholder: opt.Placeholder,
	}
	n := len(b.clusters)
	b.sel = selectionState{anchor: n, end: n}
	return b
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the text length in grapheme clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

// Clusters returns a copy of the text split into grapheme clusters.
func (b *Buffer) Clusters() []string { return append([]string(nil), b.clusters...) }

// Version increments on every observable change (text, caret, selection,
// editing state, placeholder).
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// SetText replaces the whole text programmatically and moves the caret to the
// end. The delegate is not consulted.
func (b *Buffer) SetText(text string) {
	changed := text != b.Text()
	n := len(b.clusters)
	if changed {
		n = grapheme.Count(text)
	}
	caret := selectionState{anchor: n, end: n}
	if !changed && b.sel == caret {
		return
	}
	if changed {
		b.clusters = grapheme.Split(text)
		b.textVersion++
	}
	b.sel = caret
	b.version++
}

func (b *Buffer) Cursor() int { return b.sel.end }

func (b *Buffer) SetCursor(i int) {
	i = bounds.Clamp(i, 0, len(b.clusters))
	b.setSel(selectionState{anchor: i, end: i})
}

// Selection returns the normalized selection; an empty range is the caret.
func (b *Buffer) Selection() Range {
	return NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
}

// SelectionRaw returns anchor/end without normalization, preserving the
// selection direction (the caret sits at End).
func (b *Buffer) SelectionRaw() Range {
	return Range{Start: b.sel.anchor, End: b.sel.end}
}

func (b *Buffer) HasSelection() bool { return b.sel.anchor != b.sel.end }

// SetSelection clamps r to the text and selects it. The caret is placed at
// r.End, so a reversed range keeps its direction.
func (b *Buffer) SetSelection(r Range) {
	n := len(b.clusters)
	b.setSel(selectionState{
		anchor: bounds.Clamp(r.Start, 0, n),
		end:    bounds.Clamp(r.End, 0, n),
	})
}

func (b *Buffer) SelectAll() {
	b.setSel(selectionState{anchor: 0, end: len(b.clusters)})
}

func (b *Buffer) ClearSelection() {
	b.setSel(selectionState{anchor: b.sel.end, end: b.sel.end})
}

// SelectedText returns the text inside the selection, or "".
func (b *Buffer) SelectedText() string {
	r := b.Selection()
	if r.IsEmpty() {
		return ""
	}
	return grapheme.Join(b.clusters[r.Start:r.End])
}

func (b *Buffer) setSel(next selectionState) {
	if next == b.sel {
		return
	}
	b.sel = next
	b.version++
}

// SetDelegate installs d as the edit interceptor; nil removes it.
func (b *Buffer) SetDelegate(d Delegate) { b.delegate = d }

func (b *Buffer) Delegate() Delegate { return b.delegate }

func (b *Buffer) Placeholder() string { return b.placeholder }

func (b *Buffer) SetPlaceholder(s string) {
	if s == b.placeholder {
		return
	}
	b.placeholder = s
	b.version++
}

// IsEditing reports whether the control has focus.
func (b *Buffer) IsEditing() bool { return b.editing }

// BeginEditing marks the control focused and notifies the delegate.
func (b *Buffer) BeginEditing() {
	if b.editing {
		return
	}
	b.editing = true
	b.version++
	if b.delegate != nil {
		b.delegate.DidBeginEditing()
	}
}

// EndEditing marks the control unfocused and notifies the delegate.
func (b *Buffer) EndEditing() {
	if !b.editing {
		return
	}
	b.editing = false
	b.version++
	if b.delegate != nil {
		b.delegate.DidEndEditing()
	}
}
