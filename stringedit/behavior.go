package stringedit

import (
	"github.com/iw2rmb/fieldedit/buffer"
	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// Behavior describes one kind of editable value.
//
// During an interactive edit the editor calls, in order:
// DisplayToLogical, LogicalEditFromDisplayEdit, PerformLogicalEdit,
// ShouldAllowLogicalText, ValueFromLogical, ShouldAllowValue and
// LogicalToDisplay. Validate is never part of that path.
type Behavior[V any] interface {
	// EmptyValue is the value of an empty field.
	EmptyValue() V

	// ValueFromLogical parses logical text. It must succeed for "" and for
	// every text accepted by ShouldAllowLogicalText.
	ValueFromLogical(text string) (V, error)

	// CanonicalLogical returns the canonical logical text of v.
	CanonicalLogical(v V) string

	ShouldAllowLogicalText(text string) bool
	ShouldAllowValue(v V) bool

	// Sanitize maps any value to one accepted by ShouldAllowValue.
	Sanitize(v V) V

	// Validate reports commit-time problems. It never blocks typing.
	Validate(v V) error

	DisplayToLogical(display string, sel buffer.Range) (string, buffer.Range)
	LogicalToDisplay(logical string, sel buffer.Range) (string, buffer.Range)
	LogicalEditFromDisplayEdit(edit string) string

	// PerformLogicalEdit applies edit to sel within logical text. ok=false
	// rejects the edit.
	PerformLogicalEdit(edit, logical string, sel buffer.Range) (next string, nextSel buffer.Range, ok bool)
}

// Defaults implements the optional Behavior hooks: display equals logical
// text, every text and value is allowed and edits replace the selection.
type Defaults[V any] struct{}

func (Defaults[V]) ShouldAllowLogicalText(string) bool { return true }

func (Defaults[V]) ShouldAllowValue(V) bool { return true }

func (Defaults[V]) Sanitize(v V) V { return v }

func (Defaults[V]) Validate(V) error { return nil }

func (Defaults[V]) DisplayToLogical(display string, sel buffer.Range) (string, buffer.Range) {
	return display, sel
}

func (Defaults[V]) LogicalToDisplay(logical string, sel buffer.Range) (string, buffer.Range) {
	return logical, sel
}

func (Defaults[V]) LogicalEditFromDisplayEdit(edit string) string { return edit }

func (Defaults[V]) PerformLogicalEdit(edit, logical string, sel buffer.Range) (string, buffer.Range, bool) {
	next, caret := ReplaceRange(edit, logical, sel)
	return next, caret, true
}

// ReplaceRange replaces sel in text with edit and returns the caret placed
// after the inserted text, snapped to a grapheme boundary.
func ReplaceRange(edit, text string, sel buffer.Range) (string, buffer.Range) {
	sel = buffer.ClampRange(sel, grapheme.Count(text))
	next, caret := grapheme.Replace(text, sel.Start, sel.End, edit)
	return next, buffer.Caret(caret)
}
