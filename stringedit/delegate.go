package stringedit

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/fieldedit/buffer"
	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// ShouldChangeText performs the proposed edit in logical form and writes the
// result back to the control. It always vetoes the control's own edit.
func (e *Editor[V]) ShouldChangeText(r buffer.Range, replacement string) bool {
	if e.control == nil || e.writing {
		return false
	}

	display := e.control.Text()
	r = buffer.ClampRange(r, grapheme.Count(display))
	logical, sel := e.behavior.DisplayToLogical(display, r)
	edit := e.behavior.LogicalEditFromDisplayEdit(replacement)

	next, nextSel, ok := e.behavior.PerformLogicalEdit(edit, logical, sel)
	if !ok {
		e.log.Debug("edit rejected", zap.String("logical", logical), zap.String("edit", edit))
		return false
	}
	if !e.behavior.ShouldAllowLogicalText(next) {
		e.log.Debug("logical text not allowed", zap.String("logical", next))
		return false
	}
	v, err := e.behavior.ValueFromLogical(next)
	if err != nil {
		e.log.DPanic("allowed logical text does not parse", zap.String("logical", next), zap.Error(err))
		return false
	}
	if !e.behavior.ShouldAllowValue(v) {
		e.log.Debug("value not allowed", zap.String("logical", next), zap.Any("value", v))
		return false
	}

	nextDisplay, displaySel := "", buffer.Caret(0)
	if next != "" {
		nextDisplay, displaySel = e.behavior.LogicalToDisplay(next, nextSel)
	}

	e.writing = true
	e.control.SetText(nextDisplay)
	e.control.SetSelection(displaySel)
	e.state = state[V]{value: v, logical: next}
	e.writing = false
	e.notify()
	return false
}

// DidBeginEditing remembers the value to restore on Cancel.
func (e *Editor[V]) DidBeginEditing() {
	e.original = e.state.value
	e.hasOriginal = true
}

// DidEndEditing shows the canonical text of the value.
func (e *Editor[V]) DidEndEditing() {
	if e.opts.canonicalize {
		e.refresh()
	}
}

// Cancel restores the value from when editing began, or the empty value,
// and reports it through the edited callback.
func (e *Editor[V]) Cancel() {
	v := e.behavior.EmptyValue()
	if e.hasOriginal {
		v = e.original
	}
	e.state.value = v
	e.refresh()
	e.notify()
}
