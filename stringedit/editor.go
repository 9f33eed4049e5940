package stringedit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iw2rmb/fieldedit/buffer"
	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// state is the value and its logical text; both change together.
type state[V any] struct {
	value   V
	logical string
}

// Editor binds a Control to a value of type V.
//
// An Editor is not safe for concurrent use; all calls must come from the
// goroutine that delivers the control's events.
type Editor[V any] struct {
	behavior Behavior[V]
	equal    func(a, b V) bool
	opts     options
	log      *zap.Logger

	placeholder string
	control     Control
	state       state[V]

	original    V
	hasOriginal bool

	onEdited func(V)

	// writing is set while an accepted edit is written back. SetValue calls
	// made meanwhile are queued in pending.
	writing bool
	pending []V
}

// New returns an editor for behavior holding the sanitized initial value.
func New[V any](behavior Behavior[V], initial V, equal func(a, b V) bool, opts ...Option) *Editor[V] {
	return newEditor(behavior, initial, equal, buildOptions(opts))
}

func newEditor[V any](behavior Behavior[V], initial V, equal func(a, b V) bool, o options) *Editor[V] {
	e := &Editor[V]{
		behavior: behavior,
		equal:    equal,
		opts:     o,
		log:      o.logger,
	}
	if o.placeholder != nil {
		e.placeholder = *o.placeholder
	} else {
		e.placeholder = e.DisplayText(behavior.EmptyValue())
	}
	e.state.value = behavior.EmptyValue()
	e.setValue(initial)
	return e
}

// Attach binds the editor to c, installs it as c's delegate and shows the
// current value.
func (e *Editor[V]) Attach(c Control) error {
	if e.control != nil {
		return ErrAlreadyAttached
	}
	e.control = c
	c.SetDelegate(e)
	c.SetPlaceholder(e.placeholder)
	e.refresh()
	return nil
}

// Detach releases the control. It is a no-op when not attached.
func (e *Editor[V]) Detach() {
	if e.control == nil {
		return
	}
	e.control.SetDelegate(nil)
	e.control = nil
}

func (e *Editor[V]) Attached() bool { return e.control != nil }

// SetValue sanitizes v, stores it and refreshes the control. The control is
// left alone while it is being edited and the value did not change.
func (e *Editor[V]) SetValue(v V) {
	if e.writing {
		e.pending = append(e.pending, v)
		return
	}
	e.setValue(v)
}

func (e *Editor[V]) setValue(v V) {
	old := e.state.value
	sanitized := e.behavior.Sanitize(v)
	if !e.equal(sanitized, v) {
		e.log.Debug("value sanitized", zap.Any("input", v), zap.Any("value", sanitized))
	}
	if !e.behavior.ShouldAllowValue(sanitized) {
		e.log.Warn("sanitize returned a disallowed value", zap.Any("value", sanitized))
	}
	e.state.value = sanitized
	if e.control != nil && e.control.IsEditing() && e.equal(old, sanitized) {
		return
	}
	e.refresh()
}

func (e *Editor[V]) Value() V { return e.state.value }

// ValidatedValue returns the value if it passes Validate, else the empty
// value.
func (e *Editor[V]) ValidatedValue() V {
	if e.Validate(e.state.value) != nil {
		return e.behavior.EmptyValue()
	}
	return e.state.value
}

func (e *Editor[V]) Validate(v V) error {
	if e.opts.required && e.equal(v, e.behavior.EmptyValue()) {
		return ErrRequired
	}
	return e.behavior.Validate(v)
}

// Err validates the current value.
func (e *Editor[V]) Err() error { return e.Validate(e.state.value) }

func (e *Editor[V]) EmptyValue() V { return e.behavior.EmptyValue() }

func (e *Editor[V]) IsEmpty() bool { return e.equal(e.state.value, e.behavior.EmptyValue()) }

// LogicalText is the logical form of the control's text.
func (e *Editor[V]) LogicalText() string { return e.state.logical }

// DisplayText returns the canonical display text of v.
func (e *Editor[V]) DisplayText(v V) string {
	logical := e.behavior.CanonicalLogical(v)
	display, _ := e.behavior.LogicalToDisplay(logical, buffer.Caret(grapheme.Count(logical)))
	return display
}

func (e *Editor[V]) Placeholder() string { return e.placeholder }

func (e *Editor[V]) Secure() bool { return e.opts.secure }

// OnValueEdited registers fn to run after every accepted interactive edit and
// after Cancel. Programmatic SetValue does not call it.
func (e *Editor[V]) OnValueEdited(fn func(V)) { e.onEdited = fn }

// refresh re-derives the logical and display text from the value. The empty
// value shows as an empty field.
func (e *Editor[V]) refresh() {
	logical, display := "", ""
	if !e.equal(e.state.value, e.behavior.EmptyValue()) {
		logical = e.behavior.CanonicalLogical(e.state.value)
		display, _ = e.behavior.LogicalToDisplay(logical, buffer.Caret(grapheme.Count(logical)))
	}
	e.state.logical = logical
	if e.control != nil {
		e.control.SetText(display)
	}
}

// notify runs the edited callback with SetValue calls deferred until it
// returns.
func (e *Editor[V]) notify() {
	e.writing = true
	if e.onEdited != nil {
		e.onEdited(e.state.value)
	}
	e.writing = false
	for len(e.pending) > 0 {
		v := e.pending[0]
		e.pending = e.pending[1:]
		e.setValue(v)
	}
	e.pending = nil
}

func (e *Editor[V]) AnyValue() any { return e.state.value }

// SetAnyValue calls SetValue when v has type V.
func (e *Editor[V]) SetAnyValue(v any) error {
	tv, ok := v.(V)
	if !ok {
		var zero V
		return fmt.Errorf("stringedit: value of type %T, want %T", v, zero)
	}
	e.SetValue(tv)
	return nil
}

func (e *Editor[V]) OnAnyValueEdited(fn func(any)) {
	if fn == nil {
		e.onEdited = nil
		return
	}
	e.onEdited = func(v V) { fn(v) }
}
