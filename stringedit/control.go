package stringedit

import "github.com/iw2rmb/fieldedit/buffer"

// Control is the text surface an Editor drives. *buffer.Buffer implements it.
type Control interface {
	Text() string
	SetText(text string)
	Selection() buffer.Range
	SetSelection(r buffer.Range)
	IsEditing() bool
	SetDelegate(d buffer.Delegate)
	SetPlaceholder(s string)
}

var _ Control = (*buffer.Buffer)(nil)

// AnyEditor is the value-type independent view of an Editor.
type AnyEditor interface {
	Attach(c Control) error
	Detach()
	AnyValue() any
	SetAnyValue(v any) error
	IsEmpty() bool
	Err() error
	Cancel()
	Secure() bool
	Placeholder() string
	OnAnyValueEdited(fn func(any))
}

var (
	_ AnyEditor       = (*Editor[string])(nil)
	_ buffer.Delegate = (*Editor[string])(nil)
)
