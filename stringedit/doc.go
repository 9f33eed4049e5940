// Package stringedit binds a single-line text control to a typed value.
//
// An Editor keeps three forms of the same content in sync:
//
//   - the display text shown by the control ("$5,000.70"),
//   - the logical text used for parsing ("5000.70"),
//   - the value itself (decimal 5000.7).
//
// The editor installs itself as the control's delegate. Every proposed edit is
// translated to logical form, applied there, checked by the Behavior and, when
// accepted, written back to the control as display text with the selection
// mapped across. The raw edit proposed by the control is always vetoed.
//
// Concrete editors are Behavior implementations. Embed Defaults to inherit the
// optional hooks and implement EmptyValue, ValueFromLogical and
// CanonicalLogical.
package stringedit
