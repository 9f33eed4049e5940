// Package buffer implements the state of a single-line text-input control.
//
// Coordinates are 0-based grapheme-cluster indices into the text.
// Ranges are half-open selections: [Start, End). A caret is an empty range.
//
// Edits proposed through ReplaceRange (and the key-level helpers built on it)
// are offered to the installed Delegate first; the delegate may veto the raw
// edit and perform its own transformation through SetText/SetSelection.
package buffer
