// Package textfield provides a single-line Bubble Tea text field backed by the
// buffer package.
//
// The field turns key presses, bracketed pastes and clipboard pastes into
// proposed edits on its buffer. Whatever delegate is installed on the buffer
// decides what actually happens to the text; the field only renders the
// result (prompt, placeholder, selection, caret and horizontal scrolling).
package textfield
