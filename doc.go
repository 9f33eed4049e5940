// Package fieldedit holds the module version.
//
// The editing engine lives in the subpackages:
//
//   - buffer: single-line text, caret and selection with a delegate veto hook
//   - textfield: a Bubble Tea input rendering a buffer
//   - stringedit: typed editors (numbers, names, lists) that drive a buffer
//   - form: YAML-defined forms built from stringedit editors
//   - bounds: clamping and interval helpers
package fieldedit
