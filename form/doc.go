// Package form builds interactive forms of typed fields from YAML definitions.
//
// Each field pairs a stringedit editor with a textfield. Focus moves with
// tab, esc cancels the focused field's edit and enter submits on the last
// field once every field validates.
package form
