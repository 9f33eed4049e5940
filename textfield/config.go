package textfield

import "github.com/iw2rmb/fieldedit/buffer"

// Config configures the field Model.
type Config struct {
	// Buffer to render and edit. When nil a new buffer is created from Text
	// and Placeholder.
	Buffer      *buffer.Buffer
	Text        string
	Placeholder string

	// Prompt is rendered before the text.
	Prompt string

	// Width is the number of terminal cells available for the text,
	// including the trailing caret cell. Zero means unlimited.
	Width int

	// Secure renders every grapheme as EchoMask (default '•') and disables
	// copy/cut.
	Secure   bool
	EchoMask rune

	ReadOnly bool

	Style  Style
	KeyMap KeyMap // zero value means DefaultKeyMap()

	// Clipboard is optional; when nil copy/cut/paste keys do nothing.
	Clipboard Clipboard
}
