package form

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines form navigation. Editing keys belong to textfield.
type KeyMap struct {
	Next, Prev key.Binding
	Cancel     key.Binding
	Submit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "undo field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / submit")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Next.Keys()) == 0 && len(k.Submit.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Cancel, k.Submit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
