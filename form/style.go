package form

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fieldedit/textfield"
)

type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	FocusedLabel   lipgloss.Style
	Error          lipgloss.Style
	Button         lipgloss.Style
	DisabledButton lipgloss.Style
	Field          textfield.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:          lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FocusedLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 2),
		DisabledButton: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")).Padding(0, 2),
		Field:          textfield.DefaultStyle(),
	}
}
