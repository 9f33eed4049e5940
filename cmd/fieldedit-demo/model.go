package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fieldedit/form"
)

var quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))

// model owns the form and records its values once submitted.
type model struct {
	form   *form.Form
	values map[string]any
}

func newModel(f *form.Form) model { return model{form: f} }

func (m model) Init() tea.Cmd { return m.form.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// ctrl+c is copy inside fields.
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	case form.SubmittedMsg:
		m.values = msg.Values
		return m, tea.Quit
	}
	return m, m.form.Update(msg)
}

func (m model) View() string { return m.form.View() }
