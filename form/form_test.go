package form

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/fieldedit/stringedit"
	"github.com/iw2rmb/fieldedit/textfield"
)

func buildRentForm(t *testing.T) *Form {
	t.Helper()
	spec, err := Load(filepath.Join("testdata", "rent.yaml"))
	require.NoError(t, err)
	plain := Styles{Field: textfield.Style{}}
	f, err := Build(spec, Options{Styles: &plain})
	require.NoError(t, err)
	return f
}

func typeKeys(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(f *Form, types ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, kt := range types {
		cmd = f.Update(tea.KeyMsg{Type: kt})
	}
	return cmd
}

func TestForm_GateAndSubmit(t *testing.T) {
	f := buildRentForm(t)
	require.Equal(t, "rent", f.Focused())
	require.False(t, f.CanSubmit(), "rent gates submit")
	require.Nil(t, f.Submit())

	typeKeys(f, "1200")
	require.True(t, f.CanSubmit())
	require.Contains(t, f.View(), "> $1,200")

	press(f, tea.KeyTab)
	require.Equal(t, "name", f.Focused())
	require.Contains(t, f.View(), "  $1,200")

	cmd := press(f, tea.KeyEnter, tea.KeyEnter, tea.KeyEnter)
	require.Nil(t, cmd, "name is required")
	require.Equal(t, "name", f.Focused())
	require.ErrorIs(t, f.Err(), stringedit.ErrRequired)
	require.Contains(t, f.View(), "value is required")

	typeKeys(f, "Ada")
	require.NoError(t, f.Err(), "editing clears the field error")

	cmd = f.Submit()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SubmittedMsg)
	require.True(t, ok)
	require.True(t, decimal.NewFromInt(1200).Equal(msg.Values["rent"].(decimal.Decimal)))
	require.Equal(t, "Ada", msg.Values["name"])
	require.True(t, decimal.RequireFromString("4.25").Equal(msg.Values["rate"].(decimal.Decimal)))
	require.Equal(t, []string{"pets", "parking", "storage"}, msg.Values["tags"])
}

func TestForm_CancelRestoresFieldValue(t *testing.T) {
	f := buildRentForm(t)
	typeKeys(f, "1200")
	press(f, tea.KeyTab, tea.KeyShiftTab)
	require.Equal(t, "rent", f.Focused())

	typeKeys(f, "5")
	require.True(t, decimal.NewFromInt(12005).Equal(f.Editor("rent").AnyValue().(decimal.Decimal)))

	press(f, tea.KeyEscape)
	require.True(t, decimal.NewFromInt(1200).Equal(f.Editor("rent").AnyValue().(decimal.Decimal)))
	require.Contains(t, f.View(), "> $1,200")
}

func TestForm_ClearingGateDisablesSubmit(t *testing.T) {
	f := buildRentForm(t)
	typeKeys(f, "12")
	require.True(t, f.CanSubmit())

	press(f, tea.KeyBackspace, tea.KeyBackspace)
	require.True(t, f.Editor("rent").IsEmpty())
	require.False(t, f.CanSubmit())
}

func TestForm_FocusWraps(t *testing.T) {
	f := buildRentForm(t)
	press(f, tea.KeyShiftTab)
	require.Equal(t, "tags", f.Focused())
	press(f, tea.KeyTab)
	require.Equal(t, "rent", f.Focused())
}

func TestForm_BlurShowsErrorAndCanonicalText(t *testing.T) {
	f := buildRentForm(t)
	press(f, tea.KeyTab)
	typeKeys(f, "  Ada  ")
	press(f, tea.KeyTab)
	require.Equal(t, "Ada", f.Editor("name").AnyValue())

	view := f.View()
	require.Contains(t, view, "  Ada\n")
	require.Equal(t, 1, strings.Count(view, "value is required"), "only the skipped rent field")

	f.Update(tea.WindowSizeMsg{Width: 6, Height: 10})
	press(f, tea.KeyShiftTab, tea.KeyShiftTab)
	require.Equal(t, "rent", f.Focused())
	press(f, tea.KeyTab)
	require.ErrorIs(t, f.Err(), stringedit.ErrRequired, "rent left empty")
}

func TestBuild_RejectsInvalidSpec(t *testing.T) {
	_, err := Build(&Spec{}, Options{})
	require.ErrorIs(t, err, ErrNoFields)
}
