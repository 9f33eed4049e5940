package textfield

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/fieldedit/buffer"
)

type focusDelegate struct {
	begins, ends int
	allow        bool
}

func (d *focusDelegate) ShouldChangeText(buffer.Range, string) bool { return d.allow }
func (d *focusDelegate) DidBeginEditing()                          { d.begins++ }
func (d *focusDelegate) DidEndEditing()                            { d.ends++ }

// bracketStyle renders the caret as [x] and selections as {x} so views can be
// asserted without terminal escapes.
func bracketStyle() Style {
	return Style{
		Cursor:    lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
		Selection: lipgloss.NewStyle().Transform(func(s string) string { return "{" + s + "}" }),
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{Text: "abc", Placeholder: "name"})
	require.NotNil(t, m.Buffer())
	require.Equal(t, "abc", m.Buffer().Text())
	require.Equal(t, "name", m.Buffer().Placeholder())
	require.Equal(t, 3, m.Buffer().Cursor())
	require.False(t, m.Focused())
	require.NotEmpty(t, m.cfg.KeyMap.Left.Keys())
	require.Equal(t, '•', m.cfg.EchoMask)
}

func TestNew_UsesGivenBuffer(t *testing.T) {
	b := buffer.New("shared", buffer.Options{})
	m := New(Config{Buffer: b, Text: "ignored"})
	require.Same(t, b, m.Buffer())
	require.Equal(t, "shared", m.Buffer().Text())
}

func TestFocusBlur_NotifiesDelegateOnce(t *testing.T) {
	d := &focusDelegate{allow: true}
	m := New(Config{Text: "x"})
	m.Buffer().SetDelegate(d)

	m = m.Focus()
	m = m.Focus()
	require.True(t, m.Focused())
	require.True(t, m.Buffer().IsEditing())
	require.Equal(t, 1, d.begins)

	m = m.Blur()
	m = m.Blur()
	require.False(t, m.Focused())
	require.False(t, m.Buffer().IsEditing())
	require.Equal(t, 1, d.ends)
}

func TestSetWidth_NegativeClampsToZero(t *testing.T) {
	m := New(Config{}).SetWidth(-4)
	require.Equal(t, 0, m.Width())
}
