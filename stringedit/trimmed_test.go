package stringedit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

func TestTrimmedStringEditor_SanitizeTruncatesAndRetrims(t *testing.T) {
	e := NewTrimmedStringEditor(5)
	e.SetValue("  hello world  ")
	require.Equal(t, "hello", e.Value())

	e.SetValue("abcd efgh")
	require.Equal(t, "abcd", e.Value(), "cut exposes a trailing space")

	e.SetValue("   ")
	require.Equal(t, "", e.Value())
	require.True(t, e.IsEmpty())
}

func TestTrimmedStringEditor_LimitBlocksTyping(t *testing.T) {
	e := NewTrimmedStringEditor(5)
	b := attachEditing(t, e)

	typeText(b, "hello!")
	require.Equal(t, "hello", b.Text())

	typeText(b, "   ")
	require.Equal(t, "hello   ", b.Text(), "trailing whitespace does not count")
	require.Equal(t, "hello", e.Value())
}

func TestTrimmedStringEditor_CountsGraphemes(t *testing.T) {
	e := NewTrimmedStringEditor(2)
	b := attachEditing(t, e)
	typeText(b, "éé")
	require.Equal(t, "éé", e.Value())
	typeText(b, "x")
	require.Equal(t, "éé", b.Text())
}

func TestNameEditor(t *testing.T) {
	e := NewNameEditor()
	b := attachEditing(t, e)

	typeText(b, "Ann")
	typeText(b, "\U0001F600")
	require.Equal(t, "Ann", b.Text())

	e.SetValue("Ann\U0001F600 Lee❤️")
	require.Equal(t, "Ann Lee", e.Value())

	e.SetValue(strings.Repeat("n", 30))
	require.Equal(t, MaxNameLength, grapheme.Count(e.Value()))
}

func TestNameEditor_KeepsJoinedScripts(t *testing.T) {
	e := NewNameEditor()
	e.SetValue("क्\u200dष")
	require.Equal(t, "क्\u200dष", e.Value())

	e.SetValue("a\u20dd")
	require.Equal(t, "a\u20dd", e.Value())

	// Trimming the space leaves a lone joiner, which is stripped.
	e.SetValue(" \u200d")
	require.Equal(t, "", e.Value())

	typed := NewNameEditor()
	b := attachEditing(t, typed)
	typeText(b, "क्\u200dष")
	require.Equal(t, "क्\u200dष", b.Text())
	require.Equal(t, "क्\u200dष", typed.Value())
}

func TestIsEmoji(t *testing.T) {
	emoji := []string{"\U0001F600", "❤️", "\U0001F44D\U0001F3FD", "⌚", "#️⃣", "\U0001F468‍\U0001F469‍\U0001F467"}
	plain := []string{"a", "é", "1", "©", "日", " ", "क्\u200d", "a\u20dd"}
	for _, s := range emoji {
		assert.True(t, isEmoji(s), "%q", s)
	}
	for _, s := range plain {
		assert.False(t, isEmoji(s), "%q", s)
	}
}

func TestProperty_TrimmedSanitizeIsAllowed(t *testing.T) {
	b := &trimmedBehavior{limit: 8, noEmoji: true}
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.StringN(0, 20, -1).Draw(rt, "v")
		s := b.Sanitize(v)
		if !b.ShouldAllowValue(s) {
			rt.Fatalf("Sanitize(%q) = %q is not allowed", v, s)
		}
		if s != strings.TrimSpace(s) {
			rt.Fatalf("Sanitize(%q) = %q is not trimmed", v, s)
		}
		if again := b.Sanitize(s); again != s {
			rt.Fatalf("Sanitize not idempotent: %q then %q", s, again)
		}
	})
}
