package stringedit

import (
	"strings"

	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// MaxNameLength is the grapheme limit of NewNameEditor.
const MaxNameLength = 25

// NewTrimmedStringEditor edits a string whose value is the trimmed input;
// "" means no value. A positive charLimit bounds the value in graphemes.
func NewTrimmedStringEditor(charLimit int, opts ...Option) *Editor[string] {
	return New[string](&trimmedBehavior{limit: charLimit}, "", stringEqual, opts...)
}

// NewNameEditor is a trimmed string editor limited to MaxNameLength
// graphemes that rejects and strips emoji.
func NewNameEditor(opts ...Option) *Editor[string] {
	return New[string](&trimmedBehavior{limit: MaxNameLength, noEmoji: true}, "", stringEqual, opts...)
}

func stringEqual(a, b string) bool { return a == b }

type trimmedBehavior struct {
	Defaults[string]
	limit   int
	noEmoji bool
}

func (*trimmedBehavior) EmptyValue() string { return "" }

func (*trimmedBehavior) ValueFromLogical(text string) (string, error) {
	return strings.TrimSpace(text), nil
}

func (*trimmedBehavior) CanonicalLogical(v string) string { return v }

func (b *trimmedBehavior) ShouldAllowValue(v string) bool {
	if b.limit > 0 && grapheme.Count(v) > b.limit {
		return false
	}
	return !b.noEmoji || !containsEmoji(v)
}

// Sanitize strips emoji, trims and truncates to the limit. Trimming can
// leave a joiner on its own as a new cluster and truncating can expose
// whitespace, so it repeats until nothing changes.
func (b *trimmedBehavior) Sanitize(v string) string {
	for {
		prev := v
		if b.noEmoji {
			v = stripEmoji(v)
		}
		v = strings.TrimSpace(v)
		if b.limit > 0 && grapheme.Count(v) > b.limit {
			v = strings.TrimSpace(grapheme.Slice(v, 0, b.limit))
		}
		if v == prev {
			return v
		}
	}
}
