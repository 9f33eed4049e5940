package stringedit

import (
	"slices"
	"strings"

	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// ListSeparator splits list input; CanonicalListJoiner joins values.
const (
	ListSeparator       = ","
	CanonicalListJoiner = ", "
)

// NewListEditor edits a comma separated list of trimmed, non-empty
// elements. A positive maxElementLength bounds each element in graphemes.
func NewListEditor(maxElementLength int, opts ...Option) *Editor[[]string] {
	return New[[]string](&listBehavior{maxLen: maxElementLength}, nil, listEqual, opts...)
}

func listEqual(a, b []string) bool { return slices.Equal(a, b) }

type listBehavior struct {
	Defaults[[]string]
	maxLen int
}

func (*listBehavior) EmptyValue() []string { return nil }

func (*listBehavior) ValueFromLogical(text string) ([]string, error) {
	return splitList([]string{text}), nil
}

func (*listBehavior) CanonicalLogical(v []string) string {
	return strings.Join(v, CanonicalListJoiner)
}

func (b *listBehavior) ShouldAllowValue(v []string) bool {
	if b.maxLen <= 0 {
		return true
	}
	for _, el := range v {
		if grapheme.Count(el) > b.maxLen {
			return false
		}
	}
	return true
}

// Sanitize splits elements that contain a separator, drops empty ones and
// truncates the rest.
func (b *listBehavior) Sanitize(v []string) []string {
	out := splitList(v)
	if b.maxLen <= 0 {
		return out
	}
	kept := out[:0]
	for _, el := range out {
		if grapheme.Count(el) > b.maxLen {
			el = strings.TrimSpace(grapheme.Slice(el, 0, b.maxLen))
		}
		if el != "" {
			kept = append(kept, el)
		}
	}
	return kept
}

func splitList(parts []string) []string {
	var out []string
	for _, p := range parts {
		for _, el := range strings.Split(p, ListSeparator) {
			if el = strings.TrimSpace(el); el != "" {
				out = append(out, el)
			}
		}
	}
	return out
}
