// Package grapheme implements grapheme-cluster indexing for single-line text.
//
// Every "character index" in fieldedit is a grapheme-cluster index: index i
// is the gap before the i-th user-perceived character, so a string with n
// clusters has valid indices 0..n.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/iw2rmb/fieldedit/bounds"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	from, to := ByteOffset(text, start), ByteOffset(text, end)
	return text[from:to]
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	return strings.Join(clusters, "")
}

// ByteOffset returns the byte offset of the gap at grapheme index idx,
// clamped to [0, len(text)].
func ByteOffset(text string, idx int) int {
	if idx <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		if n == idx {
			from, _ := g.Positions()
			return from
		}
		n++
	}
	return len(text)
}

// IndexAt returns the grapheme index of the cluster that contains byte offset
// off. An offset inside a cluster resolves to the cluster start; offsets at or
// past the end resolve to Count(text).
func IndexAt(text string, off int) int {
	if off <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		_, to := g.Positions()
		if off < to {
			return n
		}
		n++
	}
	return n
}

// Replace substitutes the clusters in [start, end) with repl and returns the
// new text plus the caret index directly after the inserted text.
//
// Indices are clamped to the text. If repl merges with its neighbours into a
// single cluster (combining marks), the caret snaps to that cluster's start.
func Replace(text string, start, end int, repl string) (string, int) {
	n := Count(text)
	start = bounds.Clamp(start, 0, n)
	end = bounds.Clamp(end, start, n)

	from, to := ByteOffset(text, start), ByteOffset(text, end)
	out := text[:from] + repl + text[to:]
	caretOff := from + len(repl)
	if caretOff >= len(out) {
		return out, Count(out)
	}
	return out, IndexAt(out, caretOff)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}
