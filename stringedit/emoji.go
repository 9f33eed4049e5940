package stringedit

import (
	"strings"

	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// emojiRanges are the code points treated as emoji, inclusive.
var emojiRanges = [][2]rune{
	{0x200D, 0x200D}, // zero width joiner
	{0x20D0, 0x20FF}, // combining marks for symbols
	{0x2139, 0x2139},
	{0x2194, 0x2199},
	{0x21A9, 0x21AA},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23CF, 0x23CF},
	{0x23E9, 0x23F3},
	{0x23F8, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25A0, 0x27BF}, // geometric shapes, misc symbols, dingbats
	{0xFE00, 0xFE0F}, // variation selectors
	{0x1F000, 0x1F9FF},
}

const emojiPresentation = '\uFE0F'

func isEmojiRune(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// isEmoji reports whether the grapheme cluster is an emoji: it asks for
// emoji presentation or consists of emoji code points only. Joiners and
// combining marks inside ordinary text do not count.
func isEmoji(cluster string) bool {
	if cluster == "" {
		return false
	}
	if strings.ContainsRune(cluster, emojiPresentation) {
		return true
	}
	for _, r := range cluster {
		if !isEmojiRune(r) {
			return false
		}
	}
	return true
}

func containsEmoji(s string) bool {
	for _, c := range grapheme.Split(s) {
		if isEmoji(c) {
			return true
		}
	}
	return false
}

func stripEmoji(s string) string {
	var sb strings.Builder
	for _, c := range grapheme.Split(s) {
		if !isEmoji(c) {
			sb.WriteString(c)
		}
	}
	return sb.String()
}
