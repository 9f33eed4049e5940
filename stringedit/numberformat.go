package stringedit

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// DefaultLocale is used by number editors without an explicit locale.
var DefaultLocale = language.AmericanEnglish

// numberFormat renders the integer part of logical text with locale grouping.
type numberFormat struct {
	printer *message.Printer
	mark    string
	groups  grouping
}

// grouping is a locale's digit grouping: primary is the size of the
// rightmost group, secondary the size of the others. An empty sep means the
// locale does not group.
type grouping struct {
	sep                string
	primary, secondary int
}

func newNumberFormat(tag language.Tag) numberFormat {
	if tag == language.Und {
		tag = DefaultLocale
	}
	// Logical text is parsed with ASCII digits only.
	if latn, err := tag.SetTypeForKey("nu", "latn"); err == nil {
		tag = latn
	}
	p := message.NewPrinter(tag)
	return numberFormat{printer: p, mark: probeDecimalMark(p), groups: probeGrouping(p)}
}

// probeDecimalMark formats 1.5 and takes whatever sits between the digits.
func probeDecimalMark(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if !strings.HasPrefix(s, "1") || !strings.HasSuffix(s, "5") || len(s) < 3 {
		return "."
	}
	mark := s[1 : len(s)-1]
	if grapheme.Count(mark) != 1 || grapheme.IsDigit(mark) {
		return "."
	}
	return mark
}

// probeGrouping formats a long integer and reads the separator and group
// sizes off the result ("1,234,567,890,123" or "12,34,56,78,90,123").
func probeGrouping(p *message.Printer) grouping {
	s := p.Sprint(number.Decimal(int64(1234567890123)))
	if asciiDigits(s) != "1234567890123" {
		return grouping{}
	}
	var sizes []int
	var sep string
	run := 0
	for _, c := range grapheme.Split(s) {
		if grapheme.IsDigit(c) {
			run++
			continue
		}
		if run > 0 {
			sizes = append(sizes, run)
			run = 0
		}
		if sep == "" {
			sep = c
		} else if c != sep {
			return grouping{}
		}
	}
	sizes = append(sizes, run)
	if sep == "" || len(sizes) < 3 {
		return grouping{}
	}
	return grouping{sep: sep, primary: sizes[len(sizes)-1], secondary: sizes[len(sizes)-2]}
}

// apply groups digits right to left.
func (g grouping) apply(digits string) string {
	if g.sep == "" || g.primary <= 0 || g.secondary <= 0 || len(digits) <= g.primary {
		return digits
	}
	var parts []string
	end, size := len(digits), g.primary
	for end > size {
		parts = append(parts, digits[end-size:end])
		end -= size
		size = g.secondary
	}
	parts = append(parts, digits[:end])
	slices.Reverse(parts)
	return strings.Join(parts, g.sep)
}

// groupInteger formats a run of ASCII digits with grouping separators.
// Values that fit an int64 go through the locale printer, which also knows
// minimum grouping rules; longer runs use the probed grouping pattern.
func (f numberFormat) groupInteger(digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		if asciiDigits(digits) != digits {
			return digits
		}
		return f.groups.apply(digits)
	}
	out := f.printer.Sprint(number.Decimal(n))
	if asciiDigits(out) != digits {
		return digits
	}
	return out
}

func asciiDigits(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
