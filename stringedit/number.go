package stringedit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/iw2rmb/fieldedit/bounds"
	"github.com/iw2rmb/fieldedit/buffer"
	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// NumberConfig configures a number editor.
type NumberConfig struct {
	Prefix string
	Suffix string

	// MaxDecimalPlaces caps the fractional digits that can be typed. Zero
	// disallows the decimal mark.
	MaxDecimalPlaces int

	// PreferredDecimalPlaces lists canonical fractional digit counts in order
	// of preference. The first entry not below the value's own count wins.
	PreferredDecimalPlaces []int

	// Range bounds every value the editor holds.
	Range bounds.Interval[decimal.Decimal]

	// Limits, when set, is checked by Validate only.
	Limits *bounds.Interval[decimal.Decimal]

	// Locale selects grouping and the decimal mark. Zero means DefaultLocale.
	Locale language.Tag

	EmptyValue decimal.Decimal
}

// NewNumberEditor returns an editor for decimal numbers with as-you-type
// grouping. The initial value is cfg.EmptyValue.
func NewNumberEditor(cfg NumberConfig, opts ...Option) *Editor[decimal.Decimal] {
	o := buildOptions(opts)
	if o.locale != language.Und {
		cfg.Locale = o.locale
	}
	b := newNumberBehavior(cfg)
	return newEditor[decimal.Decimal](b, cfg.EmptyValue, decimalEqual, o)
}

func decimalEqual(a, b decimal.Decimal) bool { return a.Equal(b) }

type numberBehavior struct {
	Defaults[decimal.Decimal]
	cfg    NumberConfig
	format numberFormat

	prefixLen, suffixLen int
}

func newNumberBehavior(cfg NumberConfig) *numberBehavior {
	if cfg.MaxDecimalPlaces < 0 {
		cfg.MaxDecimalPlaces = 0
	}
	return &numberBehavior{
		cfg:       cfg,
		format:    newNumberFormat(cfg.Locale),
		prefixLen: grapheme.Count(cfg.Prefix),
		suffixLen: grapheme.Count(cfg.Suffix),
	}
}

func (b *numberBehavior) EmptyValue() decimal.Decimal { return b.cfg.EmptyValue }

func (b *numberBehavior) ValueFromLogical(text string) (decimal.Decimal, error) {
	if text == "" {
		return b.cfg.EmptyValue, nil
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(text, "."))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("stringedit: parse number %q: %w", text, err)
	}
	return d, nil
}

// CanonicalLogical formats v without grouping, with at least one integer
// digit and a fractional digit count picked from PreferredDecimalPlaces.
func (b *numberBehavior) CanonicalLogical(v decimal.Decimal) string {
	natural := fractionDigits(v)
	places := 0
	for _, p := range b.cfg.PreferredDecimalPlaces {
		if p >= natural {
			places = p
			break
		}
	}
	places = bounds.Clamp(max(places, natural), 0, b.cfg.MaxDecimalPlaces)
	return v.StringFixed(int32(places))
}

// fractionDigits counts significant fractional digits.
func fractionDigits(v decimal.Decimal) int {
	_, frac, ok := strings.Cut(v.String(), ".")
	if !ok {
		return 0
	}
	return len(frac)
}

// ShouldAllowLogicalText accepts (0|[1-9][0-9]*)(\.[0-9]{0,max})?.
func (b *numberBehavior) ShouldAllowLogicalText(text string) bool {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	if mark := strings.IndexByte(text, '.'); mark >= 0 {
		if b.cfg.MaxDecimalPlaces == 0 || mark == 0 {
			return false
		}
		if strings.Count(text, ".") > 1 {
			return false
		}
		if len(text)-mark-1 > b.cfg.MaxDecimalPlaces {
			return false
		}
	}
	if len(text) > 1 && text[0] == '0' && text[1] != '.' {
		return false
	}
	return true
}

func (b *numberBehavior) ShouldAllowValue(v decimal.Decimal) bool {
	return b.cfg.Range.Contains(v)
}

// Sanitize rounds to MaxDecimalPlaces and clamps to Range.
func (b *numberBehavior) Sanitize(v decimal.Decimal) decimal.Decimal {
	return b.cfg.Range.Clamp(v.Round(int32(b.cfg.MaxDecimalPlaces)))
}

func (b *numberBehavior) Validate(v decimal.Decimal) error {
	if l := b.cfg.Limits; l != nil && !l.Contains(v) {
		return &RangeError{Value: v, Min: l.Lo, Max: l.Hi}
	}
	return nil
}

// editable returns the grapheme indices [lo, hi] between prefix and suffix.
func (b *numberBehavior) editable(n int) (lo, hi int) {
	lo = min(b.prefixLen, n)
	hi = max(lo, n-b.suffixLen)
	return lo, hi
}

func (b *numberBehavior) relevant(cluster string) bool {
	return grapheme.IsDigit(cluster) || cluster == b.format.mark
}

// DisplayToLogical keeps digits and the decimal mark of the editable part and
// threads the selection bounds through.
func (b *numberBehavior) DisplayToLogical(display string, sel buffer.Range) (string, buffer.Range) {
	if display == "" {
		return "", buffer.Caret(0)
	}
	clusters := grapheme.Split(display)
	n := len(clusters)
	sel = buffer.ClampRange(sel, n)
	lo, hi := b.editable(n)

	var sb strings.Builder
	logical := 0
	var out buffer.Range
	for i := 0; i <= n; i++ {
		if i == sel.Start {
			out.Start = logical
		}
		if i == sel.End {
			out.End = logical
		}
		if i == n {
			break
		}
		c := clusters[i]
		if i < lo || i >= hi || !b.relevant(c) {
			continue
		}
		if c == b.format.mark {
			sb.WriteByte('.')
		} else {
			sb.WriteString(c)
		}
		logical++
	}
	return sb.String(), out
}

// LogicalToDisplay groups the integer part, keeps the typed fractional
// digits (and a trailing mark) and adds prefix and suffix.
//
// A logical index can match several display indices ("5|000" is "$5|,000"
// or "$5,|000"); the leftmost one outside prefix and suffix is used so the
// caret stays put while typing in front of a separator.
func (b *numberBehavior) LogicalToDisplay(logical string, sel buffer.Range) (string, buffer.Range) {
	if logical == "" {
		return "", buffer.Caret(0)
	}
	sel = buffer.ClampRange(sel, len(logical))

	intPart, frac, hasMark := strings.Cut(logical, ".")
	var sb strings.Builder
	sb.WriteString(b.cfg.Prefix)
	sb.WriteString(b.format.groupInteger(intPart))
	if hasMark {
		sb.WriteString(b.format.mark)
		sb.WriteString(frac)
	}
	sb.WriteString(b.cfg.Suffix)
	display := sb.String()

	clusters := grapheme.Split(display)
	n := len(clusters)
	lo, hi := b.editable(n)
	start, end := -1, -1
	logicalIdx := 0
	for i := 0; i <= n; i++ {
		if i >= lo && i <= hi {
			if start < 0 && logicalIdx == sel.Start {
				start = i
			}
			if end < 0 && logicalIdx == sel.End {
				end = i
			}
		}
		if i == n {
			break
		}
		if i >= lo && i < hi && b.relevant(clusters[i]) {
			logicalIdx++
		}
	}
	if start < 0 {
		start = hi
	}
	if end < 0 {
		end = hi
	}
	return display, buffer.Range{Start: start, End: end}
}

func (b *numberBehavior) LogicalEditFromDisplayEdit(edit string) string {
	if edit == b.format.mark {
		return "."
	}
	return edit
}

// PerformLogicalEdit handles paste and the leading-zero cases before falling
// back to a plain replacement.
func (b *numberBehavior) PerformLogicalEdit(edit, logical string, sel buffer.Range) (string, buffer.Range, bool) {
	sel = buffer.ClampRange(sel, len(logical))
	mark := strings.IndexByte(logical, '.')

	switch {
	case grapheme.Count(edit) > 1:
		// Paste only into an empty field.
		if logical != "" {
			return "", buffer.Range{}, false
		}
		token := b.scanNumber(edit)
		if token == "" {
			return "", buffer.Range{}, false
		}
		d, err := decimal.NewFromString(token)
		if err != nil {
			return "", buffer.Range{}, false
		}
		edit = b.CanonicalLogical(d)

	case strings.HasPrefix(logical, "0") && sel == buffer.Caret(1) && isNonZeroDigit(edit):
		// "0|.21" + "5" → "5.21"
		logical, sel = logical[1:], buffer.Caret(0)

	case mark >= 0 && sel == (buffer.Range{Start: 0, End: mark}) && edit == "":
		// Removing the whole integer part leaves "0".
		edit = "0"

	case sel == buffer.Caret(0) && edit == ".":
		edit = "0."

	case strings.HasPrefix(logical, "0.") && sel == (buffer.Range{Start: 1, End: 2}) && edit == "":
		// "0.|50" backspace → "50"
		sel = buffer.Range{Start: 0, End: 2}
	}

	next, caret := ReplaceRange(edit, logical, sel)
	return next, caret, true
}

func isNonZeroDigit(s string) bool {
	return len(s) == 1 && s[0] >= '1' && s[0] <= '9'
}

// scanNumber returns the first number in s as a plain decimal string
// ("$1,500.25 USD" → "1500.25"), or "".
func (b *numberBehavior) scanNumber(s string) string {
	mark, group := ".", ","
	if b.format.mark != "." {
		mark = b.format.mark
		if mark == "," {
			group = "."
		}
	}
	isNumeric := func(r rune) bool {
		return (r >= '0' && r <= '9') || string(r) == mark || string(r) == group
	}

	start := strings.IndexFunc(s, isNumeric)
	if start < 0 {
		return ""
	}
	token := s[start:]
	if end := strings.IndexFunc(token, func(r rune) bool { return !isNumeric(r) }); end >= 0 {
		token = token[:end]
	}
	token = strings.ReplaceAll(token, group, "")
	if mark != "." {
		token = strings.ReplaceAll(token, mark, ".")
	}
	if first := strings.IndexByte(token, '.'); first >= 0 {
		if second := strings.IndexByte(token[first+1:], '.'); second >= 0 {
			token = token[:first+1+second]
		}
	}
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return ""
	}
	if token[0] == '.' {
		token = "0" + token
	}
	return token
}
