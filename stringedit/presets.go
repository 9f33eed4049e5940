package stringedit

import (
	"github.com/shopspring/decimal"

	"github.com/iw2rmb/fieldedit/bounds"
)

// DecimalRange returns the closed interval [lo, hi].
func DecimalRange(lo, hi decimal.Decimal) bounds.Interval[decimal.Decimal] {
	return bounds.Interval[decimal.Decimal]{Lo: lo, Hi: hi}
}

// IntRange returns the closed interval [lo, hi] of decimals.
func IntRange(lo, hi int64) bounds.Interval[decimal.Decimal] {
	return DecimalRange(decimal.NewFromInt(lo), decimal.NewFromInt(hi))
}

// DefaultCurrencyRange is 0…999,999,999.99.
var DefaultCurrencyRange = DecimalRange(decimal.Zero, decimal.RequireFromString("999999999.99"))

// CurrencyEditor edits amounts with two decimal places. Whole amounts show
// without decimals unless alwaysShowDecimal is set.
func CurrencyEditor(prefix string, alwaysShowDecimal bool, r bounds.Interval[decimal.Decimal], opts ...Option) *Editor[decimal.Decimal] {
	preferred := []int{0, 2}
	if alwaysShowDecimal {
		preferred = []int{2}
	}
	return NewNumberEditor(NumberConfig{
		Prefix:                 prefix,
		MaxDecimalPlaces:       2,
		PreferredDecimalPlaces: preferred,
		Range:                  r,
	}, opts...)
}

func PercentageEditor(maxDecimalPlaces int, r bounds.Interval[decimal.Decimal], opts ...Option) *Editor[decimal.Decimal] {
	return NewNumberEditor(NumberConfig{
		Suffix:           "%",
		MaxDecimalPlaces: maxDecimalPlaces,
		Range:            r,
	}, opts...)
}

// UnitsEditor counts units, 0…99.
func UnitsEditor(opts ...Option) *Editor[decimal.Decimal] {
	return NewNumberEditor(NumberConfig{Range: IntRange(0, 99)}, opts...)
}

func DaysEditor(opts ...Option) *Editor[decimal.Decimal] {
	return NewNumberEditor(NumberConfig{Range: IntRange(0, 9999)}, opts...)
}

func MonthsEditor(opts ...Option) *Editor[decimal.Decimal] {
	return NewNumberEditor(NumberConfig{Range: IntRange(0, 10000)}, opts...)
}

// RentAmountEditor is a dollar amount up to one billion.
func RentAmountEditor(alwaysShowDecimal bool, opts ...Option) *Editor[decimal.Decimal] {
	return CurrencyEditor("$", alwaysShowDecimal, IntRange(0, 1_000_000_000), opts...)
}

// InterestRateEditor is a percentage with up to three decimal places.
func InterestRateEditor(opts ...Option) *Editor[decimal.Decimal] {
	return PercentageEditor(3, IntRange(0, 100), opts...)
}

// TitleEditor, ContactEditor and SecureTextEditor are unlimited trimmed
// string editors; the secure one asks hosts to mask input.
func TitleEditor(opts ...Option) *Editor[string] {
	return NewTrimmedStringEditor(0, opts...)
}

func ContactEditor(opts ...Option) *Editor[string] {
	return NewTrimmedStringEditor(0, opts...)
}

func SecureTextEditor(opts ...Option) *Editor[string] {
	return NewTrimmedStringEditor(0, append([]Option{WithSecure()}, opts...)...)
}
