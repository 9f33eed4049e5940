package form

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/iw2rmb/fieldedit/bounds"
	"github.com/iw2rmb/fieldedit/stringedit"
	"github.com/iw2rmb/fieldedit/textfield"
)

// Options configures Build.
type Options struct {
	Logger    *zap.Logger
	Locale    language.Tag
	Width     int
	Clipboard textfield.Clipboard
	Styles    *Styles // nil means DefaultStyles()
	KeyMap    KeyMap
}

var defaultNumberRange = stringedit.DecimalRange(decimal.Zero, decimal.RequireFromString("999999999"))

// NewEditor returns the editor for fs, holding fs.Value when set.
func NewEditor(fs FieldSpec, opts ...stringedit.Option) (stringedit.AnyEditor, error) {
	if fs.Required {
		opts = append(opts, stringedit.WithRequired())
	}
	if fs.Placeholder != "" {
		opts = append(opts, stringedit.WithPlaceholder(fs.Placeholder))
	}

	var ed stringedit.AnyEditor
	switch fs.Kind {
	case KindCurrency:
		prefix := fs.Prefix
		if prefix == "" {
			prefix = "$"
		}
		preferred := []int{0, 2}
		if fs.AlwaysShowDecimal {
			preferred = []int{2}
		}
		ed = numberEditor(fs, stringedit.NumberConfig{
			Prefix:                 prefix,
			Suffix:                 fs.Suffix,
			MaxDecimalPlaces:       2,
			PreferredDecimalPlaces: preferred,
			Range:                  stringedit.DefaultCurrencyRange,
		}, opts)
	case KindPercentage:
		suffix := fs.Suffix
		if suffix == "" {
			suffix = "%"
		}
		ed = numberEditor(fs, stringedit.NumberConfig{
			Prefix:           fs.Prefix,
			Suffix:           suffix,
			MaxDecimalPlaces: 3,
			Range:            stringedit.IntRange(0, 100),
		}, opts)
	case KindNumber:
		ed = numberEditor(fs, stringedit.NumberConfig{
			Prefix: fs.Prefix,
			Suffix: fs.Suffix,
			Range:  defaultNumberRange,
		}, opts)
	case KindUnits:
		ed = numberEditor(fs, stringedit.NumberConfig{
			Suffix: fs.Suffix,
			Range:  stringedit.IntRange(0, 99),
		}, opts)
	case KindText:
		ed = stringedit.NewTrimmedStringEditor(fs.MaxLength, opts...)
	case KindName:
		ed = stringedit.NewNameEditor(opts...)
	case KindList:
		ed = stringedit.NewListEditor(fs.MaxLength, opts...)
	case KindSecret:
		ed = stringedit.SecureTextEditor(opts...)
	default:
		return nil, &FieldError{Key: fs.Key, Err: fmt.Errorf("%w %q", ErrUnknownKind, fs.Kind)}
	}

	if fs.Value != nil {
		v, err := convertValue(fs.Kind, fs.Value)
		if err != nil {
			return nil, &FieldError{Key: fs.Key, Err: err}
		}
		if err := ed.SetAnyValue(v); err != nil {
			return nil, &FieldError{Key: fs.Key, Err: err}
		}
	}
	return ed, nil
}

// numberEditor applies the field's overrides to a kind's defaults.
func numberEditor(fs FieldSpec, cfg stringedit.NumberConfig, opts []stringedit.Option) *stringedit.Editor[decimal.Decimal] {
	if fs.MaxDecimalPlaces != nil {
		cfg.MaxDecimalPlaces = *fs.MaxDecimalPlaces
	}
	if fs.PreferredDecimalPlaces != nil {
		cfg.PreferredDecimalPlaces = fs.PreferredDecimalPlaces
	}
	cfg.Range = bounds.Interval[decimal.Decimal]{
		Lo: fs.Min.Or(cfg.Range.Lo),
		Hi: fs.Max.Or(cfg.Range.Hi),
	}
	if fs.AtLeast.Set || fs.AtMost.Set {
		cfg.Limits = &bounds.Interval[decimal.Decimal]{
			Lo: fs.AtLeast.Or(cfg.Range.Lo),
			Hi: fs.AtMost.Or(cfg.Range.Hi),
		}
	}
	if cfg.Range.Lo.IsPositive() {
		cfg.EmptyValue = cfg.Range.Lo
	}
	return stringedit.NewNumberEditor(cfg, opts...)
}

// convertValue turns a decoded YAML value into the editor's value type.
func convertValue(kind Kind, v any) (any, error) {
	switch {
	case kind.numeric():
		switch n := v.(type) {
		case int:
			return decimal.NewFromInt(int64(n)), nil
		case float64:
			return decimal.NewFromFloat(n), nil
		case string:
			d, err := decimal.NewFromString(n)
			if err != nil {
				return nil, fmt.Errorf("value: %w", err)
			}
			return d, nil
		}
		return nil, fmt.Errorf("value: %v is not a number", v)
	case kind == KindList:
		switch l := v.(type) {
		case string:
			return []string{l}, nil
		case []any:
			out := make([]string, 0, len(l))
			for _, el := range l {
				out = append(out, fmt.Sprint(el))
			}
			return out, nil
		}
		return nil, fmt.Errorf("value: %v is not a list", v)
	default:
		return fmt.Sprint(v), nil
	}
}
