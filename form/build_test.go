package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/fieldedit/stringedit"
)

func TestNewEditor_Kinds(t *testing.T) {
	cases := []struct {
		fs          FieldSpec
		placeholder string
		secure      bool
	}{
		{fs: FieldSpec{Key: "a", Kind: KindCurrency}, placeholder: "$0"},
		{fs: FieldSpec{Key: "b", Kind: KindCurrency, Prefix: "€", AlwaysShowDecimal: true}, placeholder: "€0.00"},
		{fs: FieldSpec{Key: "c", Kind: KindPercentage}, placeholder: "0%"},
		{fs: FieldSpec{Key: "d", Kind: KindUnits, Suffix: " units"}, placeholder: "0 units"},
		{fs: FieldSpec{Key: "e", Kind: KindText, Placeholder: "Title"}, placeholder: "Title"},
		{fs: FieldSpec{Key: "f", Kind: KindSecret}, secure: true},
	}
	for _, tc := range cases {
		ed, err := NewEditor(tc.fs)
		require.NoError(t, err, tc.fs.Key)
		require.Equal(t, tc.placeholder, ed.Placeholder(), tc.fs.Key)
		require.Equal(t, tc.secure, ed.Secure(), tc.fs.Key)
	}

	_, err := NewEditor(FieldSpec{Key: "x", Kind: "date"})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewEditor_Values(t *testing.T) {
	ed, err := NewEditor(FieldSpec{Key: "rent", Kind: KindCurrency, Value: 5000})
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(5000).Equal(ed.AnyValue().(decimal.Decimal)))

	ed, err = NewEditor(FieldSpec{Key: "n", Kind: KindNumber, Value: "12"})
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(12).Equal(ed.AnyValue().(decimal.Decimal)))

	ed, err = NewEditor(FieldSpec{Key: "tags", Kind: KindList, Value: []any{"a", "b,c", 3}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "3"}, ed.AnyValue())

	ed, err = NewEditor(FieldSpec{Key: "t", Kind: KindText, MaxLength: 3, Value: " abcdef"})
	require.NoError(t, err)
	require.Equal(t, "abc", ed.AnyValue())

	_, err = NewEditor(FieldSpec{Key: "bad", Kind: KindUnits, Value: []any{1}})
	require.Error(t, err)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "bad", fe.Key)
}

func TestNewEditor_NumberOverrides(t *testing.T) {
	ed, err := NewEditor(FieldSpec{
		Key:     "n",
		Kind:    KindNumber,
		Min:     Number{Value: decimal.NewFromInt(10), Set: true},
		Max:     Number{Value: decimal.NewFromInt(20), Set: true},
		AtLeast: Number{Value: decimal.NewFromInt(15), Set: true},
	})
	require.NoError(t, err)

	num := ed.(*stringedit.Editor[decimal.Decimal])
	require.True(t, decimal.NewFromInt(10).Equal(num.Value()), "empty value follows min")

	num.SetValue(decimal.NewFromInt(50))
	require.True(t, decimal.NewFromInt(20).Equal(num.Value()))

	num.SetValue(decimal.NewFromInt(12))
	var rangeErr *stringedit.RangeError
	require.ErrorAs(t, num.Err(), &rangeErr)
}
