package stringedit

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAlreadyAttached is returned by Attach when the editor is bound to a
	// control. Detach first.
	ErrAlreadyAttached = errors.New("stringedit: editor already attached")

	// ErrRequired is reported by Validate for the empty value of a required
	// editor.
	ErrRequired = errors.New("value is required")
)

// RangeError reports a number outside its commit-time bounds.
type RangeError struct {
	Value    decimal.Decimal
	Min, Max decimal.Decimal
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s is not between %s and %s", e.Value, e.Min, e.Max)
}
