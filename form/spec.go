package form

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Kind selects the editor of a field.
type Kind string

const (
	KindCurrency   Kind = "currency"
	KindPercentage Kind = "percentage"
	KindNumber     Kind = "number"
	KindUnits      Kind = "units"
	KindText       Kind = "text"
	KindName       Kind = "name"
	KindList       Kind = "list"
	KindSecret     Kind = "secret"
)

func (k Kind) numeric() bool {
	switch k {
	case KindCurrency, KindPercentage, KindNumber, KindUnits:
		return true
	}
	return false
}

func (k Kind) valid() bool {
	switch k {
	case KindCurrency, KindPercentage, KindNumber, KindUnits, KindText, KindName, KindList, KindSecret:
		return true
	}
	return false
}

var (
	ErrUnknownKind = errors.New("unknown field kind")
	ErrNoFields    = errors.New("form has no fields")
)

// Spec describes a form.
type Spec struct {
	Title  string      `yaml:"title"`
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec describes one field. Number settings apply to numeric kinds,
// MaxLength to text, name and list kinds.
type FieldSpec struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Kind  Kind   `yaml:"kind"`

	Prefix                 string `yaml:"prefix"`
	Suffix                 string `yaml:"suffix"`
	MaxDecimalPlaces       *int   `yaml:"max_decimal_places"`
	PreferredDecimalPlaces []int  `yaml:"preferred_decimal_places"`
	AlwaysShowDecimal      bool   `yaml:"always_show_decimal"`

	// Min and Max bound what can be typed; AtLeast and AtMost are only
	// checked when the form is submitted.
	Min     Number `yaml:"min"`
	Max     Number `yaml:"max"`
	AtLeast Number `yaml:"at_least"`
	AtMost  Number `yaml:"at_most"`

	MaxLength int `yaml:"max_length"`

	Required    bool   `yaml:"required"`
	Gate        bool   `yaml:"gate"`
	Placeholder string `yaml:"placeholder"`
	Value       any    `yaml:"value"`
}

// Number is an optional decimal scalar.
type Number struct {
	Value decimal.Decimal
	Set   bool
}

func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = Number{Value: d, Set: true}
	return nil
}

func (n Number) Or(def decimal.Decimal) decimal.Decimal {
	if n.Set {
		return n.Value
	}
	return def
}

// FieldError ties an error to a field key.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string { return e.Key + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// Parse decodes and checks a YAML form definition.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("form: decode spec: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the form definition at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: read spec: %w", err)
	}
	return Parse(data)
}

// Validate checks keys, kinds and bounds.
func (s *Spec) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("form: %w", ErrNoFields)
	}
	seen := make(map[string]bool, len(s.Fields))
	var errs []error
	for i, f := range s.Fields {
		if f.Key == "" {
			errs = append(errs, fmt.Errorf("form: field %d has no key", i+1))
			continue
		}
		if seen[f.Key] {
			errs = append(errs, &FieldError{Key: f.Key, Err: errors.New("duplicate key")})
		}
		seen[f.Key] = true
		if !f.Kind.valid() {
			errs = append(errs, &FieldError{Key: f.Key, Err: fmt.Errorf("%w %q", ErrUnknownKind, f.Kind)})
			continue
		}
		if f.Min.Set && f.Max.Set && f.Min.Value.GreaterThan(f.Max.Value) {
			errs = append(errs, &FieldError{Key: f.Key, Err: fmt.Errorf("min %s is above max %s", f.Min.Value, f.Max.Value)})
		}
		if f.MaxDecimalPlaces != nil && *f.MaxDecimalPlaces < 0 {
			errs = append(errs, &FieldError{Key: f.Key, Err: errors.New("max_decimal_places is negative")})
		}
	}
	return errors.Join(errs...)
}
