package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifies one of the calculator input fields
type Field int

const (
	FieldCurrent Field = iota
	FieldInitial
	FieldYears
)

func (f Field) String() string {
	switch f {
	case FieldCurrent:
		return "current"
	case FieldInitial:
		return "initial"
	case FieldYears:
		return "years"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

var (
	ErrNotNumeric = errors.New("not a number")
	ErrOutOfRange = errors.New("value out of range")
	ErrTooPrecise = errors.New("too many decimal places")
)

// FieldSpec defines the label and accepted values of an input field
type FieldSpec struct {
	Field    Field
	Label    string
	Tooltip  string
	Min      decimal.Decimal
	Max      decimal.Decimal
	Decimals int32
}

var fieldSpecs = []FieldSpec{
	{
		Field:    FieldCurrent,
		Label:    "Current:",
		Min:      decimal.Zero,
		Max:      decimal.NewFromInt(1_000_000),
		Decimals: 2,
	},
	{
		Field:    FieldInitial,
		Label:    "Initial:",
		Min:      decimal.Zero,
		Max:      decimal.NewFromInt(1_000_000),
		Decimals: 2,
	},
	{
		Field:    FieldYears,
		Label:    "Year:",
		Tooltip:  "Number of years",
		Min:      decimal.Zero,
		Max:      decimal.NewFromInt(1_000),
		Decimals: 2,
	},
}

// Specs returns the field specifications in display order
func Specs() []FieldSpec {
	specs := make([]FieldSpec, len(fieldSpecs))
	copy(specs, fieldSpecs)
	return specs
}

// SpecFor returns the specification of a single field
func SpecFor(field Field) FieldSpec {
	for _, spec := range fieldSpecs {
		if spec.Field == field {
			return spec
		}
	}
	panic(fmt.Sprintf("models: unknown field %d", int(field)))
}

// Validate checks complete field text. Empty text is valid: the calculator
// treats it as absent and clears the result.
func (fs FieldSpec) Validate(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	whole, frac, ok := splitDecimal(text)
	if !ok || whole == "" && frac == "" {
		return fmt.Errorf("%s %q: %w", fs.Field, text, ErrNotNumeric)
	}
	if int32(len(frac)) > fs.Decimals {
		return fmt.Errorf("%s allows %d decimal places: %w", fs.Field, fs.Decimals, ErrTooPrecise)
	}

	value, err := decimal.NewFromString(strings.TrimSuffix(text, "."))
	if err != nil {
		return fmt.Errorf("%s %q: %w", fs.Field, text, ErrNotNumeric)
	}
	if value.LessThan(fs.Min) || value.GreaterThan(fs.Max) {
		return fmt.Errorf("%s must be between %s and %s: %w", fs.Field, fs.Min, fs.Max, ErrOutOfRange)
	}

	return nil
}

// Accepts reports whether text may stand in the field while the user is
// still typing. Only digits and a single decimal point are accepted, the
// fraction is limited to the field precision and the value may not exceed
// the field maximum.
func (fs FieldSpec) Accepts(text string) bool {
	if text == "" {
		return true
	}

	whole, frac, ok := splitDecimal(text)
	if !ok || int32(len(frac)) > fs.Decimals {
		return false
	}
	if whole == "" && frac == "" {
		return true
	}

	value, err := decimal.NewFromString(strings.TrimSuffix(text, "."))
	if err != nil {
		return false
	}
	return !value.GreaterThan(fs.Max)
}

// Insert returns the text produced by inserting runes at a rune offset and
// whether the field accepts it.
func (fs FieldSpec) Insert(text string, pos int, runes []rune) (string, bool) {
	return fs.Replace(text, pos, pos, runes)
}

// Replace returns the text produced by replacing the rune range
// [start, end) with runes and whether the field accepts it. Passing no
// runes describes a deletion.
func (fs FieldSpec) Replace(text string, start, end int, runes []rune) (string, bool) {
	current := []rune(text)
	start = clamp(start, 0, len(current))
	end = clamp(end, start, len(current))

	candidate := make([]rune, 0, len(current)-(end-start)+len(runes))
	candidate = append(candidate, current[:start]...)
	candidate = append(candidate, runes...)
	candidate = append(candidate, current[end:]...)

	result := string(candidate)
	return result, fs.Accepts(result)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// splitDecimal splits plain decimal text into whole and fractional digits
func splitDecimal(text string) (whole, frac string, ok bool) {
	dot := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return "", "", false
		}
	}

	whole, frac, _ = strings.Cut(text, ".")
	return whole, frac, true
}

// RawInputs holds the text of the three input fields at one instant
type RawInputs struct {
	Current string
	Initial string
	Years   string
}

// With returns a copy with one field replaced
func (ri RawInputs) With(field Field, text string) RawInputs {
	switch field {
	case FieldCurrent:
		ri.Current = text
	case FieldInitial:
		ri.Initial = text
	case FieldYears:
		ri.Years = text
	}
	return ri
}
