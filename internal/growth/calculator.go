package growth

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Messages shown on the result surface for domain failures
const (
	MessageZeroValue = "Error: Initial value and years must be non-zero."
	MessageUndefined = "Error: Growth rate is undefined for these values."
)

// ErrDomain is wrapped by every error raised for inputs that parse but have
// no growth rate.
var ErrDomain = errors.New("domain error")

var (
	ErrZeroValue = fmt.Errorf("%w: initial value and years must be non-zero", ErrDomain)
	ErrUndefined = fmt.Errorf("%w: growth rate is not a finite real number", ErrDomain)
)

// ParseError reports field text that is not a finite real number
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errNotFinite   = errors.New("value is not finite")
	errHexadecimal = errors.New("hexadecimal notation is not a decimal number")
)

// Kind classifies an evaluation outcome
type Kind int

const (
	KindOK Kind = iota
	KindParse
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindParse:
		return "parse"
	case KindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

// Result is the outcome of one evaluation. Text is what the output surface
// displays; Rate is only meaningful when Err is nil.
type Result struct {
	Text string
	Rate float64
	Err  error
}

// Kind returns the outcome classification of the result
func (r Result) Kind() Kind {
	var parseErr *ParseError
	switch {
	case r.Err == nil:
		return KindOK
	case errors.As(r.Err, &parseErr):
		return KindParse
	default:
		return KindDomain
	}
}

// Rate computes the compound annual growth rate in percent.
func Rate(current, initial, years float64) (float64, error) {
	if initial == 0 || years == 0 {
		return 0, ErrZeroValue
	}

	rate := (math.Pow(current/initial, 1/years) - 1) * 100
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, ErrUndefined
	}

	return rate, nil
}

// ParseValue parses field text as a finite real number. Surrounding
// whitespace is ignored.
func ParseValue(field, text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	unsigned := strings.TrimLeft(trimmed, "+-")
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, &ParseError{Field: field, Input: text, Err: errHexadecimal}
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Input: text, Err: err}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ParseError{Field: field, Input: text, Err: errNotFinite}
	}
	return value, nil
}

// FormatRate renders a rate with two decimals and a percent sign
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64) + "%"
}

// Message maps an evaluation error to the text shown to the user. Parse
// failures clear the output.
func Message(err error) string {
	var parseErr *ParseError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &parseErr):
		return ""
	case errors.Is(err, ErrZeroValue):
		return MessageZeroValue
	default:
		return MessageUndefined
	}
}

// Evaluate parses the three field texts and computes the displayed result.
// All fields are parsed before any domain check, so a parse failure in any
// field always yields an empty result.
func Evaluate(current, initial, years string) Result {
	values := [3]float64{}
	texts := [3]string{current, initial, years}
	names := [3]string{"current", "initial", "years"}

	for i := range texts {
		v, err := ParseValue(names[i], texts[i])
		if err != nil {
			return Result{Err: err}
		}
		values[i] = v
	}

	rate, err := Rate(values[0], values[1], values[2])
	if err != nil {
		return Result{Text: Message(err), Err: err}
	}

	return Result{Text: FormatRate(rate), Rate: rate}
}
