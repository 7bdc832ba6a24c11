// Package conv provides the small set of value conversions used alongside
// the collection operations: rendering arbitrary values as strings and
// parsing numbers out of strings with a typed failure.
package conv

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTypeConversion is returned when a value cannot be converted to the
// requested type. Parse failures wrap it, so callers can test with
// errors.Is.
var ErrTypeConversion = errors.New("conv: type conversion failed")

// ToString renders v in its default format.
func ToString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// ToInt parses s as a decimal integer.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q -> int", ErrTypeConversion, s)
	}
	return n, nil
}

// ToFloat parses s as a floating-point number.
func ToFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q -> float64", ErrTypeConversion, s)
	}
	return f, nil
}

// ToBool parses s as a boolean ("true", "false", "1", "0", ...).
func ToBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q -> bool", ErrTypeConversion, s)
	}
	return b, nil
}
