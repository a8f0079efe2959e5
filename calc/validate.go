package calc

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

const (
	// MaxMagnitude is the largest operand or result magnitude any operation accepts.
	MaxMagnitude = 1e308
	// MaxExponent is the largest exponent magnitude Pow accepts.
	MaxExponent = 1000.0
)

// ValidateNumber checks that v is a usable numeric value and returns it as a
// float64. param names the value in error messages.
//
// Values are a strict sum type at this boundary: only Go numeric types and
// json.Number pass the type check. Strings are rejected even when they look
// numeric, as are booleans, nil, and composites. Numeric values must be
// finite and within ±[MaxMagnitude].
//
// The returned value is never coerced beyond widening to float64.
func ValidateNumber(v any, param string) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			// A syntactically valid literal too large for float64 is a
			// range violation, not a type violation.
			if errors.Is(err, strconv.ErrRange) {
				return 0, errOutOfRange(param)
			}
			return 0, errInvalidType(param)
		}
		f = parsed
	default:
		return 0, errInvalidType(param)
	}

	if err := CheckNumber(f, param); err != nil {
		return 0, err
	}
	return f, nil
}

// CheckNumber checks an already-typed float64 value: it must be finite and
// within ±[MaxMagnitude]. param names the value in error messages.
func CheckNumber(v float64, param string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errNotFinite(param)
	}
	if v < -MaxMagnitude || v > MaxMagnitude {
		return errOutOfRange(param)
	}
	return nil
}
