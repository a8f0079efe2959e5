package calc

import (
	"errors"
	"fmt"
)

// Kind classifies an arithmetic failure.
type Kind string

const (
	// KindInvalidType indicates a value that is not numeric at all.
	KindInvalidType Kind = "invalid_type"
	// KindInvalidValue indicates a numeric value that is not usable:
	// NaN or infinite operands, oversized exponents, non-real results.
	KindInvalidValue Kind = "invalid_value"
	// KindOutOfRange indicates a finite value outside the accepted magnitude bound.
	KindOutOfRange Kind = "out_of_range"
	// KindDivisionByZero indicates a division with a zero divisor.
	KindDivisionByZero Kind = "division_by_zero"
	// KindOverflow indicates a result too large to represent or accept.
	KindOverflow Kind = "overflow"
	// KindUndefinedResult indicates an operation with no defined value, such as 0^0.
	KindUndefinedResult Kind = "undefined_result"
)

// Error is a typed arithmetic failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Param names the offending parameter, or is empty for result failures.
	Param string
	// Message describes the violated rule in human-readable form.
	Message string
}

// Error returns the failure description.
func (e *Error) Error() string { return e.Message }

// KindOf returns the failure classification of err, or the empty Kind if err
// does not wrap a calc error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func errInvalidType(param string) *Error {
	return &Error{
		Kind:    KindInvalidType,
		Param:   param,
		Message: fmt.Sprintf("%s must be a number", param),
	}
}

func errNotFinite(param string) *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Param:   param,
		Message: fmt.Sprintf("%s must be a finite number", param),
	}
}

func errOutOfRange(param string) *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Param:   param,
		Message: fmt.Sprintf("%s must be between -%g and %g", param, MaxMagnitude, MaxMagnitude),
	}
}

func errDivisionByZero() *Error {
	return &Error{
		Kind:    KindDivisionByZero,
		Param:   "b",
		Message: "division by zero is not allowed",
	}
}

func errUndefinedPower() *Error {
	return &Error{
		Kind:    KindUndefinedResult,
		Message: "0^0 is undefined",
	}
}

func errExponentTooLarge() *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Param:   "exponent",
		Message: fmt.Sprintf("exponent magnitude must not exceed %g", MaxExponent),
	}
}

func errResultNotANumber() *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Message: "result is not a number",
	}
}

func errOverflow() *Error {
	return &Error{
		Kind:    KindOverflow,
		Message: "result overflows the allowed numeric range",
	}
}

func errResultOutOfRange() *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Message: fmt.Sprintf("result must be between -%g and %g", MaxMagnitude, MaxMagnitude),
	}
}
