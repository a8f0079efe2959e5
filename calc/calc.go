package calc

import "math"

// Add returns the sum of a and b.
func Add(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return checkResult(a + b)
}

// Subtract returns a minus b.
func Subtract(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return checkResult(a - b)
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return checkResult(a * b)
}

// Divide returns a divided by b. A zero divisor fails with
// [KindDivisionByZero] regardless of a.
func Divide(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, errDivisionByZero()
	}
	return checkResult(a / b)
}

// Pow returns base raised to exponent. Negative and fractional exponents are
// supported. 0^0 fails with [KindUndefinedResult]; exponents with magnitude
// above [MaxExponent] fail with [KindInvalidValue]; results too large to
// accept fail with [KindOverflow].
func Pow(base, exponent float64) (float64, error) {
	if err := CheckNumber(base, "base"); err != nil {
		return 0, err
	}
	if err := CheckNumber(exponent, "exponent"); err != nil {
		return 0, err
	}
	if base == 0 && exponent == 0 {
		return 0, errUndefinedPower()
	}
	if math.Abs(exponent) > MaxExponent {
		return 0, errExponentTooLarge()
	}

	r := math.Pow(base, exponent)
	if math.IsNaN(r) {
		// Negative base with a fractional exponent has no real value.
		return 0, errResultNotANumber()
	}
	if math.IsInf(r, 0) || r < -MaxMagnitude || r > MaxMagnitude {
		return 0, errOverflow()
	}
	return r, nil
}

func checkOperands(a, b float64) error {
	if err := CheckNumber(a, "a"); err != nil {
		return err
	}
	return CheckNumber(b, "b")
}

// checkResult applies the shared result policy for the four basic operations:
// an infinite result overflows, a finite result beyond the bound is out of
// range. NaN cannot arise from validated operands but is guarded anyway.
func checkResult(r float64) (float64, error) {
	if math.IsNaN(r) {
		return 0, errResultNotANumber()
	}
	if math.IsInf(r, 0) {
		return 0, errOverflow()
	}
	if r < -MaxMagnitude || r > MaxMagnitude {
		return 0, errResultOutOfRange()
	}
	return r, nil
}
