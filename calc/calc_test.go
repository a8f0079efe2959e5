package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("adds two numbers", func(t *testing.T) {
		tests := []struct {
			name string
			a, b float64
			want float64
		}{
			{"positive integers", 2, 3, 5},
			{"negative and positive", -4, 10, 6},
			{"both negative", -2, -3, -5},
			{"zero identity", 7.5, 0, 7.5},
			{"fractions", 2.5, 3.7, 6.2},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Add(tt.a, tt.b)
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got, 1e-9)
			})
		}
	})

	t.Run("is commutative", func(t *testing.T) {
		x, err := Add(12.5, -3.25)
		require.NoError(t, err)
		y, err := Add(-3.25, 12.5)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	})

	t.Run("rejects non-finite operands", func(t *testing.T) {
		_, err := Add(math.NaN(), 1)
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))

		_, err = Add(1, math.Inf(1))
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))
	})

	t.Run("rejects operands beyond the bound", func(t *testing.T) {
		_, err := Add(math.MaxFloat64, 1)
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))

		var ce *Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "a", ce.Param)
	})

	t.Run("overflows on infinite sum", func(t *testing.T) {
		_, err := Add(1e308, 1e308)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("rejects finite sum beyond the bound", func(t *testing.T) {
		_, err := Add(9e307, 8e307)
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})
}

func TestSubtract(t *testing.T) {
	t.Run("subtracts two numbers", func(t *testing.T) {
		tests := []struct {
			name string
			a, b float64
			want float64
		}{
			{"positive result", 10, 3, 7},
			{"negative result", 3, 10, -7},
			{"zero result", 4.5, 4.5, 0},
			{"subtracting negative", 5, -3, 8},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Subtract(tt.a, tt.b)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("is antisymmetric", func(t *testing.T) {
		x, err := Subtract(9.25, 2.75)
		require.NoError(t, err)
		y, err := Subtract(2.75, 9.25)
		require.NoError(t, err)
		assert.Equal(t, x, -y)
	})

	t.Run("overflows on infinite difference", func(t *testing.T) {
		_, err := Subtract(-1e308, 1e308)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("rejects finite difference beyond the bound", func(t *testing.T) {
		_, err := Subtract(-9e307, 8e307)
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})
}

func TestMultiply(t *testing.T) {
	t.Run("multiplies two numbers", func(t *testing.T) {
		tests := []struct {
			name string
			a, b float64
			want float64
		}{
			{"positive integers", 4, 6, 24},
			{"negative times positive", -2, 3, -6},
			{"both negative", -3, -5, 15},
			{"zero annihilates", 123.456, 0, 0},
			{"fractions", 0.5, 0.25, 0.125},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Multiply(tt.a, tt.b)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("overflows on infinite product", func(t *testing.T) {
		_, err := Multiply(1e200, 1e200)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("rejects finite product beyond the bound", func(t *testing.T) {
		_, err := Multiply(1.5e154, 1e154)
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})

	t.Run("rejects non-finite operands", func(t *testing.T) {
		_, err := Multiply(math.Inf(-1), 2)
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))
	})
}

func TestDivide(t *testing.T) {
	t.Run("divides two numbers", func(t *testing.T) {
		tests := []struct {
			name string
			a, b float64
			want float64
		}{
			{"even division", 10, 2, 5},
			{"fractional quotient", 5, 2, 2.5},
			{"negative dividend", -9, 3, -3},
			{"divides into fraction", 1, 4, 0.25},
			{"zero dividend", 0, 5, 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Divide(tt.a, tt.b)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("rejects zero divisor for any dividend", func(t *testing.T) {
		for _, a := range []float64{5, -5, 0, 1e307, 0.001} {
			_, err := Divide(a, 0)
			require.Error(t, err)
			assert.Equal(t, KindDivisionByZero, KindOf(err))
			assert.Contains(t, err.Error(), "zero")
		}
	})

	t.Run("rejects negative zero divisor", func(t *testing.T) {
		negZero := math.Copysign(0, -1)
		_, err := Divide(5, negZero)
		require.Error(t, err)
		assert.Equal(t, KindDivisionByZero, KindOf(err))
	})

	t.Run("overflows on infinite quotient", func(t *testing.T) {
		_, err := Divide(1e308, 1e-10)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("rejects finite quotient beyond the bound", func(t *testing.T) {
		_, err := Divide(3e307, 0.2)
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})

	t.Run("rejects non-finite divisor before the zero check", func(t *testing.T) {
		_, err := Divide(5, math.NaN())
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))
	})
}

func TestPow(t *testing.T) {
	t.Run("raises base to exponent", func(t *testing.T) {
		tests := []struct {
			name           string
			base, exponent float64
			want           float64
		}{
			{"integer power", 2, 10, 1024},
			{"negative exponent", 2, -1, 0.5},
			{"fractional exponent", 4, 0.5, 2.0},
			{"zero exponent", 5, 0, 1},
			{"zero base positive exponent", 0, 5, 0},
			{"negative base even exponent", -2, 2, 4},
			{"negative base odd exponent", -2, 3, -8},
			{"exponent at the ceiling", 1, 1000, 1},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Pow(tt.base, tt.exponent)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("rejects zero to the zero", func(t *testing.T) {
		_, err := Pow(0, 0)
		require.Error(t, err)
		assert.Equal(t, KindUndefinedResult, KindOf(err))
		assert.Contains(t, err.Error(), "undefined")
	})

	t.Run("rejects oversized exponents", func(t *testing.T) {
		for _, exp := range []float64{1001, -1001, 5000} {
			_, err := Pow(2, exp)
			require.Error(t, err)
			assert.Equal(t, KindInvalidValue, KindOf(err))

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, "exponent", ce.Param)
		}
	})

	t.Run("overflows on infinite result", func(t *testing.T) {
		_, err := Pow(10, 400)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("overflows on finite result beyond the bound", func(t *testing.T) {
		_, err := Pow(10, 308.1)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("overflows on zero base with negative exponent", func(t *testing.T) {
		_, err := Pow(0, -1)
		require.Error(t, err)
		assert.Equal(t, KindOverflow, KindOf(err))
	})

	t.Run("rejects non-real results", func(t *testing.T) {
		_, err := Pow(-8, 0.5)
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))
	})

	t.Run("rejects non-finite base", func(t *testing.T) {
		_, err := Pow(math.Inf(1), 2)
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))

		var ce *Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "base", ce.Param)
	})
}
