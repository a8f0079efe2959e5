package calc

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumber(t *testing.T) {
	t.Run("accepts numeric types", func(t *testing.T) {
		tests := []struct {
			name  string
			value any
			want  float64
		}{
			{"float64", float64(42.5), 42.5},
			{"float32", float32(1.5), 1.5},
			{"int", int(7), 7},
			{"negative int", int(-3), -3},
			{"int64", int64(1 << 40), float64(int64(1) << 40)},
			{"uint", uint(9), 9},
			{"json number integer", json.Number("12"), 12},
			{"json number fraction", json.Number("2.5"), 2.5},
			{"json number scientific", json.Number("1e10"), 1e10},
			{"zero", float64(0), 0},
			{"bound is inclusive", float64(1e308), 1e308},
			{"negative bound is inclusive", float64(-1e308), -1e308},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ValidateNumber(tt.value, "x")
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("rejects non-numeric types", func(t *testing.T) {
		tests := []struct {
			name  string
			value any
		}{
			{"string", "abc"},
			{"numeric string", "5"},
			{"bool", true},
			{"nil", nil},
			{"slice", []any{1, 2}},
			{"map", map[string]any{"n": 1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ValidateNumber(tt.value, "x")
				require.Error(t, err)
				assert.Equal(t, KindInvalidType, KindOf(err))
				assert.Equal(t, "x must be a number", err.Error())
			})
		}
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := ValidateNumber(v, "a")
			require.Error(t, err)
			assert.Equal(t, KindInvalidValue, KindOf(err))
			assert.Contains(t, err.Error(), "finite")
		}
	})

	t.Run("rejects values beyond the bound", func(t *testing.T) {
		for _, v := range []float64{math.MaxFloat64, -math.MaxFloat64} {
			_, err := ValidateNumber(v, "b")
			require.Error(t, err)
			assert.Equal(t, KindOutOfRange, KindOf(err))
			assert.Contains(t, err.Error(), "1e+308")
		}
	})

	t.Run("rejects json number literals beyond float64", func(t *testing.T) {
		_, err := ValidateNumber(json.Number("1e400"), "a")
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})

	t.Run("rejects malformed json number", func(t *testing.T) {
		_, err := ValidateNumber(json.Number("abc"), "a")
		require.Error(t, err)
		assert.Equal(t, KindInvalidType, KindOf(err))
	})

	t.Run("names the offending parameter", func(t *testing.T) {
		_, err := ValidateNumber("oops", "exponent")
		require.Error(t, err)

		var ce *Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "exponent", ce.Param)
		assert.Equal(t, "exponent must be a number", ce.Message)
	})
}

func TestCheckNumber(t *testing.T) {
	t.Run("accepts finite in-bound values", func(t *testing.T) {
		for _, v := range []float64{0, 1, -1, 1e308, -1e308, 0.001} {
			assert.NoError(t, CheckNumber(v, "x"))
		}
	})

	t.Run("rejects NaN", func(t *testing.T) {
		err := CheckNumber(math.NaN(), "x")
		require.Error(t, err)
		assert.Equal(t, KindInvalidValue, KindOf(err))
	})

	t.Run("rejects values beyond the bound", func(t *testing.T) {
		err := CheckNumber(1.5e308, "x")
		require.Error(t, err)
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})
}

func TestKindOf(t *testing.T) {
	t.Run("returns kind from calc error", func(t *testing.T) {
		_, err := Divide(1, 0)
		assert.Equal(t, KindDivisionByZero, KindOf(err))
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		_, err := Pow(0, 0)
		wrapped := fmt.Errorf("tool call failed: %w", err)
		assert.Equal(t, KindUndefinedResult, KindOf(wrapped))
	})

	t.Run("returns empty kind for foreign errors", func(t *testing.T) {
		assert.Equal(t, Kind(""), KindOf(fmt.Errorf("plain")))
		assert.Equal(t, Kind(""), KindOf(nil))
	})
}
