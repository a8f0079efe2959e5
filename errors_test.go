package mcpdemo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrEmptyInput(t *testing.T) {
	t.Run("is a sentinel error", func(t *testing.T) {
		assert.Error(t, ErrEmptyInput)
		assert.Equal(t, "empty input", ErrEmptyInput.Error())
	})

	t.Run("can be compared with errors.Is", func(t *testing.T) {
		err := fmt.Errorf("chat: %w", ErrEmptyInput)
		assert.True(t, errors.Is(err, ErrEmptyInput))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("includes cause when present", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewTransientError("request failed", 503, cause)
		assert.Equal(t, "request failed: connection reset", err.Error())
	})

	t.Run("omits cause when absent", func(t *testing.T) {
		err := NewPermanentError("invalid API key", 401, nil)
		assert.Equal(t, "invalid API key", err.Error())
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewTransientError("request failed", 500, cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		category  ErrorCategory
		retryable bool
	}{
		{
			name:      "transient is retryable",
			err:       NewTransientError("rate limited", 429, nil),
			category:  ErrorTransient,
			retryable: true,
		},
		{
			name:      "permanent is not retryable",
			err:       NewPermanentError("model not found", 404, nil),
			category:  ErrorPermanent,
			retryable: false,
		},
		{
			name:      "user input is not retryable",
			err:       NewUserInputError("malformed request", 400, nil),
			category:  ErrorUserInput,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.retryable, tt.err.Retryable())
		})
	}
}

func TestCategoryPredicates(t *testing.T) {
	transient := NewTransientError("overloaded", 529, nil)
	permanent := NewPermanentError("forbidden", 403, nil)
	user := NewUserInputError("bad request", 400, nil)
	plain := errors.New("plain error")

	t.Run("IsTransient", func(t *testing.T) {
		assert.True(t, IsTransient(transient))
		assert.False(t, IsTransient(permanent))
		assert.False(t, IsTransient(plain))
	})

	t.Run("IsPermanent", func(t *testing.T) {
		assert.True(t, IsPermanent(permanent))
		assert.False(t, IsPermanent(transient))
		assert.False(t, IsPermanent(plain))
	})

	t.Run("IsUserInput", func(t *testing.T) {
		assert.True(t, IsUserInput(user))
		assert.False(t, IsUserInput(transient))
		assert.False(t, IsUserInput(plain))
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("attempt 3: %w", transient)
		assert.True(t, IsTransient(wrapped))
	})
}

func TestStatusCodeOf(t *testing.T) {
	t.Run("returns code from categorized error", func(t *testing.T) {
		err := NewTransientError("rate limited", 429, nil)
		assert.Equal(t, 429, StatusCodeOf(err))
	})

	t.Run("returns zero for plain error", func(t *testing.T) {
		assert.Zero(t, StatusCodeOf(errors.New("plain")))
	})
}

func TestRetryAfterOf(t *testing.T) {
	t.Run("returns delay when provided", func(t *testing.T) {
		err := NewTransientErrorWithRetry("rate limited", 429, 30*time.Second, nil)
		require.Equal(t, 30*time.Second, RetryAfterOf(err))
	})

	t.Run("returns zero when absent", func(t *testing.T) {
		err := NewTransientError("rate limited", 429, nil)
		assert.Zero(t, RetryAfterOf(err))
	})
}
