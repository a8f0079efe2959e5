package openai

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/openai/openai-go"
	mcpdemo "github.com/terrychangit/mcp-demo"
)

// wrapError categorizes an OpenAI SDK error, extracting the status code and
// any Retry-After hint so the retry layer can classify it without touching
// SDK types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Likely a network error; the retry heuristics handle those
		return err
	}

	code := apiErr.StatusCode
	category := categorizeStatusCode(code)
	retryAfter := parseRetryAfter(apiErr.Response)

	msg := err.Error()
	if retryAfter > 0 {
		return mcpdemo.NewTransientErrorWithRetry(msg, code, retryAfter, err)
	}

	switch category {
	case mcpdemo.ErrorTransient:
		return mcpdemo.NewTransientError(msg, code, err)
	case mcpdemo.ErrorPermanent:
		return mcpdemo.NewPermanentError(msg, code, err)
	case mcpdemo.ErrorUserInput:
		return mcpdemo.NewUserInputError(msg, code, err)
	default:
		return err
	}
}

// categorizeStatusCode determines the error category from an HTTP status code.
func categorizeStatusCode(code int) mcpdemo.ErrorCategory {
	switch {
	case code == 429:
		return mcpdemo.ErrorTransient
	case code >= 500 && code < 600:
		return mcpdemo.ErrorTransient
	case code == 401 || code == 403:
		return mcpdemo.ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return mcpdemo.ErrorUserInput
	default:
		return mcpdemo.ErrorPermanent
	}
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is absent or unparseable.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// RFC 7231 HTTP-date form
	if t, err := http.ParseTime(header); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}
