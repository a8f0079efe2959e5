package google

import (
	"errors"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"google.golang.org/genai"
)

// wrapError attaches a category to Gemini API errors so the retry layer can
// tell transient failures from permanent ones. genai.APIError does not expose
// response headers, so Retry-After hints are never available here.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// Likely a network error; the retry heuristics handle those.
		return err
	}

	code := apiErr.Code
	msg := err.Error()

	switch categorizeStatusCode(code) {
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
