package retry

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	mcpdemo "github.com/terrychangit/mcp-demo"
)

// statusCoder is implemented by SDK errors that carry an HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// IsTransient reports whether an error is transient and worth retrying.
// An explicit [mcpdemo.CategorizedError] categorization always wins. For
// uncategorized errors it falls back to heuristics:
// - rate limits (HTTP 429)
// - server errors (HTTP 5xx)
// - network timeouts
// - connection resets and refusals
// - temporary DNS failures
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce mcpdemo.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == mcpdemo.ErrorTransient
	}

	// Uncategorized SDK errors expose a status code
	var sc statusCoder
	if errors.As(err, &sc) {
		if isTransientStatusCode(sc.StatusCode()) {
			return true
		}
	}

	if isTransientNetworkError(err) {
		return true
	}

	return false
}

// isTransientStatusCode checks if an HTTP status code indicates a transient error.
func isTransientStatusCode(code int) bool {
	if code == 429 {
		return true
	}
	if code >= 500 && code < 600 {
		return true
	}
	return false
}

// isTransientNetworkError checks for network-level transient errors.
func isTransientNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && isTransientNetworkError(urlErr.Err) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary()
	}

	var syscallErr syscall.Errno
	if errors.As(err, &syscallErr) {
		switch syscallErr {
		case syscall.ECONNRESET,
			syscall.ECONNREFUSED,
			syscall.ETIMEDOUT:
			return true
		}
	}

	// Fallback on message text for errors that expose nothing structured
	errMsg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection reset",
		"connection refused",
		"timeout",
		"temporary failure",
		"service unavailable",
		"too many requests",
		"rate limit",
		"server error",
		"bad gateway",
		"gateway timeout",
	}
	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
