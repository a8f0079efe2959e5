package ask

import (
	"log/slog"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/terrychangit/mcp-demo/retry"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger the session reports milestones to.
// Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRetry enables retry for chat requests. Without this option a failed
// chat request is returned immediately.
func WithRetry(cfg retry.Config) Option {
	return func(s *Session) {
		s.retry = cfg
	}
}

// WithChatOptions passes options through to the ChatProvider.
// These options are applied to every chat call the session makes.
func WithChatOptions(opts ...mcpdemo.Option) Option {
	return func(s *Session) {
		s.chatOpts = append(s.chatOpts, opts...)
	}
}

// WithModel is a convenience option to set the model for chat calls.
func WithModel(model string) Option {
	return func(s *Session) {
		s.chatOpts = append(s.chatOpts, mcpdemo.WithModel(model))
	}
}

// WithMaxTokens is a convenience option to set max tokens for chat calls.
func WithMaxTokens(n int) Option {
	return func(s *Session) {
		s.chatOpts = append(s.chatOpts, mcpdemo.WithMaxTokens(n))
	}
}

// WithTemperature is a convenience option to set temperature for chat calls.
func WithTemperature(t float64) Option {
	return func(s *Session) {
		s.chatOpts = append(s.chatOpts, mcpdemo.WithTemperature(t))
	}
}
