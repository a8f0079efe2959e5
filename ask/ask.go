package ask

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/terrychangit/mcp-demo/retry"
)

// ToolSource supplies tool descriptors for discovery and executes calls
// against them. Both [github.com/terrychangit/mcp-demo/tool.Registry] and
// [github.com/terrychangit/mcp-demo/mcp.RemoteRegistry] implement it.
type ToolSource interface {
	// Tools returns the tool descriptors to offer the model.
	Tools() []mcpdemo.Tool

	// Execute runs a tool call and returns its result.
	Execute(ctx context.Context, call mcpdemo.ToolCall) (mcpdemo.ToolResult, error)
}

// Invocation pairs a tool call with the result it produced.
type Invocation struct {
	Call   mcpdemo.ToolCall
	Result mcpdemo.ToolResult
}

// Answer is the outcome of a completed exchange.
type Answer struct {
	// Text is the assistant's final reply.
	Text string

	// Invoked lists the tool calls executed during the exchange, in the
	// order the model requested them. Empty when the model answered
	// directly.
	Invoked []Invocation

	// Usage accumulates token usage across every provider call made.
	Usage mcpdemo.Usage
}

// Session answers prompts through a chat provider, executing requested tool
// calls through a ToolSource. A session is stateless between runs; each Run
// is an independent exchange.
type Session struct {
	provider mcpdemo.ChatProvider
	tools    ToolSource
	logger   *slog.Logger
	chatOpts []mcpdemo.Option
	retry    retry.Config
}

// NewSession creates a Session over the given provider and tool source.
func NewSession(provider mcpdemo.ChatProvider, tools ToolSource, opts ...Option) *Session {
	s := &Session{
		provider: provider,
		tools:    tools,
		logger:   slog.New(slog.DiscardHandler),
		retry:    retry.Disabled(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sends the prompt with the source's tools attached, executes any tool
// calls the model requests, and returns the final answer. The final
// completion is requested without tools so the model replies in text.
func (s *Session) Run(ctx context.Context, prompt string) (*Answer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt must not be blank", mcpdemo.ErrEmptyInput)
	}

	tools := s.tools.Tools()
	messages := []mcpdemo.Message{{Role: mcpdemo.RoleUser, Content: prompt}}

	s.logger.Info("sending prompt", "tools", len(tools))

	chatOpts := append([]mcpdemo.Option{
		mcpdemo.WithTools(tools),
		mcpdemo.WithToolChoice(mcpdemo.ToolChoiceAuto),
	}, s.chatOpts...)

	first, err := s.chat(ctx, messages, chatOpts)
	if err != nil {
		return nil, err
	}

	answer := &Answer{}
	answer.Usage.Add(first.Usage)

	// No tool calls means the model answered directly.
	if len(first.ToolCalls) == 0 {
		answer.Text = first.Content
		return answer, nil
	}

	s.logger.Info("processing tool calls", "count", len(first.ToolCalls))

	calls := make([]mcpdemo.ToolCall, len(first.ToolCalls))
	results := make([]mcpdemo.ToolResult, len(first.ToolCalls))

	for i, raw := range first.ToolCalls {
		call := normalizeCall(raw)
		calls[i] = call

		s.logger.Info("calling tool", "tool", call.Name, "arguments", call.Arguments)

		result, err := s.tools.Execute(ctx, call)
		if err != nil {
			// Report the failure to the model instead of aborting;
			// tool executions are never retried.
			result = mcpdemo.ToolResult{
				ToolCallID: call.ID,
				Content:    err.Error(),
				IsError:    true,
			}
		}
		if result.IsError {
			s.logger.Warn("tool call failed", "tool", call.Name, "error", result.Content)
		}

		results[i] = result
		answer.Invoked = append(answer.Invoked, Invocation{Call: call, Result: result})
	}

	// The assistant turn carries the normalized calls so result IDs match.
	messages = append(messages,
		mcpdemo.Message{
			Role:      mcpdemo.RoleAssistant,
			Content:   first.Content,
			ToolCalls: calls,
		},
		mcpdemo.NewToolResultMessage(results...),
	)

	s.logger.Info("requesting final answer")

	final, err := s.chat(ctx, messages, s.chatOpts)
	if err != nil {
		return nil, err
	}
	answer.Usage.Add(final.Usage)
	answer.Text = final.Content
	return answer, nil
}

// chat makes one provider call, retrying per the session's retry
// configuration. Retry is disabled by default.
func (s *Session) chat(ctx context.Context, messages []mcpdemo.Message, opts []mcpdemo.Option) (*mcpdemo.Response, error) {
	return retry.Do(ctx, s.retry, func() (*mcpdemo.Response, error) {
		return s.provider.Chat(ctx, messages, opts...)
	})
}

// normalizeCall fills in the gaps models leave in tool calls: a missing call
// ID gets a generated one, empty arguments become an empty object, and
// malformed argument JSON is repaired when possible. Arguments that cannot
// be repaired pass through unchanged so the gateway reports the failure as a
// result the model can see.
func normalizeCall(call mcpdemo.ToolCall) mcpdemo.ToolCall {
	if call.ID == "" {
		call.ID = mcpdemo.GenerateCallID()
	}

	if strings.TrimSpace(call.Arguments) == "" {
		call.Arguments = "{}"
		return call
	}

	if !json.Valid([]byte(call.Arguments)) {
		if repaired, err := jsonrepair.JSONRepair(call.Arguments); err == nil && json.Valid([]byte(repaired)) {
			call.Arguments = repaired
		}
	}
	return call
}
