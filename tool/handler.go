package tool

import (
	"context"

	mcpdemo "github.com/terrychangit/mcp-demo"
)

// Handler is a function that executes a tool call and returns a result.
// The context supports cancellation and timeout.
// The call contains the tool name, ID, and arguments as a JSON string.
// Returns the result content string, or an error if execution failed.
type Handler func(ctx context.Context, call mcpdemo.ToolCall) (string, error)
