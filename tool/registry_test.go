package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpdemo "github.com/terrychangit/mcp-demo"
)

func echoHandler(content string) Handler {
	return func(ctx context.Context, call mcpdemo.ToolCall) (string, error) {
		return content, nil
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Run("registers a tool", func(t *testing.T) {
		registry := NewRegistry()
		err := registry.Register(mcpdemo.Tool{Name: "ping", Description: "Check liveness"}, echoHandler("pong"))
		require.NoError(t, err)

		assert.Equal(t, 1, registry.Len())

		handler, ok := registry.Get("ping")
		assert.True(t, ok)
		assert.NotNil(t, handler)

		tool, ok := registry.GetTool("ping")
		assert.True(t, ok)
		assert.Equal(t, "ping", tool.Name)
		assert.Equal(t, "Check liveness", tool.Description)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(mcpdemo.Tool{Name: "dupe"}, echoHandler("first")))

		err := registry.Register(mcpdemo.Tool{Name: "dupe"}, echoHandler("second"))
		require.Error(t, err)

		var dup *ErrToolAlreadyRegistered
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "dupe", dup.Name)
	})

	t.Run("unknown names are not found", func(t *testing.T) {
		registry := NewRegistry()

		_, ok := registry.Get("nope")
		assert.False(t, ok)

		_, ok = registry.GetTool("nope")
		assert.False(t, ok)
	})
}

func TestRegistryAdd(t *testing.T) {
	t.Run("registers multiple tools in single Add call", func(t *testing.T) {
		registry := NewRegistry().Add(
			WithHandler("first", "First tool", nil, echoHandler("1")),
			WithHandler("second", "Second tool", nil, echoHandler("2")),
		)

		assert.Equal(t, 2, registry.Len())
		assert.Contains(t, registry.Names(), "first")
		assert.Contains(t, registry.Names(), "second")
	})

	t.Run("chains multiple Add calls", func(t *testing.T) {
		registry := NewRegistry().
			Add(WithHandler("first", "First tool", nil, echoHandler("1"))).
			Add(WithHandler("second", "Second tool", nil, echoHandler("2")))

		assert.Equal(t, 2, registry.Len())
	})

	t.Run("panics on duplicate tool name", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRegistry().Add(
				WithHandler("dupe", "First", nil, echoHandler("1")),
				WithHandler("dupe", "Duplicate", nil, echoHandler("2")),
			)
		})
	})
}

func TestRegistryListings(t *testing.T) {
	registry := NewRegistry().Add(
		WithHandler("zeta", "Last", nil, echoHandler("z")),
		WithHandler("alpha", "First", nil, echoHandler("a")),
		WithHandler("mid", "Middle", nil, echoHandler("m")),
	)

	t.Run("Names is sorted", func(t *testing.T) {
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, registry.Names())
	})

	t.Run("Tools is sorted by name", func(t *testing.T) {
		tools := registry.Tools()
		require.Len(t, tools, 3)
		assert.Equal(t, "alpha", tools[0].Name)
		assert.Equal(t, "mid", tools[1].Name)
		assert.Equal(t, "zeta", tools[2].Name)
	})
}

func TestRegistryUnregister(t *testing.T) {
	registry := NewRegistry().Add(WithHandler("gone", "Temporary", nil, echoHandler("x")))
	require.Equal(t, 1, registry.Len())

	registry.Unregister("gone")
	assert.Zero(t, registry.Len())

	// Unregistering again is a no-op.
	registry.Unregister("gone")
}

func TestRegistryExecute(t *testing.T) {
	t.Run("dispatches to the handler", func(t *testing.T) {
		registry := NewRegistry().Add(
			WithHandler("greet", "Greet someone", json.RawMessage(`{"type":"object"}`),
				func(ctx context.Context, call mcpdemo.ToolCall) (string, error) {
					var args struct {
						Name string `json:"name"`
					}
					if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
						return "", err
					}
					return "Hello, " + args.Name + "!", nil
				}),
		)

		result, err := registry.Execute(context.Background(), mcpdemo.ToolCall{
			ID:        "call_123",
			Name:      "greet",
			Arguments: `{"name": "World"}`,
		})

		require.NoError(t, err)
		assert.Equal(t, "call_123", result.ToolCallID)
		assert.Equal(t, "Hello, World!", result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("unknown tool is a typed error", func(t *testing.T) {
		registry := NewRegistry()

		_, err := registry.Execute(context.Background(), mcpdemo.ToolCall{
			ID:   "call_1",
			Name: "missing",
		})

		require.Error(t, err)
		var notFound *ErrToolNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("handler failure is captured in the result", func(t *testing.T) {
		registry := NewRegistry().Add(
			WithHandler("boom", "Always fails", nil,
				func(ctx context.Context, call mcpdemo.ToolCall) (string, error) {
					return "", errors.New("kaboom")
				}),
		)

		result, err := registry.Execute(context.Background(), mcpdemo.ToolCall{
			ID:   "call_9",
			Name: "boom",
		})

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "kaboom", result.Content)
		assert.Equal(t, "call_9", result.ToolCallID)
	})
}
