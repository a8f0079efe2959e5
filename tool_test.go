package mcpdemo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolChoiceConstants(t *testing.T) {
	assert.Equal(t, ToolChoice("auto"), ToolChoiceAuto)
	assert.Equal(t, ToolChoice("none"), ToolChoiceNone)
	assert.Equal(t, ToolChoice("required"), ToolChoiceRequired)
}

func TestGenerateCallID(t *testing.T) {
	t.Run("has call prefix", func(t *testing.T) {
		id := GenerateCallID()
		assert.True(t, strings.HasPrefix(id, "call-"))
		assert.Greater(t, len(id), len("call-"))
	})

	t.Run("generates unique values", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := GenerateCallID()
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestNewToolResultMessage(t *testing.T) {
	t.Run("creates message with single result", func(t *testing.T) {
		result := ToolResult{
			ToolCallID: "call_abc123",
			Content:    "8",
			IsError:    false,
		}

		msg := NewToolResultMessage(result)

		assert.Equal(t, RoleTool, msg.Role)
		assert.Len(t, msg.ToolResults, 1)
		assert.Equal(t, "call_abc123", msg.ToolResults[0].ToolCallID)
		assert.Equal(t, "8", msg.ToolResults[0].Content)
		assert.False(t, msg.ToolResults[0].IsError)
	})

	t.Run("creates message with multiple results", func(t *testing.T) {
		results := []ToolResult{
			{ToolCallID: "call_1", Content: "8", IsError: false},
			{ToolCallID: "call_2", Content: "-6", IsError: false},
			{ToolCallID: "call_3", Content: "division by zero is not allowed", IsError: true},
		}

		msg := NewToolResultMessage(results...)

		assert.Equal(t, RoleTool, msg.Role)
		assert.Len(t, msg.ToolResults, 3)
		assert.Equal(t, "call_1", msg.ToolResults[0].ToolCallID)
		assert.Equal(t, "call_2", msg.ToolResults[1].ToolCallID)
		assert.Equal(t, "call_3", msg.ToolResults[2].ToolCallID)
		assert.True(t, msg.ToolResults[2].IsError)
	})

	t.Run("creates message with no results", func(t *testing.T) {
		msg := NewToolResultMessage()

		assert.Equal(t, RoleTool, msg.Role)
		assert.Empty(t, msg.ToolResults)
	})
}

func TestToolStruct(t *testing.T) {
	t.Run("creates tool with parameters", func(t *testing.T) {
		params := json.RawMessage(`{
			"type": "object",
			"properties": {
				"a": {"type": "number", "description": "First addend"},
				"b": {"type": "number", "description": "Second addend"}
			},
			"required": ["a", "b"]
		}`)

		tool := Tool{
			Name:        "add",
			Description: "Add two numbers and return their sum",
			Parameters:  params,
		}

		assert.Equal(t, "add", tool.Name)
		assert.Equal(t, "Add two numbers and return their sum", tool.Description)
		assert.NotNil(t, tool.Parameters)
	})

	t.Run("creates tool without parameters", func(t *testing.T) {
		tool := Tool{
			Name:        "ping",
			Description: "Check liveness",
		}

		assert.Equal(t, "ping", tool.Name)
		assert.Nil(t, tool.Parameters)
	})
}

func TestToolCallStruct(t *testing.T) {
	t.Run("creates tool call with arguments", func(t *testing.T) {
		call := ToolCall{
			ID:        "call_xyz789",
			Name:      "divide",
			Arguments: `{"a": 5, "b": 2}`,
		}

		assert.Equal(t, "call_xyz789", call.ID)
		assert.Equal(t, "divide", call.Name)
		assert.Equal(t, `{"a": 5, "b": 2}`, call.Arguments)
	})

	t.Run("creates tool call with empty arguments", func(t *testing.T) {
		call := ToolCall{
			ID:        "call_abc",
			Name:      "ping",
			Arguments: "{}",
		}

		assert.Equal(t, "{}", call.Arguments)
	})
}

func TestToolResultStruct(t *testing.T) {
	t.Run("creates success result", func(t *testing.T) {
		result := ToolResult{
			ToolCallID: "call_123",
			Content:    "0.5",
			IsError:    false,
		}

		assert.Equal(t, "call_123", result.ToolCallID)
		assert.Equal(t, "0.5", result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("creates error result", func(t *testing.T) {
		result := ToolResult{
			ToolCallID: "call_456",
			Content:    "b must be a number",
			IsError:    true,
		}

		assert.True(t, result.IsError)
		assert.Equal(t, "b must be a number", result.Content)
	})
}
