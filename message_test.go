package mcpdemo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleConstants(t *testing.T) {
	assert.Equal(t, Role("user"), RoleUser)
	assert.Equal(t, Role("assistant"), RoleAssistant)
	assert.Equal(t, Role("system"), RoleSystem)
	assert.Equal(t, Role("tool"), RoleTool)
}

func TestMessageStruct(t *testing.T) {
	t.Run("user message carries content", func(t *testing.T) {
		msg := Message{Role: RoleUser, Content: "What is 15 plus 27?"}

		assert.Equal(t, RoleUser, msg.Role)
		assert.Equal(t, "What is 15 plus 27?", msg.Content)
		assert.Empty(t, msg.ToolCalls)
		assert.Empty(t, msg.ToolResults)
	})

	t.Run("assistant message carries tool calls", func(t *testing.T) {
		msg := Message{
			Role: RoleAssistant,
			ToolCalls: []ToolCall{
				{ID: "call_1", Name: "add", Arguments: `{"a":15,"b":27}`},
			},
		}

		assert.Equal(t, RoleAssistant, msg.Role)
		assert.Len(t, msg.ToolCalls, 1)
		assert.Equal(t, "add", msg.ToolCalls[0].Name)
	})
}

func TestUsageAdd(t *testing.T) {
	tests := []struct {
		name       string
		base       Usage
		other      Usage
		wantInput  int
		wantOutput int
	}{
		{
			name:       "accumulates both fields",
			base:       Usage{InputTokens: 10, OutputTokens: 5},
			other:      Usage{InputTokens: 20, OutputTokens: 7},
			wantInput:  30,
			wantOutput: 12,
		},
		{
			name:       "adding zero leaves usage unchanged",
			base:       Usage{InputTokens: 10, OutputTokens: 5},
			other:      Usage{},
			wantInput:  10,
			wantOutput: 5,
		},
		{
			name:       "accumulates into zero value",
			base:       Usage{},
			other:      Usage{InputTokens: 3, OutputTokens: 4},
			wantInput:  3,
			wantOutput: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.base
			u.Add(tt.other)
			assert.Equal(t, tt.wantInput, u.InputTokens)
			assert.Equal(t, tt.wantOutput, u.OutputTokens)
		})
	}
}
