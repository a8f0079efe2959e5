package mcpdemo

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Tool describes a function a model or client can invoke by name.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	Description string
	// Parameters is a JSON Schema object defining the tool's parameters.
	Parameters json.RawMessage
}

// ToolCall is a request to invoke a tool.
type ToolCall struct {
	// ID identifies this call so its result can be matched back.
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON object string containing the arguments.
	Arguments string `json:"arguments"`
}

// ToolResult is the outcome of executing a tool call.
type ToolResult struct {
	// ToolCallID matches the ID from the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Content is the text-serialized result value or error message.
	Content string `json:"content"`
	// IsError indicates the content describes a failure.
	IsError bool `json:"isError,omitempty"`
}

// ToolChoice controls how the model uses tools.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide when to use tools (default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone disables tool use for the request.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces the model to use a tool.
	ToolChoiceRequired ToolChoice = "required"
)

// GenerateCallID creates a unique tool-call identifier. Used when a provider
// or transport omits one.
func GenerateCallID() string {
	return "call-" + uuid.New().String()
}

// NewToolResultMessage creates the tool-role message that carries results
// back to the model.
func NewToolResultMessage(results ...ToolResult) Message {
	return Message{
		Role:        RoleTool,
		ToolResults: results,
	}
}
