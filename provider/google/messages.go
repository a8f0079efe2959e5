package google

import (
	"encoding/json"
	"strings"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"google.golang.org/genai"
)

// convertMessages converts messages to genai contents. System messages are
// collected into a separate content for GenerateContentConfig's
// SystemInstruction field rather than being inlined into the conversation.
func convertMessages(messages []mcpdemo.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var systemParts []*genai.Part

	for _, msg := range messages {
		if msg.Role == mcpdemo.RoleSystem {
			if msg.Content != "" {
				systemParts = append(systemParts, &genai.Part{Text: msg.Content})
			}
			continue
		}

		role := "user"
		if msg.Role == mcpdemo.RoleAssistant {
			role = "model"
		}

		var parts []*genai.Part
		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		// Assistant tool calls
		for _, tc := range msg.ToolCalls {
			var args map[string]any
			json.Unmarshal([]byte(tc.Arguments), &args)
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		// Tool results, matched by function name on the Gemini side
		for _, tr := range msg.ToolResults {
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				result = map[string]any{"result": tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     functionNameFromCallID(tr.ToolCallID),
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}

	return contents, system
}

// functionNameFromCallID recovers the function name from a synthesized call
// ID of the form "call_<index>_<name>". Gemini matches function responses
// by name, not ID. IDs in any other shape pass through unchanged.
func functionNameFromCallID(id string) string {
	if parts := strings.SplitN(id, "_", 3); len(parts) == 3 && parts[0] == "call" {
		return parts[2]
	}
	return id
}
