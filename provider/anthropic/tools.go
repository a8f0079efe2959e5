package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	mcpdemo "github.com/terrychangit/mcp-demo"
)

func convertTools(tools []mcpdemo.Tool) []anthropic.ToolUnionParam {
	if len(tools) == 0 {
		return nil
	}
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		var schema map[string]any
		if len(t.Parameters) > 0 {
			json.Unmarshal(t.Parameters, &schema)
		}

		// The SDK wants required as []string, not []any
		var required []string
		if reqVal, ok := schema["required"].([]any); ok {
			for _, r := range reqVal {
				if s, ok := r.(string); ok {
					required = append(required, s)
				}
			}
		}

		inputSchema := anthropic.ToolInputSchemaParam{
			Properties: schema["properties"],
			Required:   required,
		}

		toolParam := anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: inputSchema,
		}

		result[i] = anthropic.ToolUnionParam{
			OfTool: &toolParam,
		}
	}
	return result
}

func convertToolChoice(choice mcpdemo.ToolChoice) anthropic.ToolChoiceUnionParam {
	switch choice {
	case mcpdemo.ToolChoiceNone:
		return anthropic.ToolChoiceUnionParam{
			OfNone: &anthropic.ToolChoiceNoneParam{},
		}
	case mcpdemo.ToolChoiceRequired:
		return anthropic.ToolChoiceUnionParam{
			OfAny: &anthropic.ToolChoiceAnyParam{},
		}
	default:
		return anthropic.ToolChoiceUnionParam{
			OfAuto: &anthropic.ToolChoiceAutoParam{},
		}
	}
}

func extractToolCalls(content []anthropic.ContentBlockUnion) []mcpdemo.ToolCall {
	var calls []mcpdemo.ToolCall
	for _, block := range content {
		if block.Type == "tool_use" {
			calls = append(calls, mcpdemo.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	return calls
}
