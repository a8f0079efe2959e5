// Package mcp bridges the tool registry and the Model Context Protocol.
//
// The package works in both directions:
//
//   - Server: expose a [tool.Registry] as an MCP server so that MCP clients
//     can discover the registered tools and invoke them over stdio.
//   - Client: connect to an MCP server through [RemoteRegistry], which lists
//     the server's tools and proxies invocations to it.
//
// # Serving tools
//
// To serve the arithmetic tool set to MCP clients over stdio:
//
//	registry := tool.NewRegistry().Add(tool.ArithTools()...)
//
//	if err := mcp.ServeStdio(registry); err != nil {
//	    log.Fatal(err)
//	}
//
// # Consuming a server
//
// To invoke tools hosted by an MCP server subprocess:
//
//	remote, err := mcp.NewRemoteRegistry(ctx, "./calc-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer remote.Close()
//
//	result, err := remote.Execute(ctx, mcpdemo.ToolCall{
//	    Name:      "add",
//	    Arguments: `{"a": 5, "b": 3}`,
//	})
//
// RemoteRegistry exposes the same discovery and execution surface as
// [tool.Registry], so either can back an ask.Session.
package mcp

import (
	"encoding/json"
	"strings"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToMCPTool converts a local Tool descriptor to an MCP Tool.
// The descriptor's JSON Schema is carried verbatim as the MCP RawInputSchema.
func ToMCPTool(t mcpdemo.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// ToMCPTools converts a slice of local Tool descriptors to MCP Tools.
func ToMCPTools(tools []mcpdemo.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}

// FromMCPTool converts an MCP Tool to a local Tool descriptor.
// A raw schema is preferred when the server supplied one; otherwise the
// structured input schema is marshaled back to JSON.
func FromMCPTool(t mcp.Tool) mcpdemo.Tool {
	var schema json.RawMessage

	if len(t.RawInputSchema) > 0 {
		schema = t.RawInputSchema
	} else {
		data, err := json.Marshal(t.InputSchema)
		if err == nil {
			schema = data
		}
	}

	return mcpdemo.Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  schema,
	}
}

// FromMCPTools converts a slice of MCP Tools to local Tool descriptors.
func FromMCPTools(tools []mcp.Tool) []mcpdemo.Tool {
	result := make([]mcpdemo.Tool, len(tools))
	for i, t := range tools {
		result[i] = FromMCPTool(t)
	}
	return result
}

// ToMCPCallToolRequest converts a ToolCall to an MCP CallToolRequest.
// Arguments are decoded from their JSON string form; a non-JSON argument
// string is passed through as-is.
func ToMCPCallToolRequest(call mcpdemo.ToolCall) mcp.CallToolRequest {
	var args any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			args = call.Arguments
		}
	}

	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      call.Name,
			Arguments: args,
		},
	}
}

// FromMCPCallToolResult converts an MCP CallToolResult to a ToolResult,
// concatenating the text portions of the result content. A nil result is
// reported as an error result with empty content.
func FromMCPCallToolResult(callID string, result *mcp.CallToolResult) mcpdemo.ToolResult {
	if result == nil {
		return mcpdemo.ToolResult{
			ToolCallID: callID,
			Content:    "",
			IsError:    true,
		}
	}

	var textParts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			textParts = append(textParts, content.Text)
		case *mcp.TextContent:
			textParts = append(textParts, content.Text)
		default:
			// Non-text content is carried as its JSON form
			if data, err := json.Marshal(content); err == nil {
				textParts = append(textParts, string(data))
			}
		}
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			textParts = append(textParts, string(data))
		}
	}

	return mcpdemo.ToolResult{
		ToolCallID: callID,
		Content:    strings.Join(textParts, "\n"),
		IsError:    result.IsError,
	}
}

// ToMCPCallToolResult converts a ToolResult to an MCP CallToolResult.
func ToMCPCallToolResult(result mcpdemo.ToolResult) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Content)
	}
	return mcp.NewToolResultText(result.Content)
}
