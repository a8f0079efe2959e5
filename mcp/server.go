package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/terrychangit/mcp-demo/tool"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server that exposes every tool in the registry.
// MCP clients can then discover the tools via tools/list and invoke them
// via tools/call.
//
// Example:
//
//	registry := tool.NewRegistry().Add(tool.ArithTools()...)
//
//	mcpServer := mcp.NewServer(registry,
//	    mcp.WithName("calc-server"),
//	    mcp.WithVersion("1.0.0"),
//	)
//
//	server.ServeStdio(mcpServer)
func NewServer(registry *tool.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "calc-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, t := range registry.Tools() {
		handler, ok := registry.Get(t.Name)
		if !ok || handler == nil {
			continue
		}
		s.AddTool(ToMCPTool(t), wrapHandler(t.Name, handler))
	}

	return s
}

// wrapHandler adapts a tool.Handler to the MCP tool handler signature.
// Handler failures become error results on the wire rather than protocol
// errors, so the caller sees the message the handler produced.
func wrapHandler(toolName string, handler tool.Handler) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var argsJSON string
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			argsJSON = string(data)
		} else {
			argsJSON = "{}"
		}

		call := mcpdemo.ToolCall{
			ID:        "", // stdio MCP invocations carry no call ID
			Name:      toolName,
			Arguments: argsJSON,
		}

		result, err := handler(ctx, call)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(result), nil
	}
}

// ServeStdio serves the registry's tools over stdin/stdout. This is the
// standard transport for MCP servers launched as subprocesses; it blocks
// until the client disconnects.
//
// Example:
//
//	registry := tool.NewRegistry().Add(tool.ArithTools()...)
//
//	if err := mcp.ServeStdio(registry); err != nil {
//	    log.Fatal(err)
//	}
func ServeStdio(registry *tool.Registry, opts ...ServerOption) error {
	s := NewServer(registry, opts...)
	return server.ServeStdio(s)
}
