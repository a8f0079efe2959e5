package mcp

import (
	"context"
	"fmt"
	"sort"
	"sync"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// RemoteRegistry provides access to the tools of an MCP server. It mirrors
// the discovery and execution surface of [tool.Registry] but proxies every
// invocation to the remote server.
//
// RemoteRegistry is safe for concurrent use. The tool list is cached locally
// and can be re-fetched with [RemoteRegistry.Refresh].
type RemoteRegistry struct {
	client *client.Client
	mu     sync.RWMutex
	tools  map[string]mcpdemo.Tool
}

// NewRemoteRegistry connects to an MCP server launched as a subprocess over
// stdio. The command is the server executable and args are passed to it.
//
// Example:
//
//	registry, err := mcp.NewRemoteRegistry(ctx, "./calc-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer registry.Close()
func NewRemoteRegistry(ctx context.Context, command string, env []string, args ...string) (*RemoteRegistry, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}

	return newRemoteRegistryFromClient(ctx, c)
}

// NewRemoteRegistrySSE connects to an MCP server over SSE.
//
// Example:
//
//	registry, err := mcp.NewRemoteRegistrySSE(ctx, "http://localhost:8080/sse")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer registry.Close()
func NewRemoteRegistrySSE(ctx context.Context, baseURL string) (*RemoteRegistry, error) {
	c, err := client.NewSSEMCPClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE MCP client: %w", err)
	}

	return newRemoteRegistryFromClient(ctx, c)
}

// NewRemoteRegistryFromClient creates a RemoteRegistry from an existing MCP
// client, for example an in-process client in tests. The client is started,
// the session initialized, and the tool list fetched.
func NewRemoteRegistryFromClient(ctx context.Context, c *client.Client) (*RemoteRegistry, error) {
	return newRemoteRegistryFromClient(ctx, c)
}

func newRemoteRegistryFromClient(ctx context.Context, c *client.Client) (*RemoteRegistry, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "calc-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	r := &RemoteRegistry{
		client: c,
		tools:  make(map[string]mcpdemo.Tool),
	}

	if err := r.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	return r, nil
}

// Close closes the connection to the MCP server.
func (r *RemoteRegistry) Close() error {
	return r.client.Close()
}

// Refresh fetches the current tool list from the MCP server, replacing the
// cached descriptors.
func (r *RemoteRegistry) Refresh(ctx context.Context) error {
	result, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools = make(map[string]mcpdemo.Tool, len(result.Tools))
	for _, t := range result.Tools {
		r.tools[t.Name] = FromMCPTool(t)
	}

	return nil
}

// Tools returns the descriptors of all remote tools, sorted by name.
func (r *RemoteRegistry) Tools() []mcpdemo.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]mcpdemo.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// GetTool retrieves a remote tool descriptor by name.
func (r *RemoteRegistry) GetTool(name string) (mcpdemo.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// Names returns the names of all remote tools, sorted.
func (r *RemoteRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of remote tools.
func (r *RemoteRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Has returns true if the remote server advertises a tool with the given name.
func (r *RemoteRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Execute invokes a tool on the remote MCP server. Transport failures are
// reported as error results rather than errors, matching the behavior of
// [tool.Registry.Execute] for handler failures.
func (r *RemoteRegistry) Execute(ctx context.Context, call mcpdemo.ToolCall) (mcpdemo.ToolResult, error) {
	req := ToMCPCallToolRequest(call)

	result, err := r.client.CallTool(ctx, req)
	if err != nil {
		return mcpdemo.ToolResult{
			ToolCallID: call.ID,
			Content:    err.Error(),
			IsError:    true,
		}, nil
	}

	return FromMCPCallToolResult(call.ID, result), nil
}
