// Package mcpdemo provides the shared vocabulary for a small MCP tool-serving
// system: tool descriptors and calls, conversation messages, and the provider
// interface used to reach chat-completion APIs.
//
// The repository is organized around it:
//
//   - [github.com/terrychangit/mcp-demo/calc]: arithmetic operations with
//     strict input validation and a typed error taxonomy
//   - [github.com/terrychangit/mcp-demo/tool]: the tool registry that maps
//     names to handlers and dispatches invocations
//   - [github.com/terrychangit/mcp-demo/mcp]: MCP transport glue, exposing a
//     registry as a server and consuming remote servers as a registry
//   - [github.com/terrychangit/mcp-demo/ask]: a single-exchange client that
//     lets a model discover and invoke the tools
//   - [github.com/terrychangit/mcp-demo/provider]: ChatProvider
//     implementations for OpenAI (including Azure), Anthropic, and Google
//
// # Tool Calling
//
// Tools are declared as descriptors and invoked by name:
//
//	tools := []mcpdemo.Tool{
//	    {
//	        Name:        "add",
//	        Description: "Add two numbers",
//	        Parameters: json.RawMessage(`{
//	            "type": "object",
//	            "properties": {
//	                "a": {"type": "number"},
//	                "b": {"type": "number"}
//	            },
//	            "required": ["a", "b"]
//	        }`),
//	    },
//	}
//
//	resp, err := p.Chat(ctx, messages, mcpdemo.WithTools(tools))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, call := range resp.ToolCalls {
//	    fmt.Printf("tool: %s args: %s\n", call.Name, call.Arguments)
//	}
//
// Results are fed back to the model with [NewToolResultMessage].
package mcpdemo
