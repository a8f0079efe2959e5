// Package ask runs a single AI-mediated exchange: send a prompt with tool
// descriptors attached, execute whatever tool calls the model requests, and
// ask for the final answer with the results in context.
//
// The session is provider-agnostic. Any ChatProvider works, and tools come
// from a ToolSource, so the same session code runs against an in-process
// registry or a remote MCP server.
//
// # Basic Usage
//
// Create a session from a provider and a tool source, then run a prompt:
//
//	registry := tool.NewRegistry().Add(tool.ArithTools()...)
//	provider := openai.New(os.Getenv("OPENAI_API_KEY"))
//
//	session := ask.NewSession(provider, registry)
//	answer, err := session.Run(ctx, "What is 8 multiplied by 9?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(answer.Text)
//	for _, inv := range answer.Invoked {
//	    fmt.Printf("  used %s(%s) = %s\n", inv.Call.Name, inv.Call.Arguments, inv.Result.Content)
//	}
//
// # Remote Tools
//
// Swap the registry for a RemoteRegistry to execute calls on an MCP server:
//
//	remote, err := mcp.NewRemoteRegistry(ctx, "./calc-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer remote.Close()
//
//	session := ask.NewSession(provider, remote, ask.WithModel("gpt-4o"))
//
// # Retry
//
// Chat requests are not retried unless a retry configuration is supplied:
//
//	session := ask.NewSession(provider, registry, ask.WithRetry(retry.DefaultConfig()))
//
// Tool executions are never retried; a failed call is reported back to the
// model as an error result instead.
package ask
