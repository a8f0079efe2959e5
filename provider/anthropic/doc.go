// Package anthropic implements [mcpdemo.ChatProvider] over the official
// Anthropic Go SDK.
//
// # Basic Usage
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//
//	messages := []mcpdemo.Message{
//	    {Role: mcpdemo.RoleUser, Content: "What is 8 multiplied by 9?"},
//	}
//
//	resp, err := client.Chat(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// # Tool Calling
//
// Tool descriptors convert to Anthropic tool definitions; tool results are
// sent back as user messages with tool_result blocks, which the conversion
// layer handles from [mcpdemo.RoleTool] messages.
//
// Errors returned by Chat are categorized (transient, permanent, user
// input) so callers can decide what is worth retrying.
package anthropic
