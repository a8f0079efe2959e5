// Package openai implements [mcpdemo.ChatProvider] over the official
// OpenAI Go SDK.
//
// The package supports both the public OpenAI API and Azure OpenAI
// deployments.
//
// # Basic Usage
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
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
// # Azure OpenAI
//
// Azure endpoints address models by deployment name rather than model ID:
//
//	client := openai.NewAzure(
//	    os.Getenv("AZURE_OPENAI_ENDPOINT"),
//	    os.Getenv("AZURE_OPENAI_API_KEY"),
//	    openai.WithModel(os.Getenv("AZURE_OPENAI_DEPLOYMENT")),
//	)
//
// # Tool Calling
//
// Offer tool descriptors with the request; requested invocations come back
// on [mcpdemo.Response.ToolCalls]:
//
//	resp, err := client.Chat(ctx, messages,
//	    mcpdemo.WithTools(registry.Tools()),
//	    mcpdemo.WithToolChoice(mcpdemo.ToolChoiceAuto),
//	)
//
// Errors returned by Chat are categorized (transient, permanent, user
// input) so callers can decide what is worth retrying.
package openai
