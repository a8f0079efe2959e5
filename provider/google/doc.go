// Package google implements [mcpdemo.ChatProvider] over the Google GenAI
// SDK (Gemini API).
//
// # Basic Usage
//
//	client, err := google.New(ctx, os.Getenv("GOOGLE_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
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
// Tool descriptors convert to Gemini function declarations; the JSON Schema
// parameter descriptions convert to genai.Schema. Gemini does not assign
// call IDs, so this package synthesizes them ("call_<index>_<name>") and
// recovers the function name from the ID when sending function responses
// back, since the API matches responses by name.
//
// Errors returned by Chat are categorized (transient, permanent, user
// input) so callers can decide what is worth retrying.
package google
