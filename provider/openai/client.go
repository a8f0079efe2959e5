package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	mcpdemo "github.com/terrychangit/mcp-demo"
)

// DefaultModel is used when neither the client nor the request names one.
const DefaultModel = "gpt-4o"

// DefaultAzureAPIVersion is used when no API version is configured.
const DefaultAzureAPIVersion = "2024-02-15-preview"

// Client wraps the OpenAI SDK to implement mcpdemo.ChatProvider.
type Client struct {
	client     *openai.Client
	model      string
	apiVersion string
}

// New creates a client for the public OpenAI API.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model:      DefaultModel,
		apiVersion: DefaultAzureAPIVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	c.client = &client
	return c
}

// NewAzure creates a client for an Azure OpenAI endpoint. The model set via
// [WithModel] must be the Azure deployment name.
func NewAzure(endpoint, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model:      DefaultModel,
		apiVersion: DefaultAzureAPIVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	client := openai.NewClient(
		azure.WithEndpoint(endpoint, c.apiVersion),
		azure.WithAPIKey(apiKey),
	)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the default model (or Azure deployment name) for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithAPIVersion overrides the Azure API version. Ignored by [New].
func WithAPIVersion(version string) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []mcpdemo.Message, opts ...mcpdemo.Option) (*mcpdemo.Response, error) {
	options := mcpdemo.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	return &mcpdemo.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: mcpdemo.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		ToolCalls: extractToolCalls(resp.Choices[0].Message),
	}, nil
}

var _ mcpdemo.ChatProvider = (*Client)(nil)
