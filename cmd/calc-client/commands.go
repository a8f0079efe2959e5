package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/spf13/cobra"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/terrychangit/mcp-demo/ask"
	"github.com/terrychangit/mcp-demo/mcp"
	"github.com/terrychangit/mcp-demo/provider/anthropic"
	"github.com/terrychangit/mcp-demo/provider/google"
	"github.com/terrychangit/mcp-demo/provider/openai"
	"github.com/terrychangit/mcp-demo/retry"
	"github.com/terrychangit/mcp-demo/tool"
)

func toolsCmd(cfg *Config) *cobra.Command {
	var showSchema bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server advertises",
		Run: func(cmd *cobra.Command, args []string) {
			registry, err := newToolSource(cmd.Context(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer registry.Close()

			tools := registry.Tools()

			fmt.Println(color.CyanString("Available Tools (%d)", len(tools)))
			fmt.Println(strings.Repeat("─", 60))
			for _, t := range tools {
				fmt.Printf("  %s\n", color.GreenString(t.Name))
				fmt.Printf("    %s\n", t.Description)
				if showSchema {
					var buf bytes.Buffer
					if err := json.Indent(&buf, t.Parameters, "    ", "  "); err == nil {
						fmt.Printf("    %s\n", buf.String())
					}
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&showSchema, "schema", "s", false, "Show parameter schemas")

	return cmd
}

func callCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> <json-arguments>",
		Short: "Invoke a single tool directly",
		Long: `Invoke a tool by name with a JSON arguments object.

Examples:
  calc-client call add '{"a": 5, "b": 3}'
  calc-client call divide '{"a": 10, "b": 4}'
  calc-client call power '{"a": 2, "b": 10}'`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			registry, err := newToolSource(cmd.Context(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer registry.Close()

			result, err := registry.Execute(cmd.Context(), mcpdemo.ToolCall{
				ID:        mcpdemo.GenerateCallID(),
				Name:      args[0],
				Arguments: args[1],
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if result.IsError {
				fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), result.Content)
				os.Exit(1)
			}
			fmt.Println(result.Content)
		},
	}
}

func askCmd(cfg *Config) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Answer a question using the calculator tools",
		Long: `Send a natural-language prompt to the configured chat provider, letting
the model invoke the calculator tools as needed.

Provider selection (first match wins): Azure OpenAI when
AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY, and AZURE_OPENAI_DEPLOYMENT
are all set, then OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_API_KEY.

Examples:
  calc-client ask "What is 8 multiplied by 9?"
  calc-client ask --model gpt-4o "What is 2 to the power of 10?"`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prompt := strings.Join(args, " ")

			if !cfg.HasProvider() {
				fmt.Fprintln(os.Stderr, "Error: no chat provider credentials found")
				fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_API_KEY, or the AZURE_OPENAI_* variables.")
				os.Exit(1)
			}

			provider, providerID, defaultModel, err := newChatProvider(cmd.Context(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if model == "" {
				model = defaultModel
			}
			logger.Info("initializing session", "provider", providerID, "model", model)

			registry, err := newToolSource(cmd.Context(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer registry.Close()

			session := ask.NewSession(provider, registry,
				ask.WithLogger(logger),
				ask.WithRetry(retry.DefaultConfig()),
				ask.WithModel(model))

			answer, err := session.Run(cmd.Context(), prompt)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			for _, inv := range answer.Invoked {
				status := color.GreenString("✓")
				if inv.Result.IsError {
					status = color.RedString("✗")
				}
				fmt.Printf("%s %s(%s) = %s\n", status, inv.Call.Name,
					color.HiBlackString(inv.Call.Arguments), inv.Result.Content)
			}
			if len(answer.Invoked) > 0 {
				fmt.Println()
			}
			fmt.Println(answer.Text)

			logger.Info("session complete",
				"tool_calls", len(answer.Invoked),
				"input_tokens", answer.Usage.InputTokens,
				"output_tokens", answer.Usage.OutputTokens)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Override the provider's default model")

	return cmd
}

// newToolSource connects to the calculator tools. An SSE URL takes
// precedence, then a stdio server command, then an in-process server.
func newToolSource(ctx context.Context, cfg *Config) (*mcp.RemoteRegistry, error) {
	switch {
	case cfg.ServerURL != "":
		logger.Info("connecting to SSE server", "url", cfg.ServerURL)
		return mcp.NewRemoteRegistrySSE(ctx, cfg.ServerURL)

	case cfg.ServerCommand != "":
		logger.Info("launching stdio server", "command", cfg.ServerCommand)
		parts := strings.Fields(cfg.ServerCommand)
		return mcp.NewRemoteRegistry(ctx, parts[0], nil, parts[1:]...)

	default:
		logger.Info("serving tools in process")
		local := tool.NewRegistry().Add(tool.ArithTools(tool.WithLogger(logger))...)
		server := mcp.NewServer(local, mcp.WithName("calc-server"), mcp.WithVersion(version))
		c, err := mcpclient.NewInProcessClient(server)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-process client: %w", err)
		}
		return mcp.NewRemoteRegistryFromClient(ctx, c)
	}
}

// newChatProvider picks a chat provider from the configured credentials and
// returns it with its identifier and default model.
func newChatProvider(ctx context.Context, cfg *Config) (mcpdemo.ChatProvider, mcpdemo.Provider, string, error) {
	switch {
	case cfg.HasAzure():
		client := openai.NewAzure(cfg.AzureEndpoint, cfg.AzureAPIKey,
			openai.WithModel(cfg.AzureDeployment),
			openai.WithAPIVersion(cfg.AzureAPIVersion))
		return client, mcpdemo.ProviderAzure, cfg.AzureDeployment, nil

	case cfg.OpenAIAPIKey != "":
		return openai.New(cfg.OpenAIAPIKey), mcpdemo.ProviderOpenAI, openai.DefaultModel, nil

	case cfg.AnthropicAPIKey != "":
		return anthropic.New(cfg.AnthropicAPIKey), mcpdemo.ProviderAnthropic, anthropic.DefaultModel, nil

	case cfg.GoogleAPIKey != "":
		client, err := google.New(ctx, cfg.GoogleAPIKey)
		if err != nil {
			return nil, mcpdemo.ProviderGoogle, "", err
		}
		return client, mcpdemo.ProviderGoogle, google.DefaultModel, nil

	default:
		return nil, "", "", fmt.Errorf("no chat provider credentials configured")
	}
}
