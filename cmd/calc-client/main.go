// Command calc-client talks to the calculator MCP server: it lists the
// advertised tools, invokes them directly, and answers natural-language
// questions by letting a chat model drive the tools.
//
// By default the tools are served in process, so the client works standalone.
// Set CALC_SERVER_COMMAND (or --server) to launch a server subprocess over
// stdio, or CALC_SERVER_URL (or --sse) to connect to a running SSE server.
//
// The ask command needs chat provider credentials. The first match wins:
// Azure OpenAI (AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY, and
// AZURE_OPENAI_DEPLOYMENT all set), then OPENAI_API_KEY, ANTHROPIC_API_KEY,
// GOOGLE_API_KEY. A .env file in the working directory is loaded first.
//
// Environment variables:
//
//	CALC_SERVER_COMMAND      stdio server command (default: in process)
//	CALC_SERVER_URL          SSE server URL, e.g. http://localhost:8080/sse
//	CALC_LOG_LEVEL           debug, info, warn, error (default: info)
//	AZURE_OPENAI_ENDPOINT    Azure OpenAI endpoint
//	AZURE_OPENAI_API_KEY     Azure OpenAI API key
//	AZURE_OPENAI_DEPLOYMENT  Azure deployment name, used as the model
//	AZURE_OPENAI_API_VERSION Azure API version (default: 2024-02-15-preview)
//	OPENAI_API_KEY           OpenAI API key
//	ANTHROPIC_API_KEY        Anthropic API key
//	GOOGLE_API_KEY           Google Gemini API key
//
// Usage:
//
//	calc-client tools
//	calc-client call add '{"a": 5, "b": 3}'
//	calc-client ask "What is 8 multiplied by 9?"
//	calc-client --server ./calc-server tools
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
	logger  *slog.Logger
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger = newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "calc-client",
		Short: "Client for the calculator MCP server",
		Long: `calc-client discovers and invokes the tools of the calculator MCP server.

Without --server or --sse the tools are served in process.

Use 'calc-client tools' to list the available tools.
Use 'calc-client call' to invoke one directly.
Use 'calc-client ask' to let a chat model drive the tools.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerCommand, "server", cfg.ServerCommand,
		"launch an MCP server subprocess over stdio (e.g. ./calc-server)")
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "sse", cfg.ServerURL,
		"connect to a running SSE server (e.g. http://localhost:8080/sse)")

	rootCmd.AddCommand(toolsCmd(cfg), callCmd(cfg), askCmd(cfg), versionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show calc-client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("calc-client version %s\n", version)
		},
	}
}

func newLogger(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
