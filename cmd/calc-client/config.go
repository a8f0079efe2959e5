package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/terrychangit/mcp-demo/provider/openai"
)

// Config holds client configuration loaded from environment variables.
type Config struct {
	// ServerCommand launches the calculator server as a stdio subprocess,
	// including any arguments (for example "./calc-server"). When empty and
	// ServerURL is also empty, the tools are served in process.
	ServerCommand string
	// ServerURL connects to a running SSE server instead of launching one.
	ServerURL string
	// LogLevel controls log verbosity: debug, info, warn, error.
	LogLevel string

	// Azure OpenAI credentials. Azure is selected only when endpoint, key,
	// and deployment are all present.
	AzureEndpoint   string
	AzureAPIKey     string
	AzureDeployment string
	AzureAPIVersion string

	OpenAIAPIKey    string
	AnthropicAPIKey string
	GoogleAPIKey    string
}

// LoadConfig reads configuration from environment variables. A .env file in
// the working directory is loaded first if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerCommand: os.Getenv("CALC_SERVER_COMMAND"),
		ServerURL:     os.Getenv("CALC_SERVER_URL"),
		LogLevel:      getEnvOrDefault("CALC_LOG_LEVEL", "info"),

		AzureEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureAPIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureDeployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		AzureAPIVersion: getEnvOrDefault("AZURE_OPENAI_API_VERSION", openai.DefaultAzureAPIVersion),

		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.ServerCommand != "" && c.ServerURL != "" {
		return fmt.Errorf("CALC_SERVER_COMMAND and CALC_SERVER_URL are mutually exclusive")
	}
	return nil
}

// HasAzure reports whether the full Azure OpenAI credential set is present.
func (c *Config) HasAzure() bool {
	return c.AzureEndpoint != "" && c.AzureAPIKey != "" && c.AzureDeployment != ""
}

// HasProvider reports whether any chat provider credentials are configured.
func (c *Config) HasProvider() bool {
	return c.HasAzure() || c.OpenAIAPIKey != "" || c.AnthropicAPIKey != "" || c.GoogleAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
