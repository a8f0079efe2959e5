package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	mcpdemo "github.com/terrychangit/mcp-demo"
	"github.com/terrychangit/mcp-demo/calc"
	"github.com/terrychangit/mcp-demo/schema"
)

// ArithToolOption configures the arithmetic tool set.
type ArithToolOption func(*arithToolConfig)

type arithToolConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger the arithmetic tools report to.
// Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) ArithToolOption {
	return func(c *arithToolConfig) {
		c.logger = logger
	}
}

func applyArithOpts(opts []ArithToolOption) *arithToolConfig {
	cfg := &arithToolConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ArithTools returns the arithmetic tool set: add, subtract, multiply,
// divide, and power. Each tool takes two required number arguments, validates
// them before computing, and returns the result as text. Failures surface the
// calc error taxonomy: division by zero, overflow, out-of-range values, and
// undefined results are reported as distinct, typed failures.
//
// Logging is observational only and never changes a result: successes are
// logged with inputs and result, failures with the error, each once.
func ArithTools(opts ...ArithToolOption) []Registration {
	cfg := applyArithOpts(opts)

	return []Registration{
		WithHandler("add", "Add two numbers together.",
			numberPairSchema("a", "First number to add", "b", "Second number to add"),
			arithHandler(cfg, "add", "a", "b", calc.Add)),
		WithHandler("subtract", "Subtract the second number from the first.",
			numberPairSchema("a", "Number to subtract from", "b", "Number to subtract"),
			arithHandler(cfg, "subtract", "a", "b", calc.Subtract)),
		WithHandler("multiply", "Multiply two numbers together.",
			numberPairSchema("a", "First number to multiply", "b", "Second number to multiply"),
			arithHandler(cfg, "multiply", "a", "b", calc.Multiply)),
		WithHandler("divide", "Divide the first number by the second.",
			numberPairSchema("a", "Dividend", "b", "Divisor, must not be zero"),
			arithHandler(cfg, "divide", "a", "b", calc.Divide)),
		WithHandler("power", "Raise a base to the power of an exponent. Negative and fractional exponents are supported.",
			numberPairSchema("base", "The base", "exponent", "The exponent, magnitude at most 1000"),
			arithHandler(cfg, "power", "base", "exponent", calc.Pow)),
	}
}

// numberPairSchema declares two required number parameters, advertising the
// accepted magnitude bound.
func numberPairSchema(p1, d1, p2, d2 string) json.RawMessage {
	return schema.Object().
		Field(p1, schema.Number().Desc(d1).Min(-calc.MaxMagnitude).Max(calc.MaxMagnitude).Required()).
		Field(p2, schema.Number().Desc(d2).Min(-calc.MaxMagnitude).Max(calc.MaxMagnitude).Required()).
		MustBuild()
}

// arithHandler adapts a binary calc operation into a Handler: decode the
// argument object, map both named parameters, compute, serialize.
func arithHandler(cfg *arithToolConfig, name, p1, p2 string, op func(a, b float64) (float64, error)) Handler {
	return func(ctx context.Context, call mcpdemo.ToolCall) (string, error) {
		args, err := decodeArgs(call.Arguments)
		if err != nil {
			cfg.logger.Error("tool call rejected", "tool", name, "error", err)
			return "", err
		}

		a, err := argNumber(args, name, p1)
		if err != nil {
			cfg.logger.Error("tool call rejected", "tool", name, "error", err)
			return "", err
		}
		b, err := argNumber(args, name, p2)
		if err != nil {
			cfg.logger.Error("tool call rejected", "tool", name, "error", err)
			return "", err
		}

		result, err := op(a, b)
		if err != nil {
			cfg.logger.Error("tool call failed", "tool", name, p1, a, p2, b, "error", err)
			return "", err
		}

		text := strconv.FormatFloat(result, 'g', -1, 64)
		cfg.logger.Info("tool call succeeded", "tool", name, p1, a, p2, b, "result", text)
		return text, nil
	}
}

// decodeArgs parses a JSON argument object. Numbers are kept as json.Number
// so that literals too large for float64 are classified as range violations
// rather than decode failures.
func decodeArgs(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	args := make(map[string]any)
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("tool: invalid arguments: %w", err)
	}
	return args, nil
}

// argNumber maps a named argument to a validated float64. A missing key fails
// before any arithmetic runs.
func argNumber(args map[string]any, toolName, param string) (float64, error) {
	v, ok := args[param]
	if !ok {
		return 0, &ErrMissingArgument{Tool: toolName, Param: param}
	}
	return calc.ValidateNumber(v, param)
}
