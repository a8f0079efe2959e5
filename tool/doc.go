// Package tool provides the invocation gateway: a registry that maps tool
// names to handlers and dispatches calls to them.
//
// A [Registry] holds tool descriptors alongside their handlers. Lookups,
// listings, and dispatch are safe for concurrent use. Unknown names fail with
// [ErrToolNotFound]; handler failures are captured into the returned
// ToolResult so a model-mediated caller can observe them and recover.
//
// # Basic Usage
//
//	registry := tool.NewRegistry().Add(tool.ArithTools()...)
//
//	result, err := registry.Execute(ctx, mcpdemo.ToolCall{
//	    ID:        "call_1",
//	    Name:      "add",
//	    Arguments: `{"a": 5, "b": 3}`,
//	})
//
// # Arithmetic Tools
//
// [ArithTools] returns the built-in arithmetic tool set: add, subtract,
// multiply, divide, and power. Each tool validates its arguments before
// computing and reports successes and failures to an injected logger:
//
//	regs := tool.ArithTools(tool.WithLogger(logger))
package tool
