// Package schema provides a fluent API for building the JSON Schema objects
// that describe tool parameters.
//
// Schemas are constructed programmatically and validated at build time, so a
// contradictory declaration fails before it ever reaches a model or client.
//
// # Basic Usage
//
//	params := schema.Object().
//		Field("a", schema.Number().Desc("First addend").Required()).
//		Field("b", schema.Number().Desc("Second addend").Required()).
//		MustBuild()
//
// # With Tool Definitions
//
//	tool := mcpdemo.Tool{
//		Name:        "divide",
//		Description: "Divide one number by another",
//		Parameters: schema.Object().
//			Field("a", schema.Number().Desc("Dividend").Required()).
//			Field("b", schema.Number().Desc("Divisor").Required()).
//			MustBuild(),
//	}
//
// # Constraints
//
//	schema.Number().Min(-1e308).Max(1e308)
//	schema.Int().Min(1).Max(100)
//	schema.String().Enum("text", "json")
//
// # Validation
//
// Use Build() instead of MustBuild() to handle errors:
//
//	params, err := schema.Object().
//		Field("count", schema.Int().Min(10).Max(5)). // Error: min > max
//		Build()
//	if err != nil {
//		log.Fatal(err) // schema: minimum exceeds maximum
//	}
package schema
