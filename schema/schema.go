package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Builder is the interface implemented by all schema builders.
type Builder interface {
	// Build serializes the schema to json.RawMessage.
	// Returns an error if the schema is invalid.
	Build() (json.RawMessage, error)

	// MustBuild is like Build but panics on error.
	MustBuild() json.RawMessage

	// schema returns the internal representation for composition.
	schema() *schemaNode
}

// schemaNode is the internal representation of a JSON Schema.
type schemaNode struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Numeric constraints
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object constraints
	Properties           map[string]*schemaNode `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`
}

// ErrInvalidRange is returned when a minimum exceeds its maximum.
var ErrInvalidRange = errors.New("schema: minimum exceeds maximum")

// ValidationError represents a schema validation failure.
type ValidationError struct {
	Field   string // The field name (for objects)
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema: field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("schema: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validate checks the schema for internal consistency.
func (s *schemaNode) validate() error {
	switch s.Type {
	case "integer", "number":
		if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
			return &ValidationError{
				Message: "minimum exceeds maximum",
				Err:     ErrInvalidRange,
			}
		}

	case "object":
		for name, prop := range s.Properties {
			if err := prop.validate(); err != nil {
				return &ValidationError{
					Field:   name,
					Message: err.Error(),
					Err:     err,
				}
			}
		}
	}
	return nil
}

// ptr returns a pointer to the value.
func ptr[T any](v T) *T {
	return &v
}
