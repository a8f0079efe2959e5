package tool

import "fmt"

// ErrToolNotFound is returned when a tool call references an unregistered tool.
type ErrToolNotFound struct {
	Name string
}

// Error returns a formatted error message including the tool name.
func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("tool: not found: %s", e.Name)
}

// ErrMissingArgument is returned when a tool call omits a required argument.
// The check runs during argument mapping, before any work executes.
type ErrMissingArgument struct {
	Tool  string
	Param string
}

// Error returns a formatted error message naming the tool and the missing argument.
func (e *ErrMissingArgument) Error() string {
	return fmt.Sprintf("tool: %s: missing required argument %q", e.Tool, e.Param)
}

// ErrToolAlreadyRegistered is returned when registering a tool with a duplicate name.
type ErrToolAlreadyRegistered struct {
	Name string
}

// Error returns a formatted error message including the duplicate tool name.
func (e *ErrToolAlreadyRegistered) Error() string {
	return fmt.Sprintf("tool: already registered: %s", e.Name)
}
