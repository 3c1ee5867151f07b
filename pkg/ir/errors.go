package ir

import "fmt"

// UnsupportedTypeError is returned when a schema primitive type tag has no
// mapping in the selected target
type UnsupportedTypeError struct {
	// Type is the offending schema type tag (e.g. "object", "null")
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported schema type: %q", e.Type)
}

// MalformedSchemaError is returned when a component expected to be an
// object-shaped schema is a bare reference or otherwise not resolvable
type MalformedSchemaError struct {
	Schema string
	Reason string
}

func (e *MalformedSchemaError) Error() string {
	return fmt.Sprintf("malformed schema %q: %s", e.Schema, e.Reason)
}

// RenderError wraps a failure inside a target's template expansion
type RenderError struct {
	Target string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s render failed: %v", e.Target, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
