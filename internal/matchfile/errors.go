package matchfile

import "fmt"

// ParseError means a file could not be opened as the expected xlsx container
// with exactly a meta and a players sheet.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %s", e.Reason)
}

// SchemaError means the container was readable but a field, type or
// uniqueness rule of the match contract was violated.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s", e.Reason)
}

func parseErrorf(format string, args ...any) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

func schemaErrorf(format string, args ...any) error {
	return &SchemaError{Reason: fmt.Sprintf(format, args...)}
}
