package application

import "fmt"

// NotFoundError reports that no company matches the requested identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("company %q not found", e.ID)
}

// ConflictError reports a uniqueness clash on a carrier field.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("company %s %q is already registered", e.Field, e.Value)
}
