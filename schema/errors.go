package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrForeignSlot is returned when a type refers to a slot its owner does not declare.
	ErrForeignSlot = errors.New("type parameter is not declared by the enclosing type")
	// ErrArity is returned when the number of type arguments does not match the declaration.
	ErrArity = errors.New("wrong number of type arguments")
	// ErrNotGeneric is returned when type arguments are given for a non-generic type.
	ErrNotGeneric = errors.New("type is not generic")
	// ErrNilType is returned when no root type is given.
	ErrNilType = errors.New("nil root type")
)

// SchemaResolutionError reports a declared type that could not be
// substituted to a valid effective type.
type SchemaResolutionError struct {
	Path string // node path, e.g. "Pair.Left"
	Type string // declared type key
	Err  error
}

func (e *SchemaResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s (declared %s): %v", e.Path, e.Type, e.Err)
}

func (e *SchemaResolutionError) Unwrap() error {
	return e.Err
}

// CycleDepthExceededError reports a path that re-entered the same type
// and binding more often than allowed.
type CycleDepthExceededError struct {
	Path   string
	Type   string
	Visits int
}

func (e *CycleDepthExceededError) Error() string {
	return fmt.Sprintf("cycle depth exceeded at %s: %s visited %d times on one path", e.Path, e.Type, e.Visits)
}
