package sortviz

import (
	"fmt"
)

// EmptyInputError is returned by Sort when the item list has no elements.
// There is nothing to trace; no partial step sequence is produced.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "sortviz: empty input: nothing to sort"
}

// NewEmptyInputError creates an EmptyInputError
func NewEmptyInputError() error {
	return &EmptyInputError{}
}

// MissingTraitError is returned when an item involved in a comparison has no
// value for the requested trait. Detection is lazy: the error surfaces at the
// first comparison that needs the missing value, and the sort aborts with no
// partial trace. Missing traits are a caller precondition violation; re-issue
// the call with valid data.
type MissingTraitError struct {
	// Trait is the trait that was requested
	Trait Trait
	// Index is the position of the offending item in the array's
	// arrangement at the time of the failed comparison, which may differ
	// from its original position once earlier steps have moved items
	Index int
}

func (e *MissingTraitError) Error() string {
	return fmt.Sprintf("sortviz: item at index %d has no value for trait %q", e.Index, string(e.Trait))
}

// NewMissingTraitError creates a MissingTraitError for the item at index
func NewMissingTraitError(trait Trait, index int) error {
	return &MissingTraitError{Trait: trait, Index: index}
}

// UnknownAlgorithmError is returned when an Algorithm value is outside the
// closed set, or when parsing an algorithm name that does not exist.
type UnknownAlgorithmError struct {
	// Name is the string form of the unknown algorithm
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("sortviz: unknown algorithm %q", e.Name)
}

// NewUnknownAlgorithmError creates an UnknownAlgorithmError
func NewUnknownAlgorithmError(name string) error {
	return &UnknownAlgorithmError{Name: name}
}
