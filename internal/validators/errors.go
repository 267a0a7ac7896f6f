package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches every [*ValidationError] via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned when a validator receives a value it
	// has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when field scoping names a field the
	// validated type does not declare.
	ErrUnknownField = errors.New("unknown field for validation")
)

// ValidationError collects every rule violation found in one value.
type ValidationError struct {
	Messages []string
}

// Error joins the violation messages with ", ".
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
