package metabolic

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only failure the calculator reports. Use errors.As with
// *InputError to find out which field failed and why.
var ErrInvalidInput = errors.New("invalid input")

// InputErrorKind tells a non-numeric value apart from one that is not positive.
type InputErrorKind int

const (
	NotNumeric InputErrorKind = iota
	NonPositive
)

// Message returns the user-facing text for the kind.
func (k InputErrorKind) Message() string {
	switch k {
	case NonPositive:
		return "All values must be greater than 0."
	default:
		return "Please enter numeric values only."
	}
}

// InputError describes a rejected measurement.
type InputError struct {
	Field string
	Value string
	Kind  InputErrorKind
}

func (e *InputError) Error() string {
	switch e.Kind {
	case NonPositive:
		return fmt.Sprintf("%s: %s must be greater than 0", ErrInvalidInput, e.Field)
	default:
		return fmt.Sprintf("%s: %s is not a number (%q)", ErrInvalidInput, e.Field, e.Value)
	}
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
