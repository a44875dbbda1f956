package training

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a formula would divide by a zero
	// duration or height.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotImplemented is returned by the base Training calorie formula.
	ErrNotImplemented = errors.New("spent calories not implemented for base training")

	// ErrInvalidValue is returned by Read for non-finite values and for count
	// fields that are negative or fractional.
	ErrInvalidValue = errors.New("invalid value")
)

// UnknownWorkoutTypeError reports a workout code Read does not recognise.
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Code)
}

// ArgumentCountError reports a data slice whose length does not match the
// number of fields of the workout kind.
type ArgumentCountError struct {
	Code     string
	Expected int
	Actual   int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("workout %q takes %d values, got %d", e.Code, e.Expected, e.Actual)
}
