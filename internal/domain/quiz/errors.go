package quiz

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInsufficientPool indicates the pool holds fewer questions than requested.
	ErrInsufficientPool = errors.New("question pool smaller than requested count")

	// ErrInvalidCount indicates a non-positive question count.
	ErrInvalidCount = errors.New("question count must be at least 1")

	// ErrInvalidState indicates an operation was invoked in a state that does not permit it.
	ErrInvalidState = errors.New("operation not permitted in current session state")

	// ErrInvalidOption indicates a submitted answer index outside the option list.
	ErrInvalidOption = errors.New("answer option out of range")
)

// StateError reports which operation was rejected and in which state.
// It unwraps to ErrInvalidState.
type StateError struct {
	Operation string
	State     State
}

// Error implements the error interface for StateError.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s operation not permitted in state %s", e.Operation, e.State)
}

// Unwrap returns ErrInvalidState to support errors.Is.
func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

func newStateError(operation string, state State) *StateError {
	return &StateError{Operation: operation, State: state}
}
