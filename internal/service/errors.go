package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDependency indicates a constructor was handed a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")

	// ErrNilSession indicates a quiz operation was called without a session.
	ErrNilSession = errors.New("quiz session is nil")
)

// ServiceError wraps errors from the service layer with the failing operation.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_service", "load_settings")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(operation, message string, err error) error {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
