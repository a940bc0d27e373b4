package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStarType is returned when a star type is not one of the known kinds.
	ErrInvalidStarType = errors.New("invalid star type")
)
