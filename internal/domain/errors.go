package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped with a more specific error.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or empty.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownResourceKind is returned when a resource name does not map to a ResourceKind.
	ErrUnknownResourceKind = errors.New("unknown resource kind")

	// ErrInvalidRole is returned for a role outside the supported set.
	ErrInvalidRole = errors.New("invalid role")
)
