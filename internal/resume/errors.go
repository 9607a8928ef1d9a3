package resume

import "errors"

var (
	// ErrNameRequired is returned when a non-summary request has no name.
	ErrNameRequired = errors.New("Name is required")

	// ErrEmailRequired is returned when a non-summary request has no email.
	ErrEmailRequired = errors.New("Email is required")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeGeneration = "generation_error"
	ErrorCodeInternal   = "internal_error"
)
