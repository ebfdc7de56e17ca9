package fields

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied is returned when the caller does not own the field
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("service: internal error")
)
