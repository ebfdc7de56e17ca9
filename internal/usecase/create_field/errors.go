package create_field

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_field: invalid input data")

	// ErrAccessDenied is returned when the caller is not an owner
	ErrAccessDenied = errors.New("create_field: access denied")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("create_field: internal error")
)
