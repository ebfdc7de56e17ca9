package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("get_available_slots: field not found")

	// ErrFieldInactive is returned when the field has been deactivated
	ErrFieldInactive = errors.New("get_available_slots: field is inactive")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
