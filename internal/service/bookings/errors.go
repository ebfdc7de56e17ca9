package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrFieldNotFound is returned when the referenced field does not exist
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied is returned when the caller may not see the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus is returned for an unknown booking status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("service: internal error")
)
