package update_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("update_availability: invalid input data")

	// ErrAccessDenied is returned when the caller does not own the field
	ErrAccessDenied = errors.New("update_availability: access denied")

	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("update_availability: field not found")

	// ErrSlotHeldByBooking is returned when the edit would reopen a slot
	// that an active booking still holds
	ErrSlotHeldByBooking = errors.New("update_availability: slot is held by an active booking")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("update_availability: internal error")
)
