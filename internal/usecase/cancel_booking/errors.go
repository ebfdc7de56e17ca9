package cancel_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied is returned when the caller is neither the booking's
	// author nor the owner of the booked field
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrAlreadyCancelled is returned when the booking is already cancelled
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrNotCancellable is returned when the booking is in a terminal state
	// that cannot be cancelled
	ErrNotCancellable = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("cancel_booking: internal error")
)
