package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrAccessDenied is returned when the caller is not a player
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrFieldInactive is returned when the field has been deactivated
	ErrFieldInactive = errors.New("create_booking: field is inactive")

	// ErrInvalidDate is returned when the booking date is in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotUnavailable is returned when a required hourly slot is missing
	// or already booked. The wrapped slots.UnavailableRangeError names the
	// specific hour.
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrSlotConflict is returned when a concurrent booking consumed one of
	// the requested slots between the availability check and the write.
	// The caller should retry against fresh availability data.
	ErrSlotConflict = errors.New("create_booking: slot was taken by a concurrent booking")

	// ErrInternal is returned for unexpected storage failures
	ErrInternal = errors.New("create_booking: internal error")
)
