package slots

import (
	"errors"
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

var (
	// ErrEmptyWindow is returned for a zero-length or inverted booking window
	ErrEmptyWindow = errors.New("slots: booking window is empty")

	// ErrNotHourAligned is returned when a window boundary does not fall on a
	// whole hour. Slots are exactly one hour wide and keyed by their start
	// hour, so a non-aligned request can never match a slot.
	ErrNotHourAligned = errors.New("slots: window is not hour-aligned")

	// ErrInvalidTime is returned when a window boundary is not a valid time
	ErrInvalidTime = errors.New("slots: invalid window time")

	// ErrSlotUnavailable is returned when a required hourly slot is missing
	// or already booked. Use errors.As with *UnavailableRangeError to get the
	// offending hour range.
	ErrSlotUnavailable = errors.New("slots: slot not available")
)

// UnavailableRangeError reports the first hour of a requested window that is
// missing or unavailable. The whole window fails: availability is
// all-or-nothing.
type UnavailableRangeError struct {
	Date      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Error implements the error interface
func (e *UnavailableRangeError) Error() string {
	return fmt.Sprintf("slots: slot %s %s-%s is not available", e.Date, e.StartTime, e.EndTime)
}

// Unwrap lets callers match the error with errors.Is(err, ErrSlotUnavailable)
func (e *UnavailableRangeError) Unwrap() error {
	return ErrSlotUnavailable
}
