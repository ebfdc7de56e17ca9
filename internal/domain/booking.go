package domain

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Booking represents a player's reservation of one or more contiguous hourly
// slots on a field. TotalCost is the sum of the consumed slots' individual
// prices, which vary per slot; it is not derived from the field's hourly rate.
type Booking struct {
	ID            int64
	UserID        int64
	FieldID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	TotalCost     int64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booked window has been played out
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// FieldBookingsFilter describes the owner-facing booking listing query
type FieldBookingsFilter struct {
	FieldID         int64          // Required
	StartDate       *time.Time     // Period start (optional)
	EndDate         *time.Time     // Period end (optional)
	Status          *BookingStatus // Status filter (optional)
	IncludeInactive bool           // Whether to include cancelled bookings
}

// ValidBookingStatus reports whether s is one of the known booking statuses
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the known payment statuses
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}
