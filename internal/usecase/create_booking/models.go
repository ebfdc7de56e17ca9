package create_booking

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// Request is the booking creation request after boundary parsing
type Request struct {
	UserID    int64            // Authenticated caller
	Role      domain.Role      // Caller role, re-checked defensively
	FieldID   int64            // Target field
	Date      time.Time        // Booking date (no time component)
	StartTime types.TimeString // Window start, "HH:00"
	EndTime   types.TimeString // Window end, "HH:00", same day
	Notes     *string          // Optional notes
}

// Response is the persisted booking returned to the caller
type Response struct {
	ID            int64
	UserID        int64
	FieldID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	TotalCost     int64
	Status        string
	PaymentStatus string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		UserID:        b.UserID,
		FieldID:       b.FieldID,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DurationHours: b.DurationHours,
		TotalCost:     b.TotalCost,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
