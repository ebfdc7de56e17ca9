package cancel_booking

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// Request identifies the booking to cancel and the caller
type Request struct {
	BookingID int64
	UserID    int64       // Authenticated caller
	Role      domain.Role // Caller role
	Reason    *string     // Optional cancellation reason
}

// Response is the cancelled booking
type Response struct {
	ID                 int64
	UserID             int64
	FieldID            int64
	BookingDate        time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	Status             string
	CancellationReason *string
	CancelledAt        *time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:                 b.ID,
		UserID:             b.UserID,
		FieldID:            b.FieldID,
		BookingDate:        b.BookingDate,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
	}
}
