package cancel_booking

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	cancelBooking "github.com/Long0701/PitchSpot-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelledBookingResponse HTTP response model
type CancelledBookingResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"userId"`
	FieldID            int64   `json:"fieldId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelledBookingResponse {
	out := &CancelledBookingResponse{
		ID:                 resp.ID,
		UserID:             resp.UserID,
		FieldID:            resp.FieldID,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
	}
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &formatted
	}
	return out
}
