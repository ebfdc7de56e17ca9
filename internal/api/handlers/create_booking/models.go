package create_booking

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	createBooking "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_booking"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID     int64   `json:"fieldId"`
	BookingDate string  `json:"bookingDate"` // "2026-09-05"
	StartTime   string  `json:"startTime"`   // "14:00"
	EndTime     string  `json:"endTime"`     // "16:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	FieldID       int64   `json:"fieldId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	TotalCost     int64   `json:"totalCost"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest(identity middleware.Identity) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    identity.UserID,
		Role:      identity.Role,
		FieldID:   r.FieldID,
		Date:      bookingDate,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		FieldID:       resp.FieldID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		TotalCost:     resp.TotalCost,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
