// Package models holds the booking service's request and response shapes
// and their conversions to and from domain types.
package models

import (
	"fmt"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// BookingResponse is one booking as served to API consumers
type BookingResponse struct {
	ID                 int64            `json:"id"`
	UserID             int64            `json:"userId"`
	FieldID            int64            `json:"fieldId"`
	BookingDate        string           `json:"bookingDate"`
	StartTime          types.TimeString `json:"startTime"`
	EndTime            types.TimeString `json:"endTime"`
	DurationHours      int              `json:"durationHours"`
	TotalCost          int64            `json:"totalCost"`
	Status             string           `json:"status"`
	PaymentStatus      string           `json:"paymentStatus"`
	Notes              *string          `json:"notes,omitempty"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time       `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// BookingListResponse is a list of bookings with its size
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetUserBookingsRequest is the player-facing history query
type GetUserBookingsRequest struct {
	UserID int64
	Status *string // Optional status filter
}

// GetFieldBookingsRequest is the owner-facing booking listing query
type GetFieldBookingsRequest struct {
	FieldID         int64
	UserID          int64 // Authenticated caller, must own the field
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into the storage filter
func (r *GetFieldBookingsRequest) ToDomainFilter() (domain.FieldBookingsFilter, error) {
	filter := domain.FieldBookingsFilter{
		FieldID:         r.FieldID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return domain.FieldBookingsFilter{}, fmt.Errorf("endDate is before startDate")
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.FieldBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus parses a status string into the domain type
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidBookingStatus(status) {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// FromDomainBooking converts a domain booking to the response shape
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		FieldID:            b.FieldID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		DurationHours:      b.DurationHours,
		TotalCost:          b.TotalCost,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
