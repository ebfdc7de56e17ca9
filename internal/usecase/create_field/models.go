package create_field

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

// Request describes the field to create
type Request struct {
	OwnerID     int64       // Authenticated caller
	Role        domain.Role // Caller role
	Name        string
	Description string
	SportType   domain.SportType
	Location    domain.Location
	HourlyRate  int64
	Currency    string // Optional, defaults to VND
}

// Response is the persisted field
type Response struct {
	ID          int64
	Name        string
	Description string
	SportType   domain.SportType
	Location    domain.Location
	Pricing     domain.Pricing
	OwnerID     int64
	IsActive    bool
	SlotsSeeded int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func fromDomain(f *domain.Field, slotsSeeded int) *Response {
	return &Response{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		SportType:   f.SportType,
		Location:    f.Location,
		Pricing:     f.Pricing,
		OwnerID:     f.OwnerID,
		IsActive:    f.IsActive,
		SlotsSeeded: slotsSeeded,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
