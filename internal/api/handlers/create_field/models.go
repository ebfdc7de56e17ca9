package create_field

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	createField "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_field"
)

// LocationRequest is the address block of the request
type LocationRequest struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateFieldRequest HTTP request model
type CreateFieldRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SportType   string          `json:"sportType"`
	Location    LocationRequest `json:"location"`
	HourlyRate  int64           `json:"hourlyRate"`
	Currency    string          `json:"currency,omitempty"`
}

// FieldResponse HTTP response model
type FieldResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SportType   string          `json:"sportType"`
	Location    LocationRequest `json:"location"`
	HourlyRate  int64           `json:"hourlyRate"`
	Currency    string          `json:"currency"`
	OwnerID     int64           `json:"ownerId"`
	IsActive    bool            `json:"isActive"`
	SlotsSeeded int             `json:"slotsSeeded"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateFieldRequest) ToUseCaseRequest(identity middleware.Identity) *createField.Request {
	return &createField.Request{
		OwnerID:     identity.UserID,
		Role:        identity.Role,
		Name:        r.Name,
		Description: r.Description,
		SportType:   domain.SportType(r.SportType),
		Location: domain.Location{
			Address:   r.Location.Address,
			City:      r.Location.City,
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
		},
		HourlyRate: r.HourlyRate,
		Currency:   r.Currency,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createField.Response) *FieldResponse {
	return &FieldResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		SportType:   string(resp.SportType),
		Location: LocationRequest{
			Address:   resp.Location.Address,
			City:      resp.Location.City,
			Latitude:  resp.Location.Latitude,
			Longitude: resp.Location.Longitude,
		},
		HourlyRate:  resp.Pricing.HourlyRate,
		Currency:    resp.Pricing.Currency,
		OwnerID:     resp.OwnerID,
		IsActive:    resp.IsActive,
		SlotsSeeded: resp.SlotsSeeded,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
