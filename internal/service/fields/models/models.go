// Package models holds the field service's request and response shapes.
package models

import (
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

// LocationResponse is a field's address block
type LocationResponse struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PricingResponse is a field's base rate block
type PricingResponse struct {
	HourlyRate int64  `json:"hourlyRate"`
	Currency   string `json:"currency"`
}

// FieldResponse is one field as served to API consumers
type FieldResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	SportType   string           `json:"sportType"`
	Location    LocationResponse `json:"location"`
	Pricing     PricingResponse  `json:"pricing"`
	OwnerID     int64            `json:"ownerId"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// FieldListResponse is a page of fields
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// ListFieldsRequest is the public catalogue query
type ListFieldsRequest struct {
	City      *string
	SportType *string
	MinPrice  *int64
	MaxPrice  *int64
	Page      int
	Limit     int
}

// ToDomainFilter converts the request into the storage filter, clamping
// pagination to sane bounds.
func (r *ListFieldsRequest) ToDomainFilter() domain.FieldsFilter {
	page := r.Page
	if page < 1 {
		page = 1
	}

	limit := r.Limit
	if limit < 1 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}

	filter := domain.FieldsFilter{
		City:     r.City,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Page:     page,
		Limit:    limit,
	}

	if r.SportType != nil {
		sport := domain.SportType(*r.SportType)
		filter.SportType = &sport
	}

	return filter
}

// FromDomainField converts a domain field to the response shape
func FromDomainField(f *domain.Field) *FieldResponse {
	return &FieldResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		SportType:   string(f.SportType),
		Location: LocationResponse{
			Address:   f.Location.Address,
			City:      f.Location.City,
			Latitude:  f.Location.Latitude,
			Longitude: f.Location.Longitude,
		},
		Pricing: PricingResponse{
			HourlyRate: f.Pricing.HourlyRate,
			Currency:   f.Pricing.Currency,
		},
		OwnerID:   f.OwnerID,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// FromDomainFieldList converts a page of domain fields
func FromDomainFieldList(fields []*domain.Field, total int64, page, limit int) *FieldListResponse {
	out := make([]FieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, *FromDomainField(f))
	}
	return &FieldListResponse{
		Fields: out,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
}
