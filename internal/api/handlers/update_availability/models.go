package update_availability

import (
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	updateAvailability "github.com/Long0701/PitchSpot-BookingService/internal/usecase/update_availability"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Date       string   `json:"date"`       // "2026-09-05"
	StartTimes []string `json:"startTimes"` // ["14:00", "15:00"]
	Available  bool     `json:"available"`
	Price      *int64   `json:"price,omitempty"`
}

// UpdateAvailabilityResponse HTTP response model
type UpdateAvailabilityResponse struct {
	FieldID int64  `json:"fieldId"`
	Date    string `json:"date"`
	Updated int64  `json:"updated"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *UpdateAvailabilityRequest) ToUseCaseRequest(identity middleware.Identity, fieldID int64) (*updateAvailability.Request, error) {
	starts := make([]types.TimeString, 0, len(r.StartTimes))
	for _, raw := range r.StartTimes {
		start, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		starts = append(starts, start)
	}

	return &updateAvailability.Request{
		UserID:     identity.UserID,
		Role:       identity.Role,
		FieldID:    fieldID,
		Date:       r.Date,
		StartTimes: starts,
		Available:  r.Available,
		Price:      r.Price,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *updateAvailability.Response) *UpdateAvailabilityResponse {
	return &UpdateAvailabilityResponse{
		FieldID: resp.FieldID,
		Date:    resp.Date,
		Updated: resp.Updated,
	}
}
