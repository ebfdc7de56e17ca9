package create_field

import (
	"fmt"
	"strings"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

const maxNameLength = 200

func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.Role != domain.RoleOwner {
		return fmt.Errorf("%w: only owners can create fields", ErrAccessDenied)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > maxNameLength {
		return fmt.Errorf("%w: name cannot exceed %d characters", ErrInvalidInput, maxNameLength)
	}

	if !domain.ValidSportType(req.SportType) {
		return fmt.Errorf("%w: unknown sport type %q", ErrInvalidInput, req.SportType)
	}

	if strings.TrimSpace(req.Location.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Location.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if req.Location.Latitude < -90 || req.Location.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidInput)
	}
	if req.Location.Longitude < -180 || req.Location.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidInput)
	}

	if req.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourlyRate must be positive", ErrInvalidInput)
	}

	if req.Currency != "" && req.Currency != domain.CurrencyVND && req.Currency != domain.CurrencyUSD {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, req.Currency)
	}

	return nil
}
