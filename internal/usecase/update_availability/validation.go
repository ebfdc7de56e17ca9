package update_availability

import (
	"fmt"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Role != domain.RoleOwner {
		return fmt.Errorf("%w: only owners can edit slots", ErrAccessDenied)
	}

	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if len(req.StartTimes) == 0 {
		return fmt.Errorf("%w: at least one slot must be named", ErrInvalidInput)
	}
	for _, start := range req.StartTimes {
		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !start.IsHourAligned() {
			return fmt.Errorf("%w: slot start %s is not hour-aligned", ErrInvalidInput, start)
		}
	}

	if req.Price != nil && *req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	return nil
}
