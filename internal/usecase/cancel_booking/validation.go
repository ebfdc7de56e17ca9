package cancel_booking

import (
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !domain.ValidRole(req.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxNotesLength {
		return fmt.Errorf("%w: reason cannot exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
