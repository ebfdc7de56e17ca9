package update_availability

import (
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// Request is an owner's manual slot edit: a set of slots on one date gets a
// new availability flag and optionally a new price.
type Request struct {
	UserID     int64       // Authenticated caller
	Role       domain.Role // Caller role
	FieldID    int64
	Date       string             // YYYY-MM-DD
	StartTimes []types.TimeString // Slots to edit, "HH:00"
	Available  bool               // New availability flag
	Price      *int64             // Optional new price
}

// Response reports how many slots the edit touched
type Response struct {
	FieldID int64
	Date    string
	Updated int64
}
