package get_available_slots

import (
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// Request asks for a field's slot schedule on one date
type Request struct {
	FieldID int64
	Date    string // YYYY-MM-DD
	// OnlyAvailable drops already booked slots from the response
	OnlyAvailable bool
}

// Slot is one hourly slot of the schedule
type Slot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	Price       int64
}

// Response is the field's schedule for the requested date, ordered by start
// time
type Response struct {
	FieldID  int64
	Date     string
	Currency string
	Slots    []Slot
}

func fromDomain(fieldID int64, date, currency string, slotSet []domain.TimeSlot, onlyAvailable bool) *Response {
	out := make([]Slot, 0, len(slotSet))
	for _, s := range slotSet {
		if onlyAvailable && !s.IsAvailable {
			continue
		}
		out = append(out, Slot{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
			Price:       s.Price,
		})
	}
	return &Response{
		FieldID:  fieldID,
		Date:     date,
		Currency: currency,
		Slots:    out,
	}
}
